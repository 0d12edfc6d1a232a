package models

// Financial is the latest reported statement summary for a symbol.
type Financial struct {
	Symbol         string  `json:"symbol" yaml:"symbol"`
	Revenue        int64   `json:"revenue" yaml:"revenue"`
	NetIncome      int64   `json:"netIncome" yaml:"net_income"`
	TotalAssets    int64   `json:"totalAssets" yaml:"total_assets"`
	TotalDebt      int64   `json:"totalDebt" yaml:"total_debt"`
	PERatio        float64 `json:"peRatio" yaml:"pe_ratio"`
	PBRatio        float64 `json:"pbRatio" yaml:"pb_ratio"`
	DebtToEquity   float64 `json:"debtToEquity" yaml:"debt_to_equity"`
	ReturnOnEquity float64 `json:"returnOnEquity" yaml:"return_on_equity"`
	Quarter        string  `json:"quarter" yaml:"quarter"`
}
