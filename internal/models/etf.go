package models

type ETFHolding struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"` // percent of the fund
	Shares int64   `json:"shares" yaml:"shares"`
}

// ETFHoldings describes a fund and the constituents we know about.
// TotalHoldings is the fund's declared universe size and can be larger
// than len(Holdings).
type ETFHoldings struct {
	Name          string       `json:"name" yaml:"name"`
	Description   string       `json:"description" yaml:"description"`
	TotalHoldings int          `json:"totalHoldings" yaml:"total_holdings"`
	Holdings      []ETFHolding `json:"holdings" yaml:"holdings"`
	LastUpdated   string       `json:"lastUpdated" yaml:"-"`
}

type ETFSummary struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TotalHoldings int    `json:"totalHoldings"`
	LastUpdated   string `json:"lastUpdated"`
}
