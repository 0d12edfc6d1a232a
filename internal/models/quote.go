package models

type Quote struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Name          string  `json:"name" yaml:"name"`
	Price         float64 `json:"price" yaml:"price"`
	Change        float64 `json:"change" yaml:"change"`
	ChangePercent float64 `json:"changePercent" yaml:"change_percent"`
	Volume        int64   `json:"volume" yaml:"volume"`
	MarketCap     int64   `json:"marketCap" yaml:"market_cap"`
	LastUpdated   string  `json:"lastUpdated" yaml:"-"`
}

// DailyQuote is one trading day of OHLCV data. Date is "YYYY-MM-DD", so
// plain string comparison orders dates chronologically.
type DailyQuote struct {
	Date   string  `json:"date" yaml:"date"`
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume int64   `json:"volume" yaml:"volume"`
}
