package models

// BreadthCounts are the raw advance/decline figures a breadth snapshot is
// built from.
type BreadthCounts struct {
	Advancing int `yaml:"advancing"`
	Declining int `yaml:"declining"`
	Unchanged int `yaml:"unchanged"`
	NewHighs  int `yaml:"new_highs"`
	NewLows   int `yaml:"new_lows"`
}

type MarketBreadth struct {
	Advancing           int     `json:"advancing"`
	Declining           int     `json:"declining"`
	Unchanged           int     `json:"unchanged"`
	AdvanceDeclineRatio float64 `json:"advanceDeclineRatio"`
	NewHighs            int     `json:"newHighs"`
	NewLows             int     `json:"newLows"`
	Timestamp           string  `json:"timestamp"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
