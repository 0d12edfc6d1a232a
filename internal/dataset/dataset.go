// Package dataset holds the static sample tables served by the API. Tables are
// decoded once from YAML and never change afterwards; every accessor hands
// out copies so callers cannot alter what other requests see.
package dataset

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"trading-vision-api/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var seed []byte

type etfSeed struct {
	Symbol             string `yaml:"symbol"`
	models.ETFHoldings `yaml:",inline"`
}

type seedFile struct {
	Quotes        []models.Quote                 `yaml:"quotes"`
	DailyQuotes   map[string][]models.DailyQuote `yaml:"daily_quotes"`
	ETFs          []etfSeed                      `yaml:"etfs"`
	Financials    []models.Financial             `yaml:"financials"`
	MarketBreadth models.BreadthCounts           `yaml:"market_breadth"`
}

type Dataset struct {
	quotes         []models.Quote
	quoteIndex     map[string]int
	daily          map[string][]models.DailyQuote
	etfSymbols     []string
	etfs           map[string]models.ETFHoldings
	financials     []models.Financial
	financialIndex map[string]int
	breadth        models.BreadthCounts
}

// Default loads the embedded sample tables, stamping lastUpdated fields
// with loadedAt.
func Default(loadedAt time.Time) (*Dataset, error) {
	return Load(seed, loadedAt)
}

func Load(raw []byte, loadedAt time.Time) (*Dataset, error) {
	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	stamp := loadedAt.Format(time.RFC3339)
	ds := &Dataset{
		quoteIndex:     make(map[string]int, len(sf.Quotes)),
		daily:          make(map[string][]models.DailyQuote, len(sf.DailyQuotes)),
		etfs:           make(map[string]models.ETFHoldings, len(sf.ETFs)),
		financialIndex: make(map[string]int, len(sf.Financials)),
		breadth:        sf.MarketBreadth,
	}

	for i, q := range sf.Quotes {
		key := Key(q.Symbol)
		if _, dup := ds.quoteIndex[key]; dup {
			return nil, fmt.Errorf("duplicate quote symbol %q", q.Symbol)
		}
		q.LastUpdated = stamp
		ds.quotes = append(ds.quotes, q)
		ds.quoteIndex[key] = i
	}

	for symbol, series := range sf.DailyQuotes {
		key := Key(symbol)
		if _, dup := ds.daily[key]; dup {
			return nil, fmt.Errorf("duplicate daily series for symbol %q", symbol)
		}
		for i := 1; i < len(series); i++ {
			if series[i].Date >= series[i-1].Date {
				return nil, fmt.Errorf("daily series for %q is not newest first at %s",
					symbol, series[i].Date)
			}
		}
		ds.daily[key] = series
	}

	for _, e := range sf.ETFs {
		key := Key(e.Symbol)
		if _, dup := ds.etfs[key]; dup {
			return nil, fmt.Errorf("duplicate etf symbol %q", e.Symbol)
		}
		h := e.ETFHoldings
		h.LastUpdated = stamp
		ds.etfSymbols = append(ds.etfSymbols, key)
		ds.etfs[key] = h
	}

	for i, f := range sf.Financials {
		key := Key(f.Symbol)
		if _, dup := ds.financialIndex[key]; dup {
			return nil, fmt.Errorf("duplicate financial symbol %q", f.Symbol)
		}
		ds.financials = append(ds.financials, f)
		ds.financialIndex[key] = i
	}

	return ds, nil
}

// Key normalizes a ticker for case-insensitive lookups.
func Key(symbol string) string {
	return strings.ToUpper(symbol)
}

func (ds *Dataset) Quotes() []models.Quote {
	return append([]models.Quote{}, ds.quotes...)
}

func (ds *Dataset) Quote(symbol string) (models.Quote, bool) {
	i, ok := ds.quoteIndex[Key(symbol)]
	if !ok {
		return models.Quote{}, false
	}
	return ds.quotes[i], true
}

func (ds *Dataset) DailyQuotes(symbol string) ([]models.DailyQuote, bool) {
	series, ok := ds.daily[Key(symbol)]
	if !ok {
		return nil, false
	}
	return append([]models.DailyQuote{}, series...), true
}

func (ds *Dataset) Financials() []models.Financial {
	return append([]models.Financial{}, ds.financials...)
}

func (ds *Dataset) Financial(symbol string) (models.Financial, bool) {
	i, ok := ds.financialIndex[Key(symbol)]
	if !ok {
		return models.Financial{}, false
	}
	return ds.financials[i], true
}

// ETFSymbols returns the fund symbols in declared order.
func (ds *Dataset) ETFSymbols() []string {
	return append([]string{}, ds.etfSymbols...)
}

func (ds *Dataset) ETFHoldings(symbol string) (models.ETFHoldings, bool) {
	h, ok := ds.etfs[Key(symbol)]
	if !ok {
		return models.ETFHoldings{}, false
	}
	h.Holdings = append([]models.ETFHolding{}, h.Holdings...)
	return h, true
}

func (ds *Dataset) MarketBreadth() models.BreadthCounts {
	return ds.breadth
}
