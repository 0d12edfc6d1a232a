package repo

import (
	"context"

	"trading-vision-api/internal/api/constant"
	"trading-vision-api/internal/dataset"
	"trading-vision-api/internal/models"
)

type RepoItf interface {
	GetQuotes(context.Context) ([]models.Quote, error)
	GetQuote(context.Context, string) (models.Quote, error)
	GetDailyQuotes(context.Context, string) ([]models.DailyQuote, error)
	GetFinancials(context.Context) ([]models.Financial, error)
	GetFinancial(context.Context, string) (models.Financial, error)
	GetETFSymbols(context.Context) ([]string, error)
	GetETFHoldings(context.Context, string) (models.ETFHoldings, error)
	GetBreadthCounts(context.Context) (models.BreadthCounts, error)
}

type Repo struct {
	ds *dataset.Dataset
}

func NewRepo(ds *dataset.Dataset) *Repo {
	return &Repo{ds: ds}
}

func (rp *Repo) GetQuotes(ctx context.Context) ([]models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rp.ds.Quotes(), nil
}

// GetQuote matches symbol case-insensitively; the not-found message keeps
// the symbol as the caller wrote it.
func (rp *Repo) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return models.Quote{}, err
	}
	q, ok := rp.ds.Quote(symbol)
	if !ok {
		return models.Quote{}, constant.NotFound(constant.QuoteNotFound, symbol)
	}
	return q, nil
}

func (rp *Repo) GetDailyQuotes(ctx context.Context, symbol string) ([]models.DailyQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, ok := rp.ds.DailyQuotes(symbol)
	if !ok {
		return nil, constant.NotFound(constant.DailyNotFound, symbol)
	}
	return series, nil
}

func (rp *Repo) GetFinancials(ctx context.Context) ([]models.Financial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rp.ds.Financials(), nil
}

func (rp *Repo) GetFinancial(ctx context.Context, symbol string) (models.Financial, error) {
	if err := ctx.Err(); err != nil {
		return models.Financial{}, err
	}
	f, ok := rp.ds.Financial(symbol)
	if !ok {
		return models.Financial{}, constant.NotFound(constant.FinancialNotFound, symbol)
	}
	return f, nil
}

func (rp *Repo) GetETFSymbols(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rp.ds.ETFSymbols(), nil
}

func (rp *Repo) GetETFHoldings(ctx context.Context, symbol string) (models.ETFHoldings, error) {
	if err := ctx.Err(); err != nil {
		return models.ETFHoldings{}, err
	}
	h, ok := rp.ds.ETFHoldings(symbol)
	if !ok {
		return models.ETFHoldings{}, constant.NotFound(constant.ETFNotFound, symbol)
	}
	return h, nil
}

func (rp *Repo) GetBreadthCounts(ctx context.Context) (models.BreadthCounts, error) {
	if err := ctx.Err(); err != nil {
		return models.BreadthCounts{}, err
	}
	return rp.ds.MarketBreadth(), nil
}
