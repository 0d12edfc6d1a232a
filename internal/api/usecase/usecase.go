package usecase

import (
	"context"
	"time"

	"trading-vision-api/internal/api/repo"
	"trading-vision-api/internal/models"

	"github.com/shopspring/decimal"
)

type UsecaseItf interface {
	GetQuotes(context.Context) ([]models.Quote, error)
	GetQuote(context.Context, string) (models.Quote, error)
	GetDailyQuotes(context.Context, string, int) ([]models.DailyQuote, error)
	GetDailyQuotesRange(context.Context, string, string, string) ([]models.DailyQuote, error)
	GetFinancials(context.Context) ([]models.Financial, error)
	GetFinancial(context.Context, string) (models.Financial, error)
	GetETFs(context.Context) ([]models.ETFSummary, error)
	GetETFHoldings(context.Context, string) (models.ETFHoldings, error)
	GetETFHoldingSymbols(context.Context, string) ([]string, int, error)
	GetMarketBreadth(context.Context) (models.MarketBreadth, error)
	GetHealth(context.Context) models.Health
}

type Usecase struct {
	rp  repo.RepoItf
	now func() time.Time
}

func NewUsecase(rp repo.RepoItf, now func() time.Time) *Usecase {
	return &Usecase{rp: rp, now: now}
}

func (uc *Usecase) timestamp() string {
	return uc.now().Format(time.RFC3339)
}

func (uc *Usecase) GetQuotes(ctx context.Context) ([]models.Quote, error) {
	return uc.rp.GetQuotes(ctx)
}

func (uc *Usecase) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	return uc.rp.GetQuote(ctx, symbol)
}

// GetDailyQuotes returns the newest `days` entries of the series. A days
// value of zero or less returns the whole series.
func (uc *Usecase) GetDailyQuotes(ctx context.Context, symbol string, days int) ([]models.DailyQuote, error) {
	series, err := uc.rp.GetDailyQuotes(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if days > 0 && days < len(series) {
		series = series[:days]
	}
	return series, nil
}

// GetDailyQuotesRange keeps entries with start <= date <= end compared as
// strings. Bounds are not validated; an inverted or malformed range just
// matches nothing.
func (uc *Usecase) GetDailyQuotesRange(ctx context.Context, symbol, start, end string) ([]models.DailyQuote, error) {
	series, err := uc.rp.GetDailyQuotes(ctx, symbol)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.DailyQuote, 0, len(series))
	for _, dq := range series {
		if start <= dq.Date && dq.Date <= end {
			filtered = append(filtered, dq)
		}
	}
	return filtered, nil
}

func (uc *Usecase) GetFinancials(ctx context.Context) ([]models.Financial, error) {
	return uc.rp.GetFinancials(ctx)
}

func (uc *Usecase) GetFinancial(ctx context.Context, symbol string) (models.Financial, error) {
	return uc.rp.GetFinancial(ctx, symbol)
}

func (uc *Usecase) GetETFs(ctx context.Context) ([]models.ETFSummary, error) {
	symbols, err := uc.rp.GetETFSymbols(ctx)
	if err != nil {
		return nil, err
	}

	etfs := make([]models.ETFSummary, 0, len(symbols))
	for _, symbol := range symbols {
		h, err := uc.rp.GetETFHoldings(ctx, symbol)
		if err != nil {
			return nil, err
		}
		etfs = append(etfs, models.ETFSummary{
			Symbol:        symbol,
			Name:          h.Name,
			Description:   h.Description,
			TotalHoldings: h.TotalHoldings,
			LastUpdated:   h.LastUpdated,
		})
	}
	return etfs, nil
}

func (uc *Usecase) GetETFHoldings(ctx context.Context, symbol string) (models.ETFHoldings, error) {
	return uc.rp.GetETFHoldings(ctx, symbol)
}

// GetETFHoldingSymbols returns the listed constituent symbols in order along
// with the fund's declared holding count, which may exceed the list length.
func (uc *Usecase) GetETFHoldingSymbols(ctx context.Context, symbol string) ([]string, int, error) {
	h, err := uc.rp.GetETFHoldings(ctx, symbol)
	if err != nil {
		return nil, 0, err
	}

	symbols := make([]string, len(h.Holdings))
	for i, holding := range h.Holdings {
		symbols[i] = holding.Symbol
	}
	return symbols, h.TotalHoldings, nil
}

func (uc *Usecase) GetMarketBreadth(ctx context.Context) (models.MarketBreadth, error) {
	counts, err := uc.rp.GetBreadthCounts(ctx)
	if err != nil {
		return models.MarketBreadth{}, err
	}

	return models.MarketBreadth{
		Advancing:           counts.Advancing,
		Declining:           counts.Declining,
		Unchanged:           counts.Unchanged,
		AdvanceDeclineRatio: advanceDeclineRatio(counts.Advancing, counts.Declining),
		NewHighs:            counts.NewHighs,
		NewLows:             counts.NewLows,
		Timestamp:           uc.timestamp(),
	}, nil
}

// advanceDeclineRatio is advancing/declining rounded to two places, or 0
// when nothing declined.
func advanceDeclineRatio(advancing, declining int) float64 {
	if declining == 0 {
		return 0
	}
	ratio := decimal.NewFromInt(int64(advancing)).
		DivRound(decimal.NewFromInt(int64(declining)), 2)
	f, _ := ratio.Float64()
	return f
}

func (uc *Usecase) GetHealth(context.Context) models.Health {
	return models.Health{Status: "healthy", Timestamp: uc.timestamp()}
}
