package dto

import "trading-vision-api/internal/models"

// Quotes

type GetQuotesRes struct {
	Quotes []models.Quote `json:"quotes"`
	Count  int            `json:"count"`
}

type GetQuoteRes struct {
	Quote models.Quote `json:"quote"`
}

// Daily quotes

type GetDailyQuotesRes struct {
	Symbol        string              `json:"symbol"`
	DailyQuotes   []models.DailyQuote `json:"dailyQuotes"`
	Count         int                 `json:"count"`
	RequestedDays int                 `json:"requestedDays"`
}

type GetDailyQuotesRangeReq struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type GetDailyQuotesRangeRes struct {
	Symbol      string              `json:"symbol"`
	DailyQuotes []models.DailyQuote `json:"dailyQuotes"`
	Count       int                 `json:"count"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
}

// Financials

type GetFinancialsRes struct {
	Financials []models.Financial `json:"financials"`
	Count      int                `json:"count"`
}

type GetFinancialRes struct {
	Financial models.Financial `json:"financial"`
}

// ETFs

type GetETFsRes struct {
	ETFs  []models.ETFSummary `json:"etfs"`
	Count int                 `json:"count"`
}

type GetETFHoldingsRes struct {
	ETFHoldings models.ETFHoldings `json:"etfHoldings"`
}

type GetETFSymbolsRes struct {
	ETF           string   `json:"etf"`
	Symbols       []string `json:"symbols"`
	Count         int      `json:"count"`
	TotalHoldings int      `json:"totalHoldings"`
}

// Market breadth

type GetMarketBreadthRes struct {
	MarketBreadth models.MarketBreadth `json:"marketBreadth"`
}
