package constant

const (
	DefaultDays = 30

	QuoteNotFound     = "Quote not found for symbol: %s"
	DailyNotFound     = "Daily quotes not found for symbol: %s"
	FinancialNotFound = "Financial data not found for symbol: %s"
	ETFNotFound       = "ETF holdings not found for symbol: %s"
)
