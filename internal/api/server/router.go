package server

import (
	"time"

	"trading-vision-api/internal/api/constant"
	"trading-vision-api/internal/api/handler"
	"trading-vision-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigin  string
	RequestTimeout time.Duration
}

// NewRouter registers the read-only API. Only GET routes exist; any other
// method or path falls through to a JSON 404.
func NewRouter(hd handler.HandlerItf, logger *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.ContextWithFallback = true
	r.RedirectTrailingSlash = false

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(opts.AllowedOrigin))
	r.Use(middleware.Error(logger))
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.GET("/", hd.Root)
	r.GET("/health", hd.Health)

	api := r.Group("/api")
	{
		api.GET("/quotes", hd.GetQuotes)
		api.GET("/quotes/:symbol", hd.GetQuote)
		api.GET("/quotes/:symbol/daily", hd.GetDailyQuotes)
		api.GET("/quotes/:symbol/daily/range", hd.GetDailyQuotesRange)

		api.GET("/financials", hd.GetFinancials)
		api.GET("/financials/:symbol", hd.GetFinancial)

		api.GET("/etf", hd.GetETFs)
		api.GET("/etf/:symbol/holdings", hd.GetETFHoldings)
		api.GET("/etf/:symbol/holdings/symbols", hd.GetETFHoldingSymbols)

		api.GET("/market-breadth", hd.GetMarketBreadth)
	}

	r.NoRoute(func(c *gin.Context) {
		c.Error(constant.ErrRouteNotFound)
	})

	return r
}
