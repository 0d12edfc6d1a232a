package handler

import (
	"net/http"
	"strconv"
	"strings"

	"trading-vision-api/internal/api/constant"
	"trading-vision-api/internal/api/dto"
	"trading-vision-api/internal/api/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerItf interface {
	Root(*gin.Context)
	Health(*gin.Context)
	GetQuotes(*gin.Context)
	GetQuote(*gin.Context)
	GetDailyQuotes(*gin.Context)
	GetDailyQuotesRange(*gin.Context)
	GetFinancials(*gin.Context)
	GetFinancial(*gin.Context)
	GetETFs(*gin.Context)
	GetETFHoldings(*gin.Context)
	GetETFHoldingSymbols(*gin.Context)
	GetMarketBreadth(*gin.Context)
}

type Handler struct {
	uc     usecase.UsecaseItf
	logger *zap.Logger
}

func NewHandler(uc usecase.UsecaseItf, logger *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

func (hd *Handler) Root(ctx *gin.Context) {
	hd.logger.Debug("root endpoint accessed")
	ctx.JSON(http.StatusOK, dto.RootRes{
		Message: "Trading Vision Analytics API",
		Status:  "running",
	})
}

func (hd *Handler) Health(ctx *gin.Context) {
	hd.logger.Debug("health check endpoint accessed")
	ctx.JSON(http.StatusOK, hd.uc.GetHealth(ctx))
}

func (hd *Handler) GetQuotes(ctx *gin.Context) {
	hd.logger.Debug("quotes endpoint accessed")

	quotes, err := hd.uc.GetQuotes(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetQuotesRes{Quotes: quotes, Count: len(quotes)})
}

func (hd *Handler) GetQuote(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	hd.logger.Debug("quote endpoint accessed", zap.String("symbol", symbol))

	quote, err := hd.uc.GetQuote(ctx, symbol)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetQuoteRes{Quote: quote})
}

func (hd *Handler) GetDailyQuotes(ctx *gin.Context) {
	symbol := ctx.Param("symbol")

	// parse query
	days, err := strconv.Atoi(ctx.DefaultQuery("days", strconv.Itoa(constant.DefaultDays)))
	if err != nil {
		ctx.Error(constant.ErrInvalidDays)
		return
	}
	hd.logger.Debug("daily quotes endpoint accessed",
		zap.String("symbol", symbol), zap.Int("days", days))

	// usecase
	dailyQuotes, err := hd.uc.GetDailyQuotes(ctx, symbol, days)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetDailyQuotesRes{
		Symbol:        strings.ToUpper(symbol),
		DailyQuotes:   dailyQuotes,
		Count:         len(dailyQuotes),
		RequestedDays: days,
	})
}

func (hd *Handler) GetDailyQuotesRange(ctx *gin.Context) {
	symbol := ctx.Param("symbol")

	var req dto.GetDailyQuotesRangeReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.Error(err)
		return
	}
	hd.logger.Debug("daily quotes range endpoint accessed",
		zap.String("symbol", symbol),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate))

	dailyQuotes, err := hd.uc.GetDailyQuotesRange(ctx, symbol, req.StartDate, req.EndDate)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetDailyQuotesRangeRes{
		Symbol:      strings.ToUpper(symbol),
		DailyQuotes: dailyQuotes,
		Count:       len(dailyQuotes),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
}

func (hd *Handler) GetFinancials(ctx *gin.Context) {
	hd.logger.Debug("financials endpoint accessed")

	financials, err := hd.uc.GetFinancials(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetFinancialsRes{Financials: financials, Count: len(financials)})
}

func (hd *Handler) GetFinancial(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	hd.logger.Debug("financial endpoint accessed", zap.String("symbol", symbol))

	financial, err := hd.uc.GetFinancial(ctx, symbol)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetFinancialRes{Financial: financial})
}

func (hd *Handler) GetETFs(ctx *gin.Context) {
	hd.logger.Debug("available etfs endpoint accessed")

	etfs, err := hd.uc.GetETFs(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetETFsRes{ETFs: etfs, Count: len(etfs)})
}

func (hd *Handler) GetETFHoldings(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	hd.logger.Debug("etf holdings endpoint accessed", zap.String("symbol", symbol))

	holdings, err := hd.uc.GetETFHoldings(ctx, symbol)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetETFHoldingsRes{ETFHoldings: holdings})
}

func (hd *Handler) GetETFHoldingSymbols(ctx *gin.Context) {
	symbol := ctx.Param("symbol")
	hd.logger.Debug("etf symbols endpoint accessed", zap.String("symbol", symbol))

	symbols, total, err := hd.uc.GetETFHoldingSymbols(ctx, symbol)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetETFSymbolsRes{
		ETF:           strings.ToUpper(symbol),
		Symbols:       symbols,
		Count:         len(symbols),
		TotalHoldings: total,
	})
}

func (hd *Handler) GetMarketBreadth(ctx *gin.Context) {
	hd.logger.Debug("market breadth endpoint accessed")

	breadth, err := hd.uc.GetMarketBreadth(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetMarketBreadthRes{MarketBreadth: breadth})
}
