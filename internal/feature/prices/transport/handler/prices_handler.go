// Package handler provides HTTP handlers for the price lookups.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/prices/domain"
	"moajim/internal/feature/prices/domain/entity"
	"moajim/internal/feature/prices/transport/http/dto"
)

// PricesUsecase is the price service consumed by the handler.
type PricesUsecase interface {
	CryptoPrices(ctx context.Context, ids []string) (map[string]float64, error)
	StockPrices(ctx context.Context, tickers []string) (map[string]float64, error)
	ExchangeRate() float64
	Catalog() ([]entity.Coin, []entity.Stock)
}

type PricesHandler struct {
	uc PricesUsecase
}

func NewPricesHandler(uc PricesUsecase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// Crypto handles GET /api/prices/crypto?ids=bitcoin,ethereum.
func (h *PricesHandler) Crypto(c *gin.Context) {
	prices, err := h.uc.CryptoPrices(c.Request.Context(), splitList(c.Query("ids")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PricesResponse{Prices: prices})
}

// Stocks handles GET /api/prices/stocks?tickers=AAPL,MSFT.
func (h *PricesHandler) Stocks(c *gin.Context) {
	prices, err := h.uc.StockPrices(c.Request.Context(), splitList(c.Query("tickers")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PricesResponse{Prices: prices})
}

// ExchangeRate handles GET /api/prices/exchange-rate.
func (h *PricesHandler) ExchangeRate(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExchangeRateResponse{Base: "USD", Quote: "KRW", Rate: h.uc.ExchangeRate()})
}

// Catalog handles GET /api/prices/catalog.
func (h *PricesHandler) Catalog(c *gin.Context) {
	coins, stocks := h.uc.Catalog()
	c.JSON(http.StatusOK, dto.CatalogResponse{Crypto: coins, Stocks: stocks})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrTooManySymbols) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}
