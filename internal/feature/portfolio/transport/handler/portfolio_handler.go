// Package handler provides HTTP handlers for the portfolio feature.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/portfolio/domain"
	"moajim/internal/feature/portfolio/domain/entity"
	"moajim/internal/feature/portfolio/transport/http/dto"
)

const msgMissingFields = "Missing required fields: assets, investorId"

// PortfolioUsecase is the analysis service consumed by the handler.
type PortfolioUsecase interface {
	ListInvestors() []entity.Investor
	Analyze(assets entity.Buckets, investorID string) (*entity.Analysis, error)
}

type PortfolioHandler struct {
	uc PortfolioUsecase
}

func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// ListInvestors handles GET /api/portfolio/investors.
func (h *PortfolioHandler) ListInvestors(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InvestorsResponse{Investors: h.uc.ListInvestors()})
}

// Analyze handles POST /api/portfolio/analyze.
func (h *PortfolioHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}
	if req.Assets == nil || req.InvestorID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgMissingFields})
		return
	}

	a := req.Assets
	analysis, err := h.uc.Analyze(entity.Buckets{
		Stocks:     a.Stocks,
		Bonds:      a.Bonds,
		Cash:       a.Cash,
		RealEstate: a.RealEstate,
		Crypto:     a.Crypto,
	}, req.InvestorID)
	if err != nil {
		if errors.Is(err, domain.ErrInvestorNotFound) || errors.Is(err, domain.ErrNegativeAsset) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}
