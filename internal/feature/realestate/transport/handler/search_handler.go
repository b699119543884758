// Package handler provides HTTP handlers for the realestate feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/realestate/domain"
	"moajim/internal/feature/realestate/transport/http/dto"
	"moajim/internal/feature/realestate/usecase"
)

// SearchUsecase is the trade search consumed by the handler.
type SearchUsecase interface {
	Search(ctx context.Context, q usecase.SearchQuery) (*usecase.SearchResult, error)
}

// SearchHandler serves trade searches.
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler returns a SearchHandler backed by uc.
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search resolves the latest transaction for an apartment.
//
// POST /api/realestate/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}

	res, err := h.uc.Search(c.Request.Context(), usecase.SearchQuery{
		LawdCd:  req.LawdCd,
		AptName: req.AptName,
		Dong:    req.Dong,
		Floor:   req.Floor,
		DealYmd: req.DealYmd,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLawdCdRequired) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("realestate search failed", "lawd_cd", req.LawdCd, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:       true,
		Trade:         res.Trade,
		SimilarTrades: res.SimilarTrades,
	})
}
