// Package handler provides HTTP handlers for the region lookup chain.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	"moajim/internal/feature/regions/domain"
	"moajim/internal/feature/regions/domain/entity"
	"moajim/internal/feature/regions/transport/http/dto"
)

// RegionsUsecase is the lookup service consumed by the handler.
type RegionsUsecase interface {
	Cities(ctx context.Context) ([]string, error)
	Districts(ctx context.Context, city string) ([]entity.District, error)
	Dongs(ctx context.Context, lawdCd string) ([]string, error)
	Apartments(ctx context.Context, lawdCd, dong string) ([]string, error)
	Areas(ctx context.Context, lawdCd, dong, aptName string) ([]string, error)
	Refresh(ctx context.Context, lawdCd string) ([]string, error)
	DongCount(ctx context.Context) (int64, error)
}

// RegionsHandler serves /api/regions/* and the region admin endpoints.
type RegionsHandler struct {
	uc RegionsUsecase
}

func NewRegionsHandler(uc RegionsUsecase) *RegionsHandler {
	return &RegionsHandler{uc: uc}
}

// Cities handles GET /api/regions/cities.
func (h *RegionsHandler) Cities(c *gin.Context) {
	cities, err := h.uc.Cities(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CitiesResponse{Success: true, Cities: cities})
}

// Districts handles GET /api/regions/districts?city=.
func (h *RegionsHandler) Districts(c *gin.Context) {
	ds, err := h.uc.Districts(c.Request.Context(), c.Query("city"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.District, 0, len(ds))
	for _, d := range ds {
		out = append(out, dto.District{District: d.Name, LawdCd: d.LawdCd})
	}
	c.JSON(http.StatusOK, dto.DistrictsResponse{Success: true, Districts: out})
}

// Dongs handles GET /api/regions/dongs?lawdCd=.
func (h *RegionsHandler) Dongs(c *gin.Context) {
	dongs, err := h.uc.Dongs(c.Request.Context(), c.Query("lawdCd"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DongsResponse{Success: true, Dongs: dongs})
}

// Apartments handles GET /api/regions/apartments?lawdCd=&dong=.
func (h *RegionsHandler) Apartments(c *gin.Context) {
	apts, err := h.uc.Apartments(c.Request.Context(), c.Query("lawdCd"), c.Query("dong"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ApartmentsResponse{Success: true, Apartments: apts})
}

// Areas handles GET /api/regions/areas?lawdCd=&dong=&apt=.
func (h *RegionsHandler) Areas(c *gin.Context) {
	areas, err := h.uc.Areas(c.Request.Context(), c.Query("lawdCd"), c.Query("dong"), c.Query("apt"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AreasResponse{Success: true, Areas: areas})
}

// DongCount handles GET /api/admin/dong-count.
func (h *RegionsHandler) DongCount(c *gin.Context) {
	n, err := h.uc.DongCount(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DongCountResponse{Success: true, Count: n})
}

// Refresh handles POST /api/admin/regions/refresh.
func (h *RegionsHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.MsgInvalidRequestBody})
		return
	}
	dongs, err := h.uc.Refresh(c.Request.Context(), req.LawdCd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DongsResponse{Success: true, Dongs: dongs})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCityRequired),
		errors.Is(err, domain.ErrLawdCdRequired),
		errors.Is(err, domain.ErrInvalidLawdCd),
		errors.Is(err, domain.ErrDongRequired),
		errors.Is(err, domain.ErrAptRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("regions request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}
