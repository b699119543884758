// Package router assembles the gin engine and every HTTP route.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"moajim/internal/api"
	adminhandler "moajim/internal/feature/admin/transport/handler"
	portfoliohandler "moajim/internal/feature/portfolio/transport/handler"
	priceshandler "moajim/internal/feature/prices/transport/handler"
	realestatehandler "moajim/internal/feature/realestate/transport/handler"
	regionshandler "moajim/internal/feature/regions/transport/handler"
	taxhandler "moajim/internal/feature/tax/transport/handler"
	platformhandler "moajim/internal/platform/http/handler"
	jwtmw "moajim/internal/platform/jwt"
)

// Handlers bundles the feature handlers mounted by NewRouter.
type Handlers struct {
	Search    *realestatehandler.SearchHandler
	Regions   *regionshandler.RegionsHandler
	Portfolio *portfoliohandler.PortfolioHandler
	Tax       *taxhandler.TaxHandler
	Prices    *priceshandler.PricesHandler
	Admin     *adminhandler.AdminHandler
	// Ready backs /api/readyz. Nil leaves the route unregistered.
	Ready platformhandler.Pinger
}

// CORSConfig opens the API to any origin for GET/POST with JSON bodies.
func CORSConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not Found"})
	})

	apiGroup := r.Group("/api")

	// liveness and readiness
	apiGroup.GET("/health", platformhandler.Health)
	apiGroup.HEAD("/health", platformhandler.Health)
	apiGroup.OPTIONS("/health", platformhandler.Health)
	if h.Ready != nil {
		apiGroup.GET("/readyz", platformhandler.Ready(h.Ready))
	}

	apiGroup.POST("/realestate/search", h.Search.Search)

	regions := apiGroup.Group("/regions")
	{
		regions.GET("/cities", h.Regions.Cities)
		regions.GET("/districts", h.Regions.Districts)
		regions.GET("/dongs", h.Regions.Dongs)
		regions.GET("/apartments", h.Regions.Apartments)
		regions.GET("/areas", h.Regions.Areas)
	}

	apiGroup.GET("/portfolio/investors", h.Portfolio.ListInvestors)
	apiGroup.POST("/portfolio/analyze", h.Portfolio.Analyze)

	tax := apiGroup.Group("/tax")
	{
		tax.GET("/brackets", h.Tax.Brackets)
		tax.GET("/gift/deductions", h.Tax.GiftDeductions)
		tax.POST("/gift", h.Tax.Gift)
		tax.POST("/inheritance", h.Tax.Inheritance)
	}

	prices := apiGroup.Group("/prices")
	{
		prices.GET("/crypto", h.Prices.Crypto)
		prices.GET("/stocks", h.Prices.Stocks)
		prices.GET("/exchange-rate", h.Prices.ExchangeRate)
		prices.GET("/catalog", h.Prices.Catalog)
	}

	admin := apiGroup.Group("/admin")
	admin.POST("/login", h.Admin.Login)
	admin.GET("/dong-count", h.Regions.DongCount)

	// routes below require an admin token
	protected := admin.Group("")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/regions/refresh", h.Regions.Refresh)
	}

	return r
}
