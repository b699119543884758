// Package dto defines response bodies for the price endpoints.
package dto

import "moajim/internal/feature/prices/domain/entity"

type PricesResponse struct {
	Prices map[string]float64 `json:"prices"`
}

type ExchangeRateResponse struct {
	Base  string  `json:"base"`
	Quote string  `json:"quote"`
	Rate  float64 `json:"rate"`
}

type CatalogResponse struct {
	Crypto []entity.Coin  `json:"crypto"`
	Stocks []entity.Stock `json:"stocks"`
}
