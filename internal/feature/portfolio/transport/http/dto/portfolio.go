// Package dto defines request and response bodies for the portfolio endpoints.
package dto

import "moajim/internal/feature/portfolio/domain/entity"

// Assets are the user's holdings in won. Crypto may be omitted.
type Assets struct {
	Cash       float64 `json:"cash"`
	Stocks     float64 `json:"stocks"`
	Bonds      float64 `json:"bonds"`
	RealEstate float64 `json:"realEstate"`
	Crypto     float64 `json:"crypto"`
}

// AnalyzeRequest is the body of POST /api/portfolio/analyze.
type AnalyzeRequest struct {
	Assets     *Assets `json:"assets"`
	InvestorID string  `json:"investorId"`
}

type InvestorsResponse struct {
	Investors []entity.Investor `json:"investors"`
}
