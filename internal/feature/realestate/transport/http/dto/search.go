// Package dto defines request and response bodies for the realestate endpoints.
package dto

import "moajim/internal/feature/realestate/domain/entity"

// SearchRequest is the body of POST /api/realestate/search.
type SearchRequest struct {
	LawdCd  string `json:"lawdCd"`  // 5-digit district code
	AptName string `json:"aptName"` // apartment name, matched by substring
	Dong    string `json:"dong,omitempty"`
	Floor   string `json:"floor,omitempty"`
	DealYmd string `json:"dealYmd,omitempty"` // YYYYMM
}

// SearchResponse carries the best match (null when none) and related trades.
type SearchResponse struct {
	Success       bool           `json:"success"`
	Trade         *entity.Trade  `json:"trade"`
	SimilarTrades []entity.Trade `json:"similarTrades"`
}
