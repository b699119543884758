// Package dto defines response bodies for the region lookup endpoints.
package dto

// Each response carries success:true so existing clients can keep checking it.

type CitiesResponse struct {
	Success bool     `json:"success"`
	Cities  []string `json:"cities"`
}

type District struct {
	District string `json:"district"`
	LawdCd   string `json:"lawdCd"`
}

type DistrictsResponse struct {
	Success   bool       `json:"success"`
	Districts []District `json:"districts"`
}

type DongsResponse struct {
	Success bool     `json:"success"`
	Dongs   []string `json:"dongs"`
}

type ApartmentsResponse struct {
	Success    bool     `json:"success"`
	Apartments []string `json:"apartments"`
}

type AreasResponse struct {
	Success bool     `json:"success"`
	Areas   []string `json:"areas"`
}

type DongCountResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

// RefreshRequest is the body of POST /api/admin/regions/refresh.
type RefreshRequest struct {
	LawdCd string `json:"lawdCd"`
}
