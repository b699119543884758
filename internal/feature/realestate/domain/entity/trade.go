// Package entity defines the domain models for the realestate feature.
package entity

import (
	"strconv"
	"strings"
)

// Trade is one apartment sale reported to the MOLIT real transaction price system.
// Field names follow the upstream XML tags so the JSON shape matches what clients
// already consume.
type Trade struct {
	AptName       string `json:"aptNm"`             // apartment complex name
	AptDong       string `json:"aptDong,omitempty"` // building number within the complex
	Floor         string `json:"floor"`
	DealAmount    string `json:"dealAmount"` // 만원, comma separated ("123,456")
	ExclusiveArea string `json:"excluUseAr"` // 전용면적 in m²
	DealYear      string `json:"dealYear"`
	DealMonth     string `json:"dealMonth"`
	DealDay       string `json:"dealDay"`
	BuildYear     string `json:"buildYear"`
	Jibun         string `json:"jibun"`
	UmdName       string `json:"umdNm"` // legal-dong name
}

// DateKey composes year, month and day into a sortable YYYYMMDD integer.
// Unparseable parts yield 0.
func (t Trade) DateKey() int {
	s := strings.TrimSpace(t.DealYear) + pad2(t.DealMonth) + pad2(t.DealDay)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// AmountManwon parses DealAmount ("123,456") into 만원.
func (t Trade) AmountManwon() (int64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(t.DealAmount, ",", ""))
	return strconv.ParseInt(s, 10, 64)
}

// MatchesName reports whether the apartment name and query contain one another.
func (t Trade) MatchesName(query string) bool {
	return strings.Contains(t.AptName, query) || strings.Contains(query, t.AptName)
}
