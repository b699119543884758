// Package entity defines the lookup records behind the region dropdowns.
package entity

// District is a city/district pair and the LAWD code that keys trade queries.
type District struct {
	City   string `yaml:"-"`
	Name   string `yaml:"name"`
	LawdCd string `yaml:"lawdCd"`
}

// Listing is one apartment/area observation extracted from a trade.
type Listing struct {
	Dong    string
	AptName string
	Area    string // 전용면적 as reported, e.g. "84.97"
}
