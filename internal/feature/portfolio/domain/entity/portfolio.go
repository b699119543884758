// Package entity defines investor profiles and portfolio analyses.
package entity

import "time"

// Allocation is a target mix in percent. Gold is held only by some profiles
// and is not one of the analyzed buckets.
type Allocation struct {
	Stocks     float64  `json:"stocks" yaml:"stocks"`
	Bonds      float64  `json:"bonds" yaml:"bonds"`
	Cash       float64  `json:"cash" yaml:"cash"`
	RealEstate float64  `json:"realEstate" yaml:"realEstate"`
	Crypto     float64  `json:"crypto" yaml:"crypto"`
	Gold       *float64 `json:"gold,omitempty" yaml:"gold,omitempty"`
}

// Investor is a read-only reference profile.
type Investor struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	NameEn          string     `json:"nameEn" yaml:"nameEn"`
	Description     string     `json:"description" yaml:"description"`
	Style           string     `json:"style" yaml:"style"`
	Allocation      Allocation `json:"allocation" yaml:"allocation"`
	Characteristics []string   `json:"characteristics" yaml:"characteristics"`
}

// Buckets holds one value per analyzed asset class. Depending on context the
// values are won amounts or percentages.
type Buckets struct {
	Stocks     float64 `json:"stocks"`
	Bonds      float64 `json:"bonds"`
	Cash       float64 `json:"cash"`
	RealEstate float64 `json:"realEstate"`
	Crypto     float64 `json:"crypto"`
}

// Total sums all buckets.
func (b Buckets) Total() float64 {
	return b.Stocks + b.Bonds + b.Cash + b.RealEstate + b.Crypto
}

// Analysis compares a user's holdings against an investor's target mix.
type Analysis struct {
	ID                string    `json:"id"`
	Investor          Investor  `json:"investor"`
	TotalAssets       float64   `json:"totalAssets"`
	CurrentAllocation Buckets   `json:"currentAllocation"`
	Recommendations   Buckets   `json:"recommendations"`
	Adjustments       Buckets   `json:"adjustments"`
	Summary           []string  `json:"summary"`
	CreatedAt         time.Time `json:"createdAt"`
}
