// Package adapters provides the static investor catalog.
package adapters

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"moajim/internal/feature/portfolio/domain/entity"
	"moajim/internal/feature/portfolio/usecase"
)

//go:embed investors.yaml
var investorsYAML []byte

// InvestorCatalog is an immutable, in-memory list of investor profiles.
type InvestorCatalog struct {
	list []entity.Investor
	byID map[string]entity.Investor
}

var _ usecase.InvestorRepository = (*InvestorCatalog)(nil)

// LoadInvestorCatalog parses the embedded profile table.
func LoadInvestorCatalog() (*InvestorCatalog, error) {
	return parseCatalog(investorsYAML)
}

func parseCatalog(b []byte) (*InvestorCatalog, error) {
	var f struct {
		Investors []entity.Investor `yaml:"investors"`
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse investor catalog: %w", err)
	}
	c := &InvestorCatalog{list: f.Investors, byID: make(map[string]entity.Investor, len(f.Investors))}
	for _, inv := range f.Investors {
		if _, dup := c.byID[inv.ID]; dup {
			return nil, fmt.Errorf("investor catalog: duplicate id %q", inv.ID)
		}
		c.byID[inv.ID] = inv
	}
	return c, nil
}

// List returns the profiles in catalog order.
func (c *InvestorCatalog) List() []entity.Investor {
	out := make([]entity.Investor, len(c.list))
	copy(out, c.list)
	return out
}

// FindByID looks up a profile.
func (c *InvestorCatalog) FindByID(id string) (entity.Investor, bool) {
	inv, ok := c.byID[id]
	return inv, ok
}
