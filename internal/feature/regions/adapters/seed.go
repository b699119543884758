package adapters

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"moajim/internal/feature/regions/domain/entity"
)

//go:embed regions_seed.yaml
var seedYAML []byte

type seedFile struct {
	Cities []struct {
		Name      string            `yaml:"name"`
		Districts []entity.District `yaml:"districts"`
	} `yaml:"cities"`
}

// LoadSeed returns the embedded district table in display order.
func LoadSeed() ([]entity.District, error) {
	return parseSeed(seedYAML)
}

func parseSeed(b []byte) ([]entity.District, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse region seed: %w", err)
	}
	var out []entity.District
	seen := make(map[string]struct{})
	for _, c := range f.Cities {
		for _, d := range c.Districts {
			if !isLawdCd(d.LawdCd) {
				return nil, fmt.Errorf("region seed: %s %s: lawdCd %q is not 5 digits", c.Name, d.Name, d.LawdCd)
			}
			if _, dup := seen[d.LawdCd]; dup {
				return nil, fmt.Errorf("region seed: duplicate lawdCd %s", d.LawdCd)
			}
			seen[d.LawdCd] = struct{}{}
			d.City = c.Name
			out = append(out, d)
		}
	}
	return out, nil
}

func isLawdCd(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
