// Package catalog serves the fixed list of photography packages.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"studio/pkg/model"
	"studio/pkg/sanitizer"
)

var (
	ErrEmptyID        = errors.New("package id cannot be empty")
	ErrDuplicateID    = errors.New("duplicate package id")
	ErrInvalidPricing = errors.New("package advance must be positive and not exceed the price")
	ErrEmptyName      = errors.New("package name cannot be empty")
)

type Provider interface {
	ListPackages() []model.Package
	Find(id string) (model.Package, bool)
}

// StaticProvider holds an immutable catalog built at startup.
type StaticProvider struct {
	packages []model.Package
	byID     map[string]int
}

func NewStaticProvider(pkgs ...model.Package) (*StaticProvider, error) {
	p := &StaticProvider{
		packages: make([]model.Package, 0, len(pkgs)),
		byID:     make(map[string]int, len(pkgs)),
	}

	for _, pkg := range pkgs {
		if pkg.ID == "" {
			return nil, ErrEmptyID
		}
		if _, exists := p.byID[pkg.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, pkg.ID)
		}
		if sanitizer.TrimAndNormalize(pkg.Name) == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyName, pkg.ID)
		}
		if pkg.Advance <= 0 || pkg.Price <= 0 || pkg.Advance > pkg.Price {
			return nil, fmt.Errorf("%w: %s (price %d, advance %d)", ErrInvalidPricing, pkg.ID, pkg.Price, pkg.Advance)
		}
		pkg.Features = sanitizer.NormalizeStringSlice(pkg.Features, sanitizer.TrimAndNormalize)
		p.byID[pkg.ID] = len(p.packages)
		p.packages = append(p.packages, pkg)
	}

	return p, nil
}

// Default returns the studio's published packages.
func Default() *StaticProvider {
	p, err := NewStaticProvider(
		model.Package{
			ID:       "silver",
			Name:     "Silver Package",
			Price:    25000,
			Advance:  5000,
			Features: []string{"4 Hours Coverage", "1 Photographer", "100 Edited Photos", "Digital Album"},
		},
		model.Package{
			ID:       "gold",
			Name:     "Gold Wedding",
			Price:    45000,
			Advance:  10000,
			Features: []string{"8 Hours Coverage", "Candid + Traditional", "300 Edited Photos", "Cinematic Teaser", "Hardcover Album"},
			Popular:  true,
		},
		model.Package{
			ID:       "platinum",
			Name:     "Royal Cinematic",
			Price:    85000,
			Advance:  20000,
			Features: []string{"Full Day Coverage", "Drone Shots", "Cinematic Wedding Film", "Pre-Wedding Shoot Free", "Luxury Album Box"},
		},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// ListPackages returns copies in display order.
func (p *StaticProvider) ListPackages() []model.Package {
	out := make([]model.Package, len(p.packages))
	for i, pkg := range p.packages {
		out[i] = clone(pkg)
	}
	return out
}

func (p *StaticProvider) Find(id string) (model.Package, bool) {
	i, ok := p.byID[id]
	if !ok {
		return model.Package{}, false
	}
	return clone(p.packages[i]), true
}

func clone(pkg model.Package) model.Package {
	pkg.Features = slices.Clone(pkg.Features)
	return pkg
}
