package catalog

import (
	"errors"
	"testing"

	"studio/pkg/model"
)

func TestDefault(t *testing.T) {
	p := Default()
	pkgs := p.ListPackages()

	wantIDs := []string{"silver", "gold", "platinum"}
	if len(pkgs) != len(wantIDs) {
		t.Fatalf("expected %d packages, got %d", len(wantIDs), len(pkgs))
	}
	for i, id := range wantIDs {
		if pkgs[i].ID != id {
			t.Errorf("package %d: expected id %s, got %s", i, id, pkgs[i].ID)
		}
		if pkgs[i].Advance <= 0 || pkgs[i].Advance > pkgs[i].Price {
			t.Errorf("package %s breaks pricing: price %d, advance %d", id, pkgs[i].Price, pkgs[i].Advance)
		}
	}

	gold, ok := p.Find("gold")
	if !ok {
		t.Fatal("gold package should exist")
	}
	if gold.Name != "Gold Wedding" || gold.Price != 45000 || gold.Advance != 10000 || !gold.Popular {
		t.Errorf("unexpected gold package: %+v", gold)
	}
}

func TestFind_Unknown(t *testing.T) {
	p := Default()
	for _, id := range []string{"", "bronze", "GOLD"} {
		if _, ok := p.Find(id); ok {
			t.Errorf("Find(%q) should not resolve", id)
		}
	}
}

func TestListPackages_ReturnsCopies(t *testing.T) {
	p := Default()

	pkgs := p.ListPackages()
	pkgs[0].Name = "Changed"
	pkgs[0].Features[0] = "Changed"

	again := p.ListPackages()
	if again[0].Name != "Silver Package" {
		t.Errorf("catalog name was mutated: %s", again[0].Name)
	}
	if again[0].Features[0] != "4 Hours Coverage" {
		t.Errorf("catalog features were mutated: %v", again[0].Features)
	}

	found, _ := p.Find("silver")
	found.Features[1] = "Changed"
	if f, _ := p.Find("silver"); f.Features[1] != "1 Photographer" {
		t.Errorf("Find returned shared features slice")
	}
}

func TestNewStaticProvider_Invariants(t *testing.T) {
	valid := model.Package{ID: "a", Name: "A", Price: 100, Advance: 10}

	tests := []struct {
		name    string
		pkgs    []model.Package
		wantErr error
	}{
		{
			name:    "empty id",
			pkgs:    []model.Package{{Name: "A", Price: 100, Advance: 10}},
			wantErr: ErrEmptyID,
		},
		{
			name:    "duplicate id",
			pkgs:    []model.Package{valid, valid},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "blank name",
			pkgs:    []model.Package{{ID: "a", Name: "  ", Price: 100, Advance: 10}},
			wantErr: ErrEmptyName,
		},
		{
			name:    "advance above price",
			pkgs:    []model.Package{{ID: "a", Name: "A", Price: 100, Advance: 101}},
			wantErr: ErrInvalidPricing,
		},
		{
			name:    "zero advance",
			pkgs:    []model.Package{{ID: "a", Name: "A", Price: 100}},
			wantErr: ErrInvalidPricing,
		},
		{
			name:    "advance equal to price is allowed",
			pkgs:    []model.Package{{ID: "a", Name: "A", Price: 100, Advance: 100}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticProvider(tt.pkgs...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
