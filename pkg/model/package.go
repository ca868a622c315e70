package model

// Package is a fixed-price studio offering. Amounts are whole rupees.
type Package struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Advance  int64    `json:"advance"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}
