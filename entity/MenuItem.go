package entity

// MenuItem is catalog seed data and is never mutated at runtime.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image"`
	Category    string `json:"category,omitempty"`
}
