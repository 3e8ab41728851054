package entities

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Menu struct {
	RestaurantID string         `json:"restaurant_id"`
	Categories   []MenuCategory `json:"categories"`
}

// Len counts items across all categories.
func (m Menu) Len() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Items)
	}
	return n
}

// Missing returns the ids that are not present in any category, in input order without duplicates.
func (m Menu) Missing(ids []string) []string {
	known := make(map[string]struct{}, m.Len())
	for _, c := range m.Categories {
		for _, it := range c.Items {
			known[it.ID] = struct{}{}
		}
	}

	var missing []string
	seen := make(map[string]struct{})
	for _, id := range ids {
		if _, ok := known[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}
