package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"restaurant/entity"
)

const otherCategory = "Other"

var categoryOrder = []string{"Starters", "Mains", "Breads", "Desserts", "Beverages", otherCategory}

// MenuRepository is the read-only catalog. Nothing mutates it after load.
type MenuRepository struct {
	items []entity.MenuItem
	byID  map[string]entity.MenuItem
}

func NewMenuRepository(raw []byte) (*MenuRepository, error) {
	var items []entity.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	byID := make(map[string]entity.MenuItem, len(items))
	for _, it := range items {
		if it.PriceCents < 0 {
			return nil, fmt.Errorf("menu item %q: negative price", it.ID)
		}
		// ids are assumed unique; the first entry wins like a linear lookup would
		if _, ok := byID[it.ID]; !ok {
			byID[it.ID] = it
		}
	}
	return &MenuRepository{items: items, byID: byID}, nil
}

func NewMenuRepositoryFromFile(path string) (*MenuRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return NewMenuRepository(raw)
}

func (r *MenuRepository) All() []entity.MenuItem {
	out := make([]entity.MenuItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *MenuRepository) FindByID(id string) (entity.MenuItem, bool) {
	it, ok := r.byID[id]
	return it, ok
}

// Search filters by a case-insensitive substring of name+description and
// by category; empty arguments match everything.
func (r *MenuRepository) Search(query, category string) []entity.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		if category != "" && !strings.EqualFold(CategoryOf(it), category) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name+" "+it.Description), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories lists the distinct categories, known ones first in menu order.
func (r *MenuRepository) Categories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, it := range r.items {
		c := CategoryOf(it)
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	rank := func(c string) int {
		for i, k := range categoryOrder {
			if k == c {
				return i
			}
		}
		return len(categoryOrder)
	}
	sort.SliceStable(cats, func(i, j int) bool {
		ri, rj := rank(cats[i]), rank(cats[j])
		if ri != rj {
			return ri < rj
		}
		return cats[i] < cats[j]
	})
	return cats
}

func CategoryOf(it entity.MenuItem) string {
	if it.Category == "" {
		return otherCategory
	}
	return it.Category
}
