package models

// MenuItem is one dish as the backend serves it: a flat row with its
// category name inlined. The backend only returns 0/1 for the tinyint
// columns, so veg and availability are kept numeric and read through
// the helpers below.
type MenuItem struct {
	ItemID       int     `json:"item_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	IsVeg        int     `json:"is_veg"`
	Availability int     `json:"availability"`
	Category     string  `json:"category"`
}

// Veg reports whether the dish gets the green indicator.
func (m MenuItem) Veg() bool {
	return m.IsVeg != 0
}

// Available reports whether the dish can be added to a cart.
// Anything other than an explicit 0 counts as available.
func (m MenuItem) Available() bool {
	return m.Availability != 0
}

// MenuCategory groups items under one sidebar entry.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// GroupMenu folds the flat backend menu into ordered categories.
// Category order follows first appearance in the source array, item
// order within a category is preserved, so the sidebar is stable
// across refreshes as long as the backend keeps its ordering.
func GroupMenu(items []MenuItem) []MenuCategory {
	var categories []MenuCategory
	index := make(map[string]int)

	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(categories)
			index[item.Category] = pos
			categories = append(categories, MenuCategory{Name: item.Category})
		}
		categories[pos].Items = append(categories[pos].Items, item)
	}
	return categories
}
