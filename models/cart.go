package models

import "time"

// TableCart is the in-progress cart for one physical table. One row per
// table; the table number is the sole isolation key, so two tables can
// never clobber each other's cart.
type TableCart struct {
	CartID      uint            `gorm:"primaryKey" json:"-"`
	TableNumber string          `gorm:"uniqueIndex" json:"table_number"`
	Items       []TableCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableCartItem is one cart entry. Quantity is always >= 1: an entry
// whose quantity would reach 0 is removed, never stored at zero.
type TableCartItem struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	CartID   uint      `gorm:"index" json:"-"`
	ItemID   int       `json:"item_id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"-"`
}

// CartTotals is the live summary shown on the floating cart bar.
type CartTotals struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// Add inserts or increments the entry for item by one, seeding id, name
// and price on first insert. Display order is insertion order.
func (c *TableCart) Add(item MenuItem) {
	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, TableCartItem{
		ItemID:   item.ItemID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		AddedAt:  time.Now(),
	})
}

// Decrease decrements the entry for itemID by one. When the quantity
// would drop to 0 the entry is deleted. Unknown ids are a no-op.
func (c *TableCart) Decrease(itemID int) {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Totals folds quantity and price*quantity across all entries. Pure and
// order-independent.
func (c *TableCart) Totals() CartTotals {
	var t CartTotals
	for _, item := range c.Items {
		t.TotalItems += item.Quantity
		t.TotalPrice += item.Price * float64(item.Quantity)
	}
	return t
}

// Quantity returns the current quantity for itemID, 0 when absent.
func (c *TableCart) Quantity(itemID int) int {
	for _, item := range c.Items {
		if item.ItemID == itemID {
			return item.Quantity
		}
	}
	return 0
}

// Empty reports whether the cart holds no entries.
func (c *TableCart) Empty() bool {
	return len(c.Items) == 0
}

// PayloadItems converts the cart entries into the item rows the order
// endpoint expects.
func (c *TableCart) PayloadItems() []OrderPayloadItem {
	items := make([]OrderPayloadItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderPayloadItem{
			ItemID: item.ItemID,
			Name:   item.Name,
			Qty:    item.Quantity,
			Price:  item.Price,
		})
	}
	return items
}
