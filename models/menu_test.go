package models

import "testing"

func TestGroupMenuKeepsFirstSeenOrder(t *testing.T) {
	items := []MenuItem{
		{ItemID: 1, Name: "Samosa", Category: "Starters"},
		{ItemID: 2, Name: "Dal Makhani", Category: "Mains"},
		{ItemID: 3, Name: "Paneer Tikka", Category: "Starters"},
		{ItemID: 4, Name: "Gulab Jamun", Category: "Desserts"},
	}

	categories := GroupMenu(items)
	if len(categories) != 3 {
		t.Fatalf("len(categories) = %d, want 3", len(categories))
	}

	wantOrder := []string{"Starters", "Mains", "Desserts"}
	for i, name := range wantOrder {
		if categories[i].Name != name {
			t.Errorf("categories[%d] = %q, want %q", i, categories[i].Name, name)
		}
	}

	if len(categories[0].Items) != 2 {
		t.Fatalf("Starters has %d items, want 2", len(categories[0].Items))
	}
	if categories[0].Items[0].ItemID != 1 || categories[0].Items[1].ItemID != 3 {
		t.Error("item order within category not preserved")
	}
}

func TestGroupMenuEmpty(t *testing.T) {
	if got := GroupMenu(nil); len(got) != 0 {
		t.Errorf("GroupMenu(nil) = %v, want empty", got)
	}
}

func TestMenuItemHelpers(t *testing.T) {
	veg := MenuItem{IsVeg: 1, Availability: 1}
	if !veg.Veg() || !veg.Available() {
		t.Error("IsVeg=1/Availability=1 should be veg and available")
	}

	nonVeg := MenuItem{IsVeg: 0, Availability: 0}
	if nonVeg.Veg() {
		t.Error("IsVeg=0 should not be veg")
	}
	if nonVeg.Available() {
		t.Error("Availability=0 should not be available")
	}
}
