package menucontroller

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/store"
)

// DefaultTable is used when a customer opens the menu without a table
// query parameter (e.g. scanning a generic poster).
const DefaultTable = "Unknown"

// ItemView is one dish decorated for rendering: current cart quantity,
// the veg/non-veg indicator color and whether the add control is live.
type ItemView struct {
	ItemID      int     `json:"item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	VegColor    string  `json:"veg_color"`
	Available   bool    `json:"available"`
	Quantity    int     `json:"quantity"`
}

type CategoryView struct {
	Name  string     `json:"name"`
	Items []ItemView `json:"items"`
}

// CartBar is the floating summary at the bottom of the menu. Disabled
// (dimmed, non-interactive) while the cart is empty.
type CartBar struct {
	TotalItems  int     `json:"total_items"`
	TotalPrice  float64 `json:"total_price"`
	Disabled    bool    `json:"disabled"`
	CheckoutURL string  `json:"checkout_url"`
}

type MenuView struct {
	TableNumber    string         `json:"table_number"`
	ServicePaused  bool           `json:"service_paused"`
	Categories     []CategoryView `json:"categories"`
	ActiveCategory string         `json:"active_category"`
	CartBar        CartBar        `json:"cart_bar"`
}

// GET /menu?table=N
//
// Checks the global service flag first: when service is paused the
// response is just the paused overlay and the menu is never fetched.
// Category switching is client-side, so the full categorized menu goes
// out in one payload.
func GetMenuHandler(api backend.Client, carts store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tableNumber := c.DefaultQuery("table", DefaultTable)

		flags, err := api.SystemStatus(c.Request.Context())
		if err != nil {
			log.Println("❌ Failed to fetch system status:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load menu"})
			return
		}
		if !flags.GlobalService() {
			c.JSON(http.StatusOK, MenuView{
				TableNumber:   tableNumber,
				ServicePaused: true,
			})
			return
		}

		items, err := api.FetchMenu(c.Request.Context())
		if err != nil {
			log.Println("❌ Failed to fetch menu:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load menu"})
			return
		}

		cart, err := carts.Load(tableNumber)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		view := MenuView{TableNumber: tableNumber}
		for _, category := range models.GroupMenu(items) {
			cv := CategoryView{Name: category.Name}
			for _, item := range category.Items {
				cv.Items = append(cv.Items, itemView(item, cart))
			}
			view.Categories = append(view.Categories, cv)
		}
		if len(view.Categories) > 0 {
			view.ActiveCategory = view.Categories[0].Name
		}

		totals := cart.Totals()
		view.CartBar = CartBar{
			TotalItems:  totals.TotalItems,
			TotalPrice:  totals.TotalPrice,
			Disabled:    cart.Empty(),
			CheckoutURL: "/checkout?table=" + url.QueryEscape(tableNumber),
		}

		c.JSON(http.StatusOK, view)
	}
}

func itemView(item models.MenuItem, cart *models.TableCart) ItemView {
	color := "red"
	if item.Veg() {
		color = "green"
	}
	return ItemView{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		VegColor:    color,
		Available:   item.Available(),
		Quantity:    cart.Quantity(item.ItemID),
	}
}
