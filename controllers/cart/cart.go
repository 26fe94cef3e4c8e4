package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	menucontroller "github.com/ujjwalbarange/mesa-pos/controllers/menu"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/store"
)

type AddItemInput struct {
	TableNumber string `json:"table_number"`
	ItemID      int    `json:"item_id" binding:"required"`
}

func tableNumber(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.DefaultQuery("table", menucontroller.DefaultTable)
}

func bindItemID(c *gin.Context, itemID *int) error {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		return err
	}
	*itemID = id
	return nil
}

func cartView(cart *models.TableCart) gin.H {
	return gin.H{
		"table_number": cart.TableNumber,
		"items":        cart.Items,
		"totals":       cart.Totals(),
	}
}

// POST /cart/items
//
// Adds one unit of an item to the table's cart. Name and price are
// seeded from the live menu, not from the request, and unavailable
// items are refused outright.
func AddCartItemHandler(api backend.Client, carts store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		table := tableNumber(c, input.TableNumber)

		menu, err := api.FetchMenu(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate item"})
			return
		}

		var item *models.MenuItem
		for i := range menu {
			if menu[i].ItemID == input.ItemID {
				item = &menu[i]
				break
			}
		}
		if item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}
		if !item.Available() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item is currently unavailable"})
			return
		}

		cart, err := carts.Load(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		cart.Add(*item)
		if err := carts.Save(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// DELETE /cart/items/:item_id?table=N
//
// Decrements the entry by one; the entry disappears when it hits zero.
func DecreaseCartItemHandler(carts store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var itemID int
		if err := bindItemID(c, &itemID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}
		table := tableNumber(c, "")

		cart, err := carts.Load(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		cart.Decrease(itemID)
		if err := carts.Save(cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// GET /cart?table=N
func GetCartHandler(carts store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := tableNumber(c, "")
		cart, err := carts.Load(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

// DELETE /cart?table=N
func ClearCartHandler(carts store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := tableNumber(c, "")
		if err := carts.Clear(table); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
