package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/ujjwalbarange/mesa-pos/controllers/cart"
	checkoutController "github.com/ujjwalbarange/mesa-pos/controllers/checkout"
	menucontroller "github.com/ujjwalbarange/mesa-pos/controllers/menu"
	statusController "github.com/ujjwalbarange/mesa-pos/controllers/status"
)

// SetupCustomerRoutes registers the table-side ordering flow. No login:
// the table number from the QR link scopes everything.
func SetupCustomerRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Menu ────────────────
	r.GET("/menu", menucontroller.GetMenuHandler(deps.API, deps.Carts))

	// ──────────────── Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCartHandler(deps.Carts))                                // GET /cart?table=N
		cartGroup.POST("/items", cartControllers.AddCartItemHandler(deps.API, deps.Carts))           // POST /cart/items
		cartGroup.DELETE("/items/:item_id", cartControllers.DecreaseCartItemHandler(deps.Carts))     // DELETE /cart/items/:item_id?table=N
		cartGroup.DELETE("", cartControllers.ClearCartHandler(deps.Carts))                           // DELETE /cart?table=N
	}

	// ──────────────── Checkout ────────────────
	r.GET("/checkout", checkoutController.GetCheckoutHandler(deps.API, deps.Carts, deps.CheckoutMode))
	r.POST("/checkout/place", checkoutController.PlaceOrderHandler(deps.API, deps.Carts, deps.CheckoutMode))

	// ──────────────── Order status ────────────────
	r.GET("/status", statusController.GetStatusHandler(deps.API))
	r.GET("/status/live", statusController.LiveStatusHandler(deps.API)) // websocket
}
