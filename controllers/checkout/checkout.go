package checkoutController

import (
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	menucontroller "github.com/ujjwalbarange/mesa-pos/controllers/menu"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/store"
)

// Mode selects how the customer phone number is obtained at checkout.
// Both variants have been run in production; the divergence is kept as
// deployment configuration rather than merged.
type Mode string

const (
	// ModeManual: customer types a phone number, checked against a
	// strict 10-digit rule.
	ModeManual Mode = "manual"
	// ModeSession: the phone comes from the Google-verified session on
	// the auth backend; no client-side format check is applied.
	ModeSession Mode = "session"
)

// ParseMode maps the CHECKOUT_MODE env value, defaulting to manual.
func ParseMode(s string) Mode {
	if s == string(ModeSession) {
		return ModeSession
	}
	return ModeManual
}

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhone reports whether p is exactly ten digits.
func ValidPhone(p string) bool {
	return phoneRegex.MatchString(p)
}

type PlaceOrderRequest struct {
	TableNumber   string `json:"table_number"`
	Instructions  string `json:"instructions"`
	SpotifyLink   string `json:"spotify_link"`
	CustomerPhone string `json:"customer_phone"`
}

func checkoutPath(table string) string {
	return "/checkout?table=" + url.QueryEscape(table)
}

// GET /checkout?table=N
//
// The order review screen: cart contents, total, and the phone policy
// state. In session mode the response carries either the verified
// phone or the sign-in URL that returns here afterwards.
func GetCheckoutHandler(api backend.Client, carts store.Store, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := c.DefaultQuery("table", menucontroller.DefaultTable)

		cart, err := carts.Load(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		view := gin.H{
			"table_number": table,
			"items":        cart.Items,
			"totals":       cart.Totals(),
			"mode":         mode,
		}

		if mode == ModeSession {
			phone, err := api.AuthStatus(c.Request.Context(), c.GetHeader("Cookie"))
			if err != nil {
				log.Println("❌ Auth check failed:", err)
			}
			if phone != "" {
				view["verified_phone"] = phone
			} else {
				view["sign_in_url"] = api.LoginURL(checkoutPath(table))
			}
		}

		c.JSON(http.StatusOK, view)
	}
}

// POST /checkout/place
//
// Submits the table's cart as an order. On success the stored cart is
// cleared and the response carries the status page URL for the new
// order id. On failure the cart is left untouched so the customer can
// retry.
func PlaceOrderHandler(api backend.Client, carts store.Store, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		table := req.TableNumber
		if table == "" {
			table = c.DefaultQuery("table", menucontroller.DefaultTable)
		}

		cart, err := carts.Load(table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if cart.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		var phone string
		switch mode {
		case ModeSession:
			phone, err = api.AuthStatus(c.Request.Context(), c.GetHeader("Cookie"))
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order. Try again."})
				return
			}
			if phone == "" {
				c.JSON(http.StatusForbidden, gin.H{
					"error":       "Please sign in with Google first!",
					"sign_in_url": api.LoginURL(checkoutPath(table)),
				})
				return
			}
		default:
			if !ValidPhone(req.CustomerPhone) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid 10-digit phone number."})
				return
			}
			phone = req.CustomerPhone
		}

		payload := models.OrderPayload{
			TableNumber:   table,
			Items:         cart.PayloadItems(),
			TotalAmount:   cart.Totals().TotalPrice,
			Instructions:  req.Instructions,
			SpotifyLink:   req.SpotifyLink,
			CustomerPhone: phone,
		}

		orderID, err := api.PlaceOrder(c.Request.Context(), payload)
		if err != nil {
			log.Println("❌ Order submission failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error placing order. Please try again."})
			return
		}

		// The order is safely upstream; a failed clear only risks a
		// stale cart, not a lost order.
		if err := carts.Clear(table); err != nil {
			log.Println("⚠️ Failed to clear cart after order:", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Order Placed Successfully!",
			"order_id":   orderID,
			"status_url": "/status?orderId=" + strconv.Itoa(orderID),
		})
	}
}
