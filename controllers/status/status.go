package statusController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/models"
)

// StatusView is everything the customer status page renders: the badge,
// the progress bar fill and the message under it.
type StatusView struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Progress      int    `json:"progress"`
	CSSClass      string `json:"css_class"`
	Message       string `json:"message"`
	TableNumber   string `json:"table_number"`
	CustomerPhone string `json:"customer_phone"`
}

// View maps a backend order onto the status page model.
func View(orderID string, order *models.Order) StatusView {
	return StatusView{
		OrderID:       orderID,
		Status:        string(order.Status),
		Progress:      order.Status.Progress(),
		CSSClass:      order.Status.CSSClass(),
		Message:       order.Status.CustomerMessage(),
		TableNumber:   order.TableNumber,
		CustomerPhone: order.CustomerPhone,
	}
}

// GET /status?orderId=X
func GetStatusHandler(api backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("orderId")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
			return
		}

		order, err := api.OrderStatus(c.Request.Context(), orderID)
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"not_found": true, "error": "Order not found."})
			return
		}
		if err != nil {
			log.Println("❌ Error fetching status:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch order status"})
			return
		}

		c.JSON(http.StatusOK, View(orderID, order))
	}
}
