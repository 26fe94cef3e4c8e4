package adminController

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/models"
)

// Dashboard tabs. KDS is always reachable; the other two are gated by
// plan flags from the backend.
const (
	TabKDS   = "kds"
	TabMenu  = "menu"
	TabStats = "stats"
)

var (
	ErrMenuLocked  = errors.New("Menu Management is locked in this plan.")
	ErrStatsLocked = errors.New("Sales Stats are locked in this plan.")
	ErrUnknownTab  = errors.New("unknown tab")
)

// Dashboard holds the staff console's tab selection. A refused switch
// leaves the selection untouched.
type Dashboard struct {
	mu        sync.Mutex
	activeTab string
}

func NewDashboard() *Dashboard {
	return &Dashboard{activeTab: TabKDS}
}

func (d *Dashboard) ActiveTab() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeTab
}

// Switch moves to tab unless the plan flags lock it. Absent flags leave
// a tab open.
func (d *Dashboard) Switch(tab string, flags models.SystemFlags) error {
	switch tab {
	case TabKDS:
	case TabMenu:
		if !flags.MenuManagement() {
			return ErrMenuLocked
		}
	case TabStats:
		if !flags.SalesStats() {
			return ErrStatsLocked
		}
	default:
		return ErrUnknownTab
	}

	d.mu.Lock()
	d.activeTab = tab
	d.mu.Unlock()
	return nil
}

// CardAction is the single forward button on a KDS card. Ready cards
// carry none.
type CardAction struct {
	Label      string `json:"label"`
	NextStatus string `json:"next_status"`
}

// OrderCard is one KDS ticket.
type OrderCard struct {
	OrderID       int                `json:"order_id"`
	TableNumber   string             `json:"table_number"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []models.OrderItem `json:"items"`
	Instructions  string             `json:"instructions,omitempty"`
	Status        string             `json:"status"`
	CSSClass      string             `json:"css_class"`
	Action        *CardAction        `json:"action,omitempty"`
}

// Cards maps active orders onto KDS tickets.
func Cards(orders []models.Order) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, order := range orders {
		card := OrderCard{
			OrderID:       order.OrderID,
			TableNumber:   order.TableNumber,
			CustomerPhone: order.CustomerPhone,
			Items:         order.Items,
			Instructions:  order.Instructions,
			Status:        string(order.Status),
			CSSClass:      order.Status.CSSClass(),
		}
		if label, next, ok := models.NextAction(order.Status); ok {
			card.Action = &CardAction{Label: label, NextStatus: string(next)}
		}
		cards = append(cards, card)
	}
	return cards
}

type tabView struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Locked bool   `json:"locked"`
}

// GET /admin/dashboard
func GetDashboardHandler(ref *Refresher, dash *Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := ref.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"active_tab": dash.ActiveTab(),
			"loading":    !snap.Fetched,
			"tabs": []tabView{
				{ID: TabKDS, Label: "Kitchen (KDS)"},
				{ID: TabMenu, Label: "Menu", Locked: !snap.Flags.MenuManagement()},
				{ID: TabStats, Label: "Stats", Locked: !snap.Flags.SalesStats()},
			},
			"orders": Cards(snap.Orders),
		})
	}
}

type switchTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// POST /admin/tab
func SwitchTabHandler(ref *Refresher, dash *Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req switchTabRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := dash.Switch(req.Tab, ref.Snapshot().Flags); err != nil {
			status := http.StatusForbidden
			if errors.Is(err, ErrUnknownTab) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error(), "active_tab": dash.ActiveTab()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"active_tab": dash.ActiveTab()})
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:orderID/status
//
// Only the two forward transitions are accepted, and the requested
// status must be the forward step of the order's current status on the
// board. After the write the whole list is re-fetched from the backend
// rather than patched locally.
func UpdateOrderStatusHandler(api backend.Client, ref *Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		requested, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var current *models.Order
		snap := ref.Snapshot()
		for i := range snap.Orders {
			if snap.Orders[i].OrderID == orderID {
				current = &snap.Orders[i]
				break
			}
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found on the board"})
			return
		}
		next, ok := models.NextStatus(current.Status)
		if !ok || next != requested {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}

		if err := api.UpdateOrderStatus(c.Request.Context(), orderID, requested); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update order status"})
			return
		}
		if err := ref.ForceRefresh(c.Request.Context()); err != nil {
			log.Println("❌ Admin refresh failed:", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
