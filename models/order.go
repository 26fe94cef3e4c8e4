package models

import "errors"

type OrderStatus string

const (
	// Kitchen flow, strictly in this order. The backend owns the
	// transitions; this service only reads them and requests the two
	// forward steps from the KDS.
	OrderStatusInQueue   OrderStatus = "In Queue"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a wire string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch status {
	case string(OrderStatusInQueue):
		return OrderStatusInQueue, nil
	case string(OrderStatusPreparing):
		return OrderStatusPreparing, nil
	case string(OrderStatusReady):
		return OrderStatusReady, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// NextStatus returns the single forward transition from s. Ready is
// terminal in the KDS, so ok is false there and for anything unknown.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	switch s {
	case OrderStatusInQueue:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	default:
		return "", false
	}
}

// NextAction returns the KDS button label for the forward transition
// out of s, if one exists.
func NextAction(s OrderStatus) (label string, next OrderStatus, ok bool) {
	switch s {
	case OrderStatusInQueue:
		return "Start Cooking", OrderStatusPreparing, true
	case OrderStatusPreparing:
		return "Mark Ready", OrderStatusReady, true
	default:
		return "", "", false
	}
}

// Progress maps the status to the progress bar fill percentage.
func (s OrderStatus) Progress() int {
	switch s {
	case OrderStatusPreparing:
		return 66
	case OrderStatusReady:
		return 100
	default:
		return 33
	}
}

// CSSClass returns the card style for the status. Unknown strings fall
// back to the in-queue visual.
func (s OrderStatus) CSSClass() string {
	switch s {
	case OrderStatusPreparing:
		return "status-preparing"
	case OrderStatusReady:
		return "status-ready"
	default:
		return "status-queue"
	}
}

// CustomerMessage is the line shown under the progress bar.
func (s OrderStatus) CustomerMessage() string {
	switch s {
	case OrderStatusPreparing:
		return "Chef is working on your delicious meal!"
	case OrderStatusReady:
		return "It's Hot! Please collect your order from the counter."
	default:
		return "We've received your order! Waiting for the chef."
	}
}

// Order is an active order as the backend reports it. Owned server-side;
// this service never mutates it locally.
type Order struct {
	OrderID       int         `json:"order_id"`
	TableNumber   string      `json:"table_number"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	Instructions  string      `json:"instructions"`
	SpotifyLink   string      `json:"spotify_link"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	OrderTime     string      `json:"order_time"`
}

type OrderItem struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	ItemID       int     `json:"item_id"`
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"price_at_order"`
}

// OrderPayload is the body submitted to create an order. It is built
// from the table cart at checkout and not retained afterwards.
type OrderPayload struct {
	TableNumber   string             `json:"table_number"`
	Items         []OrderPayloadItem `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	Instructions  string             `json:"instructions"`
	SpotifyLink   string             `json:"spotify_link"`
	CustomerPhone string             `json:"customer_phone"`
}

type OrderPayloadItem struct {
	ItemID int     `json:"item_id"`
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
}
