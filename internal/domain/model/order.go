package model

import "time"

// OrderStatus describes the fulfillment state of a checkout order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// ParseOrderStatus maps a raw string onto a known status value.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return OrderStatus(raw), true
	}
	return "", false
}

// CartItem is a single purchased line inside an order. Items keep their
// submission order and may repeat.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a customer checkout record. OrderID is the human-readable
// identifier (ORD001 style) assigned exactly once at creation.
type Order struct {
	ID            int64
	OrderID       string
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	Zip           string
	TransactionID string
	CartItems     []CartItem
	TotalAmount   float64
	Status        OrderStatus
	Date          time.Time
}
