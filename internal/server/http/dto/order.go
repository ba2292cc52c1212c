package dto

import (
	"time"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// OrderRequest mirrors the checkout payload sent by the storefront.
type OrderRequest struct {
	FullName      string           `json:"fullName"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	Zip           string           `json:"zip"`
	TransactionID string           `json:"transactionId"`
	CartItems     []model.CartItem `json:"cartItems"`
	TotalAmount   float64          `json:"totalAmount"`
}

// OrderCreatedResponse confirms a stored order.
type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// OrderResponse represents a stored order.
type OrderResponse struct {
	OrderID       string           `json:"orderId"`
	FullName      string           `json:"fullName"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	Zip           string           `json:"zip"`
	TransactionID string           `json:"transactionId"`
	CartItems     []model.CartItem `json:"cartItems"`
	TotalAmount   float64          `json:"totalAmount"`
	Status        string           `json:"status"`
	Date          time.Time        `json:"date"`
}

// OrderStatusRequest carries the requested status change.
type OrderStatusRequest struct {
	Status string `json:"status"`
}
