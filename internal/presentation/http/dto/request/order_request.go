package request

import "time"

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName   string     `json:"customer_name" binding:"omitempty,max=255"`
	CustomerPhone  string     `json:"customer_phone" binding:"omitempty,max=50"`
	Item           string     `json:"item" binding:"required,max=500"`
	Rate           float64    `json:"rate" binding:"min=0"`
	DiscountAmount float64    `json:"discount_amount" binding:"min=0"`
	DiscountNote   string     `json:"discount_note" binding:"omitempty,max=255"`
	Status         *int       `json:"status" binding:"omitempty,min=0,max=4"`
	OrderDate      *time.Time `json:"order_date"`
}

// UpdateOrderRequest represents an order update request
type UpdateOrderRequest struct {
	CustomerName   *string    `json:"customer_name" binding:"omitempty,max=255"`
	CustomerPhone  *string    `json:"customer_phone" binding:"omitempty,max=50"`
	Item           *string    `json:"item" binding:"omitempty,max=500"`
	Rate           *float64   `json:"rate" binding:"omitempty,min=0"`
	DiscountAmount *float64   `json:"discount_amount" binding:"omitempty,min=0"`
	DiscountNote   *string    `json:"discount_note" binding:"omitempty,max=255"`
	OrderDate      *time.Time `json:"order_date"`
}

// UpdateOrderStatusRequest represents an order status transition request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
