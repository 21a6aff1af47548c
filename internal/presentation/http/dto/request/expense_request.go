package request

import "time"

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Item     string     `json:"item" binding:"required,min=1,max=255"`
	Category string     `json:"category" binding:"omitempty,max=255"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	SpentAt  *time.Time `json:"spent_at"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Item     *string    `json:"item" binding:"omitempty,min=1,max=255"`
	Category *string    `json:"category" binding:"omitempty,max=255"`
	Amount   *float64   `json:"amount" binding:"omitempty,gt=0"`
	SpentAt  *time.Time `json:"spent_at"`
}

// ExpenseFilterRequest represents expense list filter parameters
type ExpenseFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
