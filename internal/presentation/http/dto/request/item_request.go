package request

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=255"`
	Category          string  `json:"category" binding:"omitempty,max=255"`
	Quantity          int     `json:"quantity" binding:"min=0"`
	CostPrice         float64 `json:"cost_price" binding:"min=0"`
	SellingPrice      float64 `json:"selling_price" binding:"min=0"`
	LowStockThreshold int     `json:"low_stock_threshold" binding:"min=0"`
}

// ImportItemsRequest represents a bulk item import request
type ImportItemsRequest struct {
	Items []CreateItemRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Category          *string  `json:"category" binding:"omitempty,max=255"`
	Quantity          *int     `json:"quantity" binding:"omitempty,min=0"`
	CostPrice         *float64 `json:"cost_price" binding:"omitempty,min=0"`
	SellingPrice      *float64 `json:"selling_price" binding:"omitempty,min=0"`
	LowStockThreshold *int     `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// ItemFilterRequest represents item list filter parameters
type ItemFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// ItemViewFilterRequest represents filter parameters for the stock view list
type ItemViewFilterRequest struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	StockStatus string `form:"stock_status"`
	DeadOnly    bool   `form:"dead_only"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
}

// AdjustQuantityRequest represents a signed stock adjustment
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}
