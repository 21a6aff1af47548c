package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sales order. Customer name and phone are recorded
// denormalized on the order itself; customer-level aggregates are folded
// from orders, not joined from the customers table.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName   string           `gorm:"size:255" json:"customer_name"`
	CustomerPhone  string           `gorm:"size:50" json:"customer_phone"`
	Item           string           `gorm:"size:500" json:"item"` // free-form, e.g. "3 x Denim Jeans"
	Rate           int64            `gorm:"default:0" json:"-"`   // Unit price in cents
	Gross          int64            `gorm:"default:0" json:"-"`   // Stored in cents
	DiscountAmount int64            `gorm:"default:0" json:"-"`   // Stored in cents
	DiscountNote   string           `gorm:"size:255" json:"discount_note,omitempty"`
	Total          int64            `gorm:"default:0" json:"-"` // Gross minus discount, in cents
	CostPrice      int64            `gorm:"default:0" json:"-"` // Stored in cents
	Profit         int64            `gorm:"default:0" json:"-"` // Total minus cost, in cents
	Status         enum.OrderStatus `gorm:"default:0" json:"status"`
	OrderDate      time.Time        `gorm:"type:date;not null" json:"order_date"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Rate           float64 `json:"rate"`
		Gross          float64 `json:"gross_amount"`
		DiscountAmount float64 `json:"discount_amount"`
		Total          float64 `json:"total_amount"`
		CostPrice      float64 `json:"cost_price"`
		Profit         float64 `json:"profit"`
	}{
		Alias:          Alias(o),
		Rate:           float64(o.Rate) / 100,
		Gross:          float64(o.Gross) / 100,
		DiscountAmount: float64(o.DiscountAmount) / 100,
		Total:          float64(o.Total) / 100,
		CostPrice:      float64(o.CostPrice) / 100,
		Profit:         float64(o.Profit) / 100,
	})
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}
