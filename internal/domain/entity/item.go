package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item represents an inventory item in the shop
type Item struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Category          string         `gorm:"size:255;index" json:"category"`
	Quantity          int            `gorm:"default:0" json:"quantity"`
	CostPrice         int64          `gorm:"default:0" json:"-"`    // Stored in cents
	SellingPrice      int64          `gorm:"default:0" json:"-"`    // Stored in cents
	LowStockThreshold int            `gorm:"default:0" json:"low_stock_threshold"`
	LastSoldAt        *time.Time     `json:"last_sold_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Item) MarshalJSON() ([]byte, error) {
	type Alias Item
	return json.Marshal(&struct {
		Alias
		CostPrice    float64 `json:"cost_price"`
		SellingPrice float64 `json:"selling_price"`
	}{
		Alias:        Alias(i),
		CostPrice:    float64(i.CostPrice) / 100,
		SellingPrice: float64(i.SellingPrice) / 100,
	})
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (i *Item) GetCostPriceDecimal() float64 {
	return float64(i.CostPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (i *Item) GetSellingPriceDecimal() float64 {
	return float64(i.SellingPrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (i *Item) SetCostPriceFromDecimal(price float64) {
	i.CostPrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (i *Item) SetSellingPriceFromDecimal(price float64) {
	i.SellingPrice = int64(price * 100)
}
