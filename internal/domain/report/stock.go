// Package report contains the pure derivation logic behind the dashboard and
// table screens: stock classification, dead-stock detection, inventory and
// customer aggregation, and order line-item normalization.
//
// Every function here is side-effect free and takes its reference time as an
// explicit parameter; nothing in this package reads the clock, touches the
// database, or returns an error. Malformed or missing data folds into
// documented defaults instead.
package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
)

// DefaultDeadStockDays is the aging threshold used when none is configured.
const DefaultDeadStockDays = 90

// UncategorizedLabel is the category used for items without one.
const UncategorizedLabel = "Uncategorized"

// CategoryLabel returns the item's category, or UncategorizedLabel when the
// item has none.
func CategoryLabel(category string) string {
	if category == "" {
		return UncategorizedLabel
	}
	return category
}

// StockStatusOf classifies an item's stock level. First rule wins:
// zero quantity is out-of-stock even when the threshold is also zero.
func StockStatusOf(quantity, lowStockThreshold int) enum.StockStatus {
	switch {
	case quantity == 0:
		return enum.StockStatusOut
	case quantity <= lowStockThreshold:
		return enum.StockStatusLow
	default:
		return enum.StockStatusIn
	}
}

// DeadStock holds the derived fields of an item classified as dead stock.
type DeadStock struct {
	// DaysSinceLastSold is the whole days between now and the later of the
	// item's last sale and its creation. -1 when the dates are unusable.
	DaysSinceLastSold int
	// Value is quantity times cost price, in cents.
	Value int64
}

// DeadStockOf decides whether an item counts as dead stock at the given
// reference time, using a threshold of thresholdDays.
//
// An item with a zero CreatedAt is never classified: without knowing when it
// was stocked there is no defensible age to report. An item created inside
// the threshold window is never dead regardless of sales. Otherwise an item
// is dead when it has never sold, or when its last sale predates the cutoff.
func DeadStockOf(it entity.Item, now time.Time, thresholdDays int) (DeadStock, bool) {
	if thresholdDays <= 0 {
		thresholdDays = DefaultDeadStockDays
	}
	if it.CreatedAt.IsZero() {
		return DeadStock{}, false
	}

	cutoff := now.AddDate(0, 0, -thresholdDays)
	if it.CreatedAt.After(cutoff) {
		return DeadStock{}, false
	}

	if it.LastSoldAt != nil && !it.LastSoldAt.Before(cutoff) {
		return DeadStock{}, false
	}

	return DeadStock{
		DaysSinceLastSold: daysSince(now, lastActivity(it)),
		Value:             int64(it.Quantity) * it.CostPrice,
	}, true
}

// lastActivity returns the later of the item's last sale and its creation.
func lastActivity(it entity.Item) time.Time {
	if it.LastSoldAt != nil && it.LastSoldAt.After(it.CreatedAt) {
		return *it.LastSoldAt
	}
	return it.CreatedAt
}

// daysSince returns whole days between now and t, or -1 when the pair is
// unusable (zero or future reference dates).
func daysSince(now, t time.Time) int {
	if t.IsZero() || t.After(now) {
		return -1
	}
	return int(now.Sub(t).Hours() / 24)
}

// ItemView is an inventory item plus its derived display fields. Built fresh
// on every read; never persisted.
type ItemView struct {
	Item              entity.Item
	StockStatus       enum.StockStatus
	TotalValue        int64 // quantity x cost price, cents
	DaysSinceLastSold *int  // set only for dead stock with usable dates
	DeadStockValue    *int64
}

// NewItemView derives the display fields for one item at the given time.
func NewItemView(it entity.Item, now time.Time, deadStockDays int) ItemView {
	view := ItemView{
		Item:        it,
		StockStatus: StockStatusOf(it.Quantity, it.LowStockThreshold),
		TotalValue:  int64(it.Quantity) * it.CostPrice,
	}
	if ds, ok := DeadStockOf(it, now, deadStockDays); ok {
		if ds.DaysSinceLastSold >= 0 {
			days := ds.DaysSinceLastSold
			view.DaysSinceLastSold = &days
		}
		value := ds.Value
		view.DeadStockValue = &value
	}
	return view
}

// NewItemViews derives display fields for a collection, preserving order.
func NewItemViews(items []entity.Item, now time.Time, deadStockDays int) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, NewItemView(it, now, deadStockDays))
	}
	return views
}

// IsDeadStock reports whether the view carries a dead-stock classification.
func (v ItemView) IsDeadStock() bool {
	return v.DeadStockValue != nil
}

// MarshalJSON flattens the item and its derived fields into one object with
// decimal money values, mirroring the entity marshalers.
func (v ItemView) MarshalJSON() ([]byte, error) {
	var deadValue *float64
	if v.DeadStockValue != nil {
		d := float64(*v.DeadStockValue) / 100
		deadValue = &d
	}
	return json.Marshal(struct {
		ID                uuid.UUID        `json:"id"`
		Name              string           `json:"name"`
		Category          string           `json:"category"`
		Quantity          int              `json:"quantity"`
		CostPrice         float64          `json:"cost_price"`
		SellingPrice      float64          `json:"selling_price"`
		LowStockThreshold int              `json:"low_stock_threshold"`
		LastSoldAt        *time.Time       `json:"last_sold_at,omitempty"`
		CreatedAt         time.Time        `json:"created_at"`
		UpdatedAt         time.Time        `json:"updated_at"`
		StockStatus       enum.StockStatus `json:"stock_status"`
		TotalValue        float64          `json:"total_value"`
		DaysSinceLastSold *int             `json:"days_since_last_sold,omitempty"`
		DeadStockValue    *float64         `json:"dead_stock_value,omitempty"`
	}{
		ID:                v.Item.ID,
		Name:              v.Item.Name,
		Category:          CategoryLabel(v.Item.Category),
		Quantity:          v.Item.Quantity,
		CostPrice:         v.Item.GetCostPriceDecimal(),
		SellingPrice:      v.Item.GetSellingPriceDecimal(),
		LowStockThreshold: v.Item.LowStockThreshold,
		LastSoldAt:        v.Item.LastSoldAt,
		CreatedAt:         v.Item.CreatedAt,
		UpdatedAt:         v.Item.UpdatedAt,
		StockStatus:       v.StockStatus,
		TotalValue:        float64(v.TotalValue) / 100,
		DaysSinceLastSold: v.DaysSinceLastSold,
		DeadStockValue:    deadValue,
	})
}
