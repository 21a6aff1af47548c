package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStockStatusOf(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      enum.StockStatus
	}{
		{"zero quantity is out of stock", 0, 5, enum.StockStatusOut},
		{"quantity below threshold is low", 3, 5, enum.StockStatusLow},
		{"quantity equal to threshold is low", 5, 5, enum.StockStatusLow},
		{"quantity above threshold is in stock", 6, 5, enum.StockStatusIn},
		{"zero quantity with zero threshold is out, not low", 0, 0, enum.StockStatusOut},
		{"one with zero threshold is in stock", 1, 0, enum.StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatusOf(tt.quantity, tt.threshold))
		})
	}
}

func TestDeadStockOf(t *testing.T) {
	now := date(2023, time.June, 1)

	t.Run("never sold item older than threshold is dead", func(t *testing.T) {
		it := entity.Item{
			Quantity:  10,
			CostPrice: 1500,
			CreatedAt: date(2023, time.January, 1),
		}

		ds, ok := DeadStockOf(it, now, 90)
		require.True(t, ok)
		assert.Equal(t, 151, ds.DaysSinceLastSold)
		assert.Equal(t, int64(15000), ds.Value)
	})

	t.Run("last sale before cutoff is dead", func(t *testing.T) {
		lastSold := date(2023, time.February, 1)
		it := entity.Item{
			Quantity:   4,
			CostPrice:  2000,
			CreatedAt:  date(2022, time.June, 1),
			LastSoldAt: &lastSold,
		}

		ds, ok := DeadStockOf(it, now, 90)
		require.True(t, ok)
		assert.Equal(t, 120, ds.DaysSinceLastSold)
		assert.Equal(t, int64(8000), ds.Value)
	})

	t.Run("recent sale is not dead", func(t *testing.T) {
		lastSold := date(2023, time.May, 15)
		it := entity.Item{
			CreatedAt:  date(2022, time.June, 1),
			LastSoldAt: &lastSold,
		}

		_, ok := DeadStockOf(it, now, 90)
		assert.False(t, ok)
	})

	t.Run("sale exactly at cutoff is not dead", func(t *testing.T) {
		lastSold := now.AddDate(0, 0, -90)
		it := entity.Item{
			CreatedAt:  date(2022, time.June, 1),
			LastSoldAt: &lastSold,
		}

		_, ok := DeadStockOf(it, now, 90)
		assert.False(t, ok)
	})

	t.Run("item created inside window is never dead", func(t *testing.T) {
		it := entity.Item{CreatedAt: date(2023, time.May, 1)}

		_, ok := DeadStockOf(it, now, 90)
		assert.False(t, ok)
	})

	t.Run("zero created-at is not classified", func(t *testing.T) {
		it := entity.Item{Quantity: 5, CostPrice: 100}

		_, ok := DeadStockOf(it, now, 90)
		assert.False(t, ok)
	})

	t.Run("non-positive threshold falls back to the default", func(t *testing.T) {
		it := entity.Item{CreatedAt: date(2023, time.January, 1)}

		_, ok := DeadStockOf(it, now, 0)
		assert.True(t, ok)
	})

	t.Run("a longer threshold never classifies more items", func(t *testing.T) {
		it := entity.Item{
			Quantity:  1,
			CostPrice: 100,
			CreatedAt: date(2023, time.January, 1),
		}

		_, deadAt90 := DeadStockOf(it, now, 90)
		_, deadAt365 := DeadStockOf(it, now, 365)
		assert.True(t, deadAt90)
		assert.False(t, deadAt365)
	})
}

func TestNewItemView(t *testing.T) {
	now := date(2023, time.June, 1)

	t.Run("derives status and total value", func(t *testing.T) {
		it := entity.Item{
			Name:              "Denim Jeans",
			Quantity:          2,
			CostPrice:         2500,
			LowStockThreshold: 5,
			CreatedAt:         date(2023, time.May, 20),
		}

		view := NewItemView(it, now, 90)
		assert.Equal(t, enum.StockStatusLow, view.StockStatus)
		assert.Equal(t, int64(5000), view.TotalValue)
		assert.False(t, view.IsDeadStock())
		assert.Nil(t, view.DaysSinceLastSold)
	})

	t.Run("carries dead stock figures when classified", func(t *testing.T) {
		it := entity.Item{
			Name:      "Wool Scarf",
			Quantity:  8,
			CostPrice: 1200,
			CreatedAt: date(2023, time.January, 1),
		}

		view := NewItemView(it, now, 90)
		require.True(t, view.IsDeadStock())
		require.NotNil(t, view.DaysSinceLastSold)
		assert.Equal(t, 151, *view.DaysSinceLastSold)
		require.NotNil(t, view.DeadStockValue)
		assert.Equal(t, int64(9600), *view.DeadStockValue)
	})
}

func TestItemViewMarshalJSON(t *testing.T) {
	now := date(2023, time.June, 1)
	it := entity.Item{
		Name:      "Wool Scarf",
		Quantity:  8,
		CostPrice: 1200,
		CreatedAt: date(2023, time.January, 1),
	}

	data, err := json.Marshal(NewItemView(it, now, 90))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	// Derived fields sit flat next to the item fields, money as decimals.
	assert.Equal(t, "Wool Scarf", got["name"])
	assert.Equal(t, "Uncategorized", got["category"])
	assert.Equal(t, "in-stock", got["stock_status"])
	assert.InDelta(t, 12.0, got["cost_price"], 0.001)
	assert.InDelta(t, 96.0, got["total_value"], 0.001)
	assert.InDelta(t, 151, got["days_since_last_sold"], 0.001)
	assert.InDelta(t, 96.0, got["dead_stock_value"], 0.001)
}
