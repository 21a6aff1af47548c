package report

import (
	"testing"
	"time"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryCSV(t *testing.T) {
	now := date(2023, time.June, 1)
	lastSold := date(2023, time.May, 10)
	views := NewItemViews([]entity.Item{
		{
			Name:              "Denim Jeans",
			Category:          "Clothing",
			Quantity:          3,
			CostPrice:         1250,
			SellingPrice:      2000,
			LowStockThreshold: 5,
			CreatedAt:         date(2023, time.April, 1),
			LastSoldAt:        &lastSold,
		},
		{
			Name:      "Wool Scarf",
			Quantity:  8,
			CostPrice: 1200,
			CreatedAt: date(2023, time.January, 1),
		},
	}, now, 90)

	doc := InventoryCSV(views)
	assert.Equal(t, "Item Name", doc.Headers[0])
	require.Len(t, doc.Rows, 2)

	jeans := doc.Rows[0]
	assert.Equal(t, []string{
		"Denim Jeans", "Clothing", "3", "12.50", "20.00", "37.50",
		"low-stock", "2023-05-10", "",
	}, jeans)

	scarf := doc.Rows[1]
	assert.Equal(t, "Uncategorized", scarf[1])
	assert.Equal(t, "", scarf[7])    // never sold
	assert.Equal(t, "151", scarf[8]) // idle since creation
}

func TestOrdersCSV(t *testing.T) {
	orders := []entity.Order{{
		CustomerName:   "Amina Yusuf",
		CustomerPhone:  "0712345678",
		Item:           "2 x Bar Soap",
		Rate:           500,
		Gross:          1000,
		DiscountAmount: 100,
		Total:          900,
		Profit:         300,
		Status:         enum.OrderStatusCompleted,
		OrderDate:      date(2023, time.May, 15),
	}}

	doc := OrdersCSV(orders)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{
		"2023-05-15", "Amina Yusuf", "0712345678", "Bar Soap", "2", "4.50",
		"10.00", "1.00", "9.00", "3.00", "completed",
	}, doc.Rows[0])
}

func TestExpensesCSV(t *testing.T) {
	doc := ExpensesCSV([]entity.Expense{{
		Reference: "EXP-1A2B3C4D",
		Item:      "Rent",
		Category:  "Overheads",
		Amount:    50000,
		SpentAt:   date(2023, time.May, 1),
	}})

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{"2023-05-01", "EXP-1A2B3C4D", "Rent", "Overheads", "500.00"}, doc.Rows[0])
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.50", formatCents(1250))
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "0.00", formatCents(0))
	assert.Equal(t, "-3.07", formatCents(-307))
	assert.Equal(t, "1000.00", formatCents(100000))
}
