package report

import (
	"testing"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerKey(t *testing.T) {
	tests := []struct {
		name  string
		cname string
		phone string
		want  string
	}{
		{"lowercases and trims the name", "  Priya Sharma ", "0712345678", "priya sharma:0712345678"},
		{"trims the phone", "Priya Sharma", " 0712345678 ", "priya sharma:0712345678"},
		{"missing name yields no key", "", "0712345678", ""},
		{"missing phone yields no key", "Priya Sharma", "", ""},
		{"whitespace-only name yields no key", "   ", "0712345678", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CustomerKey(tt.cname, tt.phone))
		})
	}
}

func TestAggregateCustomers(t *testing.T) {
	t.Run("collapses casing and whitespace variants of one customer", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "Priya Sharma", CustomerPhone: "0712345678", Total: 5000},
			{CustomerName: " priya sharma ", CustomerPhone: "0712345678", Total: 3000},
			{CustomerName: "PRIYA SHARMA", CustomerPhone: " 0712345678", Total: 2000},
		}

		book := AggregateCustomers(orders)
		require.Equal(t, 1, book.UniqueCount())

		agg := book.All()[0]
		assert.Equal(t, "Priya Sharma", agg.DisplayName) // first casing wins
		assert.Equal(t, "0712345678", agg.Phone)
		assert.Equal(t, 3, agg.TotalOrders)
		assert.Equal(t, int64(10000), agg.TotalSpend)
	})

	t.Run("same name with different phones stays distinct", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "John Otieno", CustomerPhone: "0700000001", Total: 100},
			{CustomerName: "John Otieno", CustomerPhone: "0700000002", Total: 200},
		}

		assert.Equal(t, 2, AggregateCustomers(orders).UniqueCount())
	})

	t.Run("orders missing identity are skipped", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "", CustomerPhone: "0700000001", Total: 100},
			{CustomerName: "Walk-in", CustomerPhone: "", Total: 200},
			{CustomerName: "Amina Yusuf", CustomerPhone: "0700000003", Total: 300},
		}

		book := AggregateCustomers(orders)
		require.Equal(t, 1, book.UniqueCount())
		assert.Equal(t, "Amina Yusuf", book.All()[0].DisplayName)
	})

	t.Run("preserves first-encountered order", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "Zara", CustomerPhone: "1", Total: 1},
			{CustomerName: "Amina", CustomerPhone: "2", Total: 2},
			{CustomerName: "Zara", CustomerPhone: "1", Total: 3},
		}

		all := AggregateCustomers(orders).All()
		require.Len(t, all, 2)
		assert.Equal(t, "Zara", all[0].DisplayName)
		assert.Equal(t, "Amina", all[1].DisplayName)
	})
}

func TestCustomerBookTop(t *testing.T) {
	t.Run("empty book yields the placeholder", func(t *testing.T) {
		top := AggregateCustomers(nil).Top()
		assert.Equal(t, "N/A", top.DisplayName)
		assert.Equal(t, 0, top.TotalOrders)
	})

	t.Run("highest spend wins", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "Amina", CustomerPhone: "1", Total: 4000},
			{CustomerName: "Zara", CustomerPhone: "2", Total: 1500},
			{CustomerName: "Zara", CustomerPhone: "2", Total: 3000},
		}

		top := AggregateCustomers(orders).Top()
		assert.Equal(t, "Zara", top.DisplayName)
		assert.Equal(t, int64(4500), top.TotalSpend)
	})

	t.Run("ties keep the first customer encountered", func(t *testing.T) {
		orders := []entity.Order{
			{CustomerName: "Amina", CustomerPhone: "1", Total: 4000},
			{CustomerName: "Zara", CustomerPhone: "2", Total: 4000},
		}

		top := AggregateCustomers(orders).Top()
		assert.Equal(t, "Amina", top.DisplayName)
	})
}
