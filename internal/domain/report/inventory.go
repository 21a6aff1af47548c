package report

import (
	"sort"
	"time"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/mkamau/dukahub-api/internal/domain/enum"
)

// DefaultTopCategories is the number of category buckets kept before the
// remainder collapses into "Other".
const DefaultTopCategories = 5

// OtherLabel is the bucket holding categories beyond the top-K cutoff.
const OtherLabel = "Other"

// CategoryValue is one slice of the category-value chart: a category name and
// the summed quantity x cost price of its items, in cents.
type CategoryValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// StatusCounts holds the item count per stock status. All three buckets are
// always present, even at zero.
type StatusCounts struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// InventorySummary is the aggregate view of an inventory collection.
type InventorySummary struct {
	TotalItems     int             `json:"total_items"`
	TotalValue     int64           `json:"total_value"`      // cents, over all items
	CategoryValues []CategoryValue `json:"category_values"`  // top-K plus optional Other
	StatusCounts   StatusCounts    `json:"status_counts"`
	DeadStockCount int             `json:"dead_stock_count"`
	DeadStockValue int64           `json:"dead_stock_value"` // cents
}

// SummarizeInventory folds a collection of items into the dashboard
// aggregates. topCategories bounds the category-value breakdown (values tied
// at the cutoff order by name so output is reproducible); deadStockDays is
// the dead-stock aging threshold. Input order does not affect the result.
func SummarizeInventory(items []entity.Item, now time.Time, topCategories, deadStockDays int) InventorySummary {
	if topCategories <= 0 {
		topCategories = DefaultTopCategories
	}

	summary := InventorySummary{TotalItems: len(items)}
	byCategory := make(map[string]int64)

	for _, it := range items {
		value := int64(it.Quantity) * it.CostPrice
		summary.TotalValue += value
		byCategory[CategoryLabel(it.Category)] += value

		switch StockStatusOf(it.Quantity, it.LowStockThreshold) {
		case enum.StockStatusOut:
			summary.StatusCounts.OutOfStock++
		case enum.StockStatusLow:
			summary.StatusCounts.LowStock++
		default:
			summary.StatusCounts.InStock++
		}

		if ds, ok := DeadStockOf(it, now, deadStockDays); ok {
			summary.DeadStockCount++
			summary.DeadStockValue += ds.Value
		}
	}

	summary.CategoryValues = topCategoryValues(byCategory, topCategories)
	return summary
}

// topCategoryValues ranks categories by value descending (name ascending on
// ties) and collapses everything past the top-K into the Other bucket when
// that remainder is worth anything.
func topCategoryValues(byCategory map[string]int64, topK int) []CategoryValue {
	ranked := make([]CategoryValue, 0, len(byCategory))
	for name, value := range byCategory {
		ranked = append(ranked, CategoryValue{Name: name, Value: value})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) <= topK {
		return ranked
	}

	var other int64
	for _, cv := range ranked[topK:] {
		other += cv.Value
	}
	top := ranked[:topK:topK]
	if other > 0 {
		top = append(top, CategoryValue{Name: OtherLabel, Value: other})
	}
	return top
}

// ExpenseCategoryTotal is one row of the expense breakdown chart.
type ExpenseCategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"` // cents
	Count    int    `json:"count"`
}

// ExpenseSummary is the aggregate view of expenses over a date range.
type ExpenseSummary struct {
	Total      int64                  `json:"total"` // cents
	Count      int                    `json:"count"`
	Categories []ExpenseCategoryTotal `json:"categories"`
}

// SummarizeExpenses folds expenses dated within [from, to] (zero bounds mean
// unbounded) into per-category totals, ordered by total descending then
// category name ascending.
func SummarizeExpenses(expenses []entity.Expense, from, to time.Time) ExpenseSummary {
	totals := make(map[string]*ExpenseCategoryTotal)
	var summary ExpenseSummary

	for _, e := range expenses {
		if !from.IsZero() && e.SpentAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.SpentAt.After(to) {
			continue
		}

		summary.Total += e.Amount
		summary.Count++

		category := CategoryLabel(e.Category)
		ct, ok := totals[category]
		if !ok {
			ct = &ExpenseCategoryTotal{Category: category}
			totals[category] = ct
		}
		ct.Total += e.Amount
		ct.Count++
	}

	summary.Categories = make([]ExpenseCategoryTotal, 0, len(totals))
	for _, ct := range totals {
		summary.Categories = append(summary.Categories, *ct)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total != summary.Categories[j].Total {
			return summary.Categories[i].Total > summary.Categories[j].Total
		}
		return summary.Categories[i].Category < summary.Categories[j].Category
	})
	return summary
}
