package report

import (
	"encoding/json"
	"strings"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
)

// CustomerAggregate is the per-customer fold over orders: identity is the
// normalized name plus phone, display name keeps the casing of the first
// order encountered.
type CustomerAggregate struct {
	DisplayName string `json:"name"`
	Phone       string `json:"phone"`
	TotalOrders int    `json:"total_orders"`
	TotalSpend  int64  `json:"-"` // cents
}

// MarshalJSON emits the spend as a decimal, like the entity marshalers.
func (a CustomerAggregate) MarshalJSON() ([]byte, error) {
	type Alias CustomerAggregate
	return json.Marshal(&struct {
		Alias
		TotalSpend float64 `json:"total_spend"`
	}{
		Alias:      Alias(a),
		TotalSpend: float64(a.TotalSpend) / 100,
	})
}

// CustomerBook holds customer aggregates in first-encountered order.
type CustomerBook struct {
	byKey map[string]*CustomerAggregate
	keys  []string
}

// CustomerKey builds the aggregation identity for a name/phone pair, or ""
// when either part is missing after trimming.
func CustomerKey(name, phone string) string {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return ""
	}
	return strings.ToLower(name) + ":" + phone
}

// AggregateCustomers folds orders into per-customer totals. Orders missing a
// customer name or phone are skipped; they neither crash the fold nor count
// as an "unknown" customer.
func AggregateCustomers(orders []entity.Order) *CustomerBook {
	book := &CustomerBook{byKey: make(map[string]*CustomerAggregate)}

	for _, o := range orders {
		key := CustomerKey(o.CustomerName, o.CustomerPhone)
		if key == "" {
			continue
		}

		agg, ok := book.byKey[key]
		if !ok {
			agg = &CustomerAggregate{
				DisplayName: strings.TrimSpace(o.CustomerName),
				Phone:       strings.TrimSpace(o.CustomerPhone),
			}
			book.byKey[key] = agg
			book.keys = append(book.keys, key)
		}
		agg.TotalOrders++
		agg.TotalSpend += o.Total
	}

	return book
}

// UniqueCount returns the number of distinct customers seen.
func (b *CustomerBook) UniqueCount() int {
	return len(b.keys)
}

// All returns the aggregates in first-encountered order.
func (b *CustomerBook) All() []CustomerAggregate {
	out := make([]CustomerAggregate, 0, len(b.keys))
	for _, key := range b.keys {
		out = append(out, *b.byKey[key])
	}
	return out
}

// Top returns the customer with the highest spend; ties keep the first
// customer encountered. An empty book yields the "N/A" placeholder.
func (b *CustomerBook) Top() CustomerAggregate {
	top := CustomerAggregate{DisplayName: "N/A"}
	found := false
	for _, key := range b.keys {
		agg := b.byKey[key]
		if !found || agg.TotalSpend > top.TotalSpend {
			top = *agg
			found = true
		}
	}
	return top
}
