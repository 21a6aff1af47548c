package tableview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	Name     string
	Category string
	Price    float64
	SoldAt   *time.Time
}

func soldOn(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleProducts() []product {
	return []product{
		{Name: "Denim Jeans", Category: "Clothing", Price: 20, SoldAt: soldOn(2023, time.May, 10)},
		{Name: "Bar Soap", Category: "Toiletries", Price: 3},
		{Name: "Wool Scarf", Category: "Clothing", Price: 12, SoldAt: soldOn(2023, time.February, 1)},
		{Name: "Radio", Category: "Electronics", Price: 50, SoldAt: soldOn(2023, time.April, 2)},
	}
}

func productColumns() map[string]Column[product] {
	return map[string]Column[product]{
		"name":  func(p product) (Value, bool) { return Text(p.Name), true },
		"price": func(p product) (Value, bool) { return Number(p.Price), true },
		"sold_at": func(p product) (Value, bool) {
			if p.SoldAt == nil {
				return Value{}, false
			}
			return Time(*p.SoldAt), true
		},
	}
}

func names(rows []product) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	rows := Apply(sampleProducts(), Options[product]{
		Filters: []func(product) bool{
			func(p product) bool { return p.Category == "Clothing" },
			func(p product) bool { return p.Price > 15 },
		},
	})

	assert.Equal(t, []string{"Denim Jeans"}, names(rows))
}

func TestApplySearch(t *testing.T) {
	fields := func(p product) []string { return []string{p.Name, p.Category} }

	t.Run("case-insensitive substring over any field", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{Search: "CLOTH", SearchFields: fields})
		assert.Equal(t, []string{"Denim Jeans", "Wool Scarf"}, names(rows))
	})

	t.Run("blank search matches everything", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{Search: "   ", SearchFields: fields})
		assert.Len(t, rows, 4)
	})

	t.Run("search without fields is a no-op", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{Search: "soap"})
		assert.Len(t, rows, 4)
	})
}

func TestApplySort(t *testing.T) {
	columns := productColumns()

	t.Run("ascending by number", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{
			Sort:    &Sort{Key: "price", Direction: Asc},
			Columns: columns,
		})
		assert.Equal(t, []string{"Bar Soap", "Wool Scarf", "Denim Jeans", "Radio"}, names(rows))
	})

	t.Run("descending by text", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{
			Sort:    &Sort{Key: "name", Direction: Desc},
			Columns: columns,
		})
		assert.Equal(t, []string{"Wool Scarf", "Radio", "Denim Jeans", "Bar Soap"}, names(rows))
	})

	t.Run("undefined cells sink in ascending order", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{
			Sort:    &Sort{Key: "sold_at", Direction: Asc},
			Columns: columns,
		})
		assert.Equal(t, []string{"Wool Scarf", "Radio", "Denim Jeans", "Bar Soap"}, names(rows))
	})

	t.Run("undefined cells sink in descending order too", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{
			Sort:    &Sort{Key: "sold_at", Direction: Desc},
			Columns: columns,
		})
		assert.Equal(t, []string{"Denim Jeans", "Radio", "Wool Scarf", "Bar Soap"}, names(rows))
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		tied := []product{
			{Name: "B", Price: 5},
			{Name: "A", Price: 5},
			{Name: "C", Price: 1},
		}
		rows := Apply(tied, Options[product]{
			Sort:    &Sort{Key: "price", Direction: Asc},
			Columns: columns,
		})
		assert.Equal(t, []string{"C", "B", "A"}, names(rows))
	})

	t.Run("unknown sort key leaves order untouched", func(t *testing.T) {
		rows := Apply(sampleProducts(), Options[product]{
			Sort:    &Sort{Key: "weight", Direction: Asc},
			Columns: columns,
		})
		assert.Equal(t, names(sampleProducts()), names(rows))
	})
}

func TestApplyPipelineOrderAndImmutability(t *testing.T) {
	input := sampleProducts()

	rows := Apply(input, Options[product]{
		Filters:      []func(product) bool{func(p product) bool { return p.Price > 5 }},
		Search:       "o",
		SearchFields: func(p product) []string { return []string{p.Name} },
		Sort:         &Sort{Key: "price", Direction: Desc},
		Columns:      productColumns(),
	})

	// Soap is filtered out before search could have matched it.
	assert.Equal(t, []string{"Radio", "Wool Scarf"}, names(rows))

	// The input slice is untouched.
	require.Equal(t, names(sampleProducts()), names(input))
}

func TestToggle(t *testing.T) {
	t.Run("new key starts ascending", func(t *testing.T) {
		assert.Equal(t, Sort{Key: "name", Direction: Asc}, Toggle(nil, "name"))
	})

	t.Run("active ascending key flips to descending", func(t *testing.T) {
		current := Sort{Key: "name", Direction: Asc}
		assert.Equal(t, Sort{Key: "name", Direction: Desc}, Toggle(&current, "name"))
	})

	t.Run("active descending key resets to ascending", func(t *testing.T) {
		current := Sort{Key: "name", Direction: Desc}
		assert.Equal(t, Sort{Key: "name", Direction: Asc}, Toggle(&current, "name"))
	})

	t.Run("different key resets to ascending", func(t *testing.T) {
		current := Sort{Key: "name", Direction: Desc}
		assert.Equal(t, Sort{Key: "price", Direction: Asc}, Toggle(&current, "price"))
	})
}
