package report

import (
	"testing"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemDescription(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantQuantity int
		wantName     string
	}{
		{"simple count", "3 x Denim Jeans", 3, "Denim Jeans"},
		{"uppercase x", "2 X Bar Soap", 2, "Bar Soap"},
		{"extra spacing", "4   x   Maize Flour", 4, "Maize Flour"},
		{"plain name falls back to one", "Denim Jeans", 1, "Denim Jeans"},
		{"zero count falls back to the raw string", "0 x Thing", 1, "0 x Thing"},
		{"no space around x is not a count", "3x Thing", 1, "3x Thing"},
		{"name containing x survives", "5 x Xylophone x Case", 5, "Xylophone x Case"},
		{"empty string", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantity, name := ParseItemDescription(tt.description)
			assert.Equal(t, tt.wantQuantity, quantity)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestNormalizeLineItems(t *testing.T) {
	t.Run("spreads the total over the parsed quantity", func(t *testing.T) {
		o := entity.Order{Item: "4 x Maize Flour", Rate: 1000, Total: 3600}

		lines := NormalizeLineItems(o)
		require.Len(t, lines, 1)
		assert.Equal(t, "Maize Flour", lines[0].Name)
		assert.Equal(t, 4, lines[0].Quantity)
		assert.Equal(t, int64(900), lines[0].UnitPrice)
	})

	t.Run("unparsed description uses the total as-is", func(t *testing.T) {
		o := entity.Order{Item: "Maize Flour", Rate: 1000, Total: 950}

		lines := NormalizeLineItems(o)
		require.Len(t, lines, 1)
		assert.Equal(t, "Maize Flour", lines[0].Name)
		assert.Equal(t, 1, lines[0].Quantity)
		assert.Equal(t, int64(950), lines[0].UnitPrice)
	})
}
