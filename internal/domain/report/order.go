package report

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
)

// itemPattern matches descriptions of the shape "<count> x <name>", e.g.
// "3 x Denim Jeans". The x is case-insensitive.
var itemPattern = regexp.MustCompile(`(?i)^(\d+)\s+x\s+(.+)$`)

// LineItem is the normalized form of an order's free-form item description.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"-"` // cents
}

// MarshalJSON emits the unit price as a decimal, like the entity marshalers.
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(li),
		UnitPrice: float64(li.UnitPrice) / 100,
	})
}

// ParseItemDescription splits a description like "3 x Denim Jeans" into a
// quantity and a name. Anything that does not match falls back to quantity 1
// with the raw string as the name; this never fails.
func ParseItemDescription(description string) (quantity int, name string) {
	m := itemPattern.FindStringSubmatch(description)
	if m == nil {
		return 1, description
	}
	quantity, err := strconv.Atoi(m[1])
	if err != nil || quantity <= 0 {
		// Overflow or a zero count; treat as unparsed.
		return 1, description
	}
	return quantity, strings.TrimSpace(m[2])
}

// NormalizeLineItems derives the order's line items from its free-form item
// description. Orders currently carry a single description, so the result has
// exactly one entry. Unit price is the order total spread over the parsed
// quantity; a zero quantity falls back to the order's rate.
func NormalizeLineItems(o entity.Order) []LineItem {
	quantity, name := ParseItemDescription(o.Item)

	unitPrice := o.Rate
	if quantity > 0 {
		unitPrice = o.Total / int64(quantity)
	}

	return []LineItem{{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}}
}
