package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the status of an order
type OrderStatus int

const (
	OrderStatusPending    OrderStatus = 0
	OrderStatusConfirmed  OrderStatus = 1
	OrderStatusProcessing OrderStatus = 2
	OrderStatusCompleted  OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
)

func (s OrderStatus) String() string {
	names := [...]string{"pending", "confirmed", "processing", "completed", "cancelled"}
	if s < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCancelled
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	*s = ParseOrderStatus(str)
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}

// ParseOrderStatus maps a status string to its enum value.
// Unknown strings fall back to pending.
func ParseOrderStatus(str string) OrderStatus {
	switch str {
	case "confirmed":
		return OrderStatusConfirmed
	case "processing":
		return OrderStatusProcessing
	case "completed":
		return OrderStatusCompleted
	case "cancelled":
		return OrderStatusCancelled
	default:
		return OrderStatusPending
	}
}
