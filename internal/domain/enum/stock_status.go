package enum

// StockStatus is the derived stock level category of an inventory item.
// It is computed on every read and never persisted.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusOut StockStatus = "out-of-stock"
)

func (s StockStatus) String() string {
	return string(s)
}
