package report

import (
	"strconv"

	"github.com/mkamau/dukahub-api/internal/domain/entity"
)

// CSVDoc is the flat projection handed to the CSV writer: a header row plus
// data rows, already renamed and formatted for spreadsheet display.
type CSVDoc struct {
	Headers []string
	Rows    [][]string
}

const exportDateLayout = "2006-01-02"

// InventoryCSV projects processed item views into export rows, derived
// columns included.
func InventoryCSV(views []ItemView) CSVDoc {
	doc := CSVDoc{
		Headers: []string{
			"Item Name", "Category", "Quantity", "Cost Price", "Selling Price",
			"Total Value", "Stock Status", "Last Sold", "Days Since Last Sold",
		},
		Rows: make([][]string, 0, len(views)),
	}
	for _, v := range views {
		lastSold := ""
		if v.Item.LastSoldAt != nil {
			lastSold = v.Item.LastSoldAt.Format(exportDateLayout)
		}
		daysIdle := ""
		if v.DaysSinceLastSold != nil {
			daysIdle = strconv.Itoa(*v.DaysSinceLastSold)
		}
		doc.Rows = append(doc.Rows, []string{
			v.Item.Name,
			CategoryLabel(v.Item.Category),
			strconv.Itoa(v.Item.Quantity),
			formatCents(v.Item.CostPrice),
			formatCents(v.Item.SellingPrice),
			formatCents(v.TotalValue),
			v.StockStatus.String(),
			lastSold,
			daysIdle,
		})
	}
	return doc
}

// OrdersCSV projects orders into export rows with their normalized line item.
func OrdersCSV(orders []entity.Order) CSVDoc {
	doc := CSVDoc{
		Headers: []string{
			"Order Date", "Customer", "Phone", "Item", "Quantity", "Unit Price",
			"Gross Amount", "Discount", "Total Amount", "Profit", "Status",
		},
		Rows: make([][]string, 0, len(orders)),
	}
	for _, o := range orders {
		line := NormalizeLineItems(o)[0]
		doc.Rows = append(doc.Rows, []string{
			o.OrderDate.Format(exportDateLayout),
			o.CustomerName,
			o.CustomerPhone,
			line.Name,
			strconv.Itoa(line.Quantity),
			formatCents(line.UnitPrice),
			formatCents(o.Gross),
			formatCents(o.DiscountAmount),
			formatCents(o.Total),
			formatCents(o.Profit),
			o.Status.String(),
		})
	}
	return doc
}

// ExpensesCSV projects expenses into export rows.
func ExpensesCSV(expenses []entity.Expense) CSVDoc {
	doc := CSVDoc{
		Headers: []string{"Date", "Reference", "Item", "Category", "Amount"},
		Rows:    make([][]string, 0, len(expenses)),
	}
	for _, e := range expenses {
		doc.Rows = append(doc.Rows, []string{
			e.SpentAt.Format(exportDateLayout),
			e.Reference,
			e.Item,
			CategoryLabel(e.Category),
			formatCents(e.Amount),
		})
	}
	return doc
}

// formatCents renders a cents amount as a plain decimal string, e.g. 1250 ->
// "12.50".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
