package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// OrderLine — строка заказа в том виде, в каком её отдаёт сервис /api/orderlines.
// Имена JSON-полей совпадают с контрактом сервиса (PascalCase).
type OrderLine struct {
	OrderLineID   int64           `json:"OrderLineID"`
	OrderID       int64           `json:"OrderID"`
	StockItemID   int64           `json:"StockItemID"`
	Description   string          `json:"Description"`
	PackageTypeID int             `json:"PackageTypeID"`
	Quantity      int             `json:"Quantity"`
	UnitPrice     decimal.Decimal `json:"UnitPrice"`
}

// SortByID возвращает новую последовательность, упорядоченную по OrderLineID по возрастанию.
// Исходный слайс не меняется; порядок равных ключей сохраняется.
func SortByID(lines []OrderLine) []OrderLine {
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b OrderLine) int {
		switch {
		case a.OrderLineID < b.OrderLineID:
			return -1
		case a.OrderLineID > b.OrderLineID:
			return 1
		default:
			return 0
		}
	})
	return sorted
}
