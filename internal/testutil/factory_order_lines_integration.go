//go:build integration

package testutil

import (
	"sync/atomic"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/shopspring/decimal"
)

// lineSeq — уникальные OrderLineID в пределах процесса тестов.
var lineSeq atomic.Int64

func init() { lineSeq.Store(1_000_000) }

// NextOrderLineID — следующий свободный OrderLineID.
func NextOrderLineID() int64 { return lineSeq.Add(1) }

// MakeOrderLine — мини-генератор валидной строки заказа.
func MakeOrderLine(opts ...func(*domain.OrderLine)) domain.OrderLine {
	l := domain.OrderLine{
		OrderLineID:   NextOrderLineID(),
		OrderID:       45,
		StockItemID:   164,
		Description:   "32 mm Double sided bubble wrap 10m",
		PackageTypeID: 7,
		Quantity:      50,
		UnitPrice:     decimal.RequireFromString("32.00"),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithPackageType — опция для MakeOrderLine.
func WithPackageType(p int) func(*domain.OrderLine) {
	return func(l *domain.OrderLine) { l.PackageTypeID = p }
}
