package usecase_test

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/shopspring/decimal"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func line(id int64, packageType, quantity int) domain.OrderLine {
	return domain.OrderLine{
		OrderLineID:   id,
		OrderID:       1,
		StockItemID:   10,
		Description:   "item",
		PackageTypeID: packageType,
		Quantity:      quantity,
		UnitPrice:     decimal.NewFromInt(3),
	}
}

func ids(lines []domain.OrderLine) []int64 {
	out := make([]int64, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.OrderLineID)
	}
	return out
}
