package ports

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

// OrderLineSource — удалённый сервис строк заказов (GET /api/orderlines).
type OrderLineSource interface {
	FetchOrderLines(ctx context.Context, q domain.Query) ([]domain.OrderLine, error)
}
