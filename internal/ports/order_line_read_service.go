package ports

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

// OrderLineReadService — чтение строк заказов для HTTP-слоя сервиса.
type OrderLineReadService interface {
	ListOrderLines(ctx context.Context, q domain.Query) ([]domain.OrderLine, error)
}
