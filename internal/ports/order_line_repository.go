package ports

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

type OrderLineRepository interface {
	SaveBatch(ctx context.Context, lines []domain.OrderLine) error
	ListByPackageType(ctx context.Context, packageTypeID, limit, offset int) ([]domain.OrderLine, error)
}
