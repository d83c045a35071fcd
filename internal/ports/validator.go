package ports

import (
	"context"

	"github.com/Gunvolt24/orderlines/internal/domain"
)

type OrderLineValidator interface {
	Validate(ctx context.Context, line *domain.OrderLine) error
}
