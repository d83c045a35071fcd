package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
)

// Проверка, что OrderLineValidator удовлетворяет интерфейсу.
var _ ports.OrderLineValidator = (*OrderLineValidator)(nil)

// ErrInvalidOrderLine — базовая (sentinel error) ошибка валидации строки заказа.
var ErrInvalidOrderLine = errors.New("order line validation failed")

// OrderLineValidator — доменные правила строки заказа.
type OrderLineValidator struct{}

// NewOrderLineValidator — конструктор.
// Validate возвращает ErrInvalidOrderLine (с обёрнутой причиной) при любой проблеме.
func NewOrderLineValidator() *OrderLineValidator { return &OrderLineValidator{} }

// Validate проверяет поля строки заказа.
func (v *OrderLineValidator) Validate(_ context.Context, line *domain.OrderLine) error {
	if line == nil {
		return fmt.Errorf("%w: строка заказа не может быть nil", ErrInvalidOrderLine)
	}
	if err := v.validateIDs(line); err != nil {
		return err
	}
	if !domain.PackageType(line.PackageTypeID).Valid() {
		return fmt.Errorf("%w: PackageTypeID=%d вне диапазона %d..%d",
			ErrInvalidOrderLine, line.PackageTypeID, domain.MinPackageType, domain.MaxPackageType)
	}
	if line.Quantity < 0 {
		return fmt.Errorf("%w: Quantity должен быть неотрицательным", ErrInvalidOrderLine)
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: UnitPrice должен быть неотрицательным", ErrInvalidOrderLine)
	}
	if strings.TrimSpace(line.Description) == "" {
		return fmt.Errorf("%w: Description обязателен", ErrInvalidOrderLine)
	}
	return nil
}

// validateIDs — все идентификаторы положительные.
func (v *OrderLineValidator) validateIDs(line *domain.OrderLine) error {
	switch {
	case line.OrderLineID <= 0:
		return fmt.Errorf("%w: OrderLineID должен быть > 0", ErrInvalidOrderLine)
	case line.OrderID <= 0:
		return fmt.Errorf("%w: OrderID должен быть > 0", ErrInvalidOrderLine)
	case line.StockItemID <= 0:
		return fmt.Errorf("%w: StockItemID должен быть > 0", ErrInvalidOrderLine)
	}
	return nil
}
