package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/pkg/metrics"
	"github.com/Gunvolt24/orderlines/pkg/validate"
)

// MaxPageSize — верхняя граница pageSize в /api/orderlines.
const MaxPageSize = 100

// ErrInvalidQuery — параметры запроса вне допустимых диапазонов (HTTP 400).
var ErrInvalidQuery = errors.New("invalid order lines query")

// OrderLineService — сервис строк заказов: чтение страниц и приём из Kafka.
type OrderLineService struct {
	repo      ports.OrderLineRepository
	log       ports.Logger
	validator ports.OrderLineValidator
}

// NewOrderLineService — DI-конструктор.
func NewOrderLineService(
	repo ports.OrderLineRepository,
	log ports.Logger,
	validator ports.OrderLineValidator,
) *OrderLineService {
	return &OrderLineService{
		repo:      repo,
		log:       log,
		validator: validator,
	}
}

// ValidateQuery — type_id 1..14, page >= 1, pageSize 1..MaxPageSize.
func ValidateQuery(q domain.Query) error {
	switch {
	case !domain.PackageType(q.TypeID).Valid():
		return fmt.Errorf("%w: type_id must be in %d..%d", ErrInvalidQuery, domain.MinPackageType, domain.MaxPackageType)
	case q.Page < 1:
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidQuery)
	case q.PageSize < 1 || q.PageSize > MaxPageSize:
		return fmt.Errorf("%w: pageSize must be in 1..%d", ErrInvalidQuery, MaxPageSize)
	}
	return nil
}

// ListOrderLines — страница строк выбранного типа упаковки по возрастанию OrderLineID.
// Пустая страница: пустой (не nil) срез.
func (s *OrderLineService) ListOrderLines(ctx context.Context, q domain.Query) ([]domain.OrderLine, error) {
	if err := ValidateQuery(q); err != nil {
		return nil, err
	}

	start := time.Now()
	offset := (q.Page - 1) * q.PageSize
	lines, err := s.repo.ListByPackageType(ctx, q.TypeID, q.PageSize, offset)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListByPackageType failed type_id=%d page=%d err=%v", q.TypeID, q.Page, err)
		return nil, err
	}
	if lines == nil {
		lines = []domain.OrderLine{}
	}

	metrics.OrderLinesServed.Add(float64(len(lines)))
	s.log.Infof(ctx, "order lines listed type_id=%d page=%d size=%d n=%d took=%s",
		q.TypeID, q.Page, q.PageSize, len(lines), time.Since(start))
	return lines, nil
}

// SaveFromMessage — сохранить строки, пришедшие из Kafka (raw JSON).
// Шаги:
//  1. строгий разбор: объект или массив, неизвестные поля запрещены (validate.ErrInvalidJSON);
//  2. доменная валидация каждой строки (validate.ErrInvalidOrderLine);
//  3. upsert всей партии в одной транзакции.
//
// Ошибки шагов 1-2: «ядовитое» сообщение, его можно коммитить; ошибка шага 3 временная.
func (s *OrderLineService) SaveFromMessage(ctx context.Context, raw []byte) error {
	lines, err := validate.DecodeBatch(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return err
	}

	for i := range lines {
		if err := s.validator.Validate(ctx, &lines[i]); err != nil {
			s.log.Warnf(ctx, "validation failed order_line_id=%d err=%v", lines[i].OrderLineID, err)
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if err := s.repo.SaveBatch(ctx, lines); err != nil {
		s.log.Errorf(ctx, "repo.SaveBatch failed n=%d err=%v", len(lines), err)
		return fmt.Errorf("failed to save order lines: %w", err)
	}

	s.log.Infof(ctx, "order lines saved n=%d first_id=%d", len(lines), lines[0].OrderLineID)
	return nil
}
