package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Проверка, что OrderLineRepository удовлетворяет интерфейсу.
var _ ports.OrderLineRepository = (*OrderLineRepository)(nil)

const upsertOrderLine = `
	INSERT INTO order_lines (
		order_line_id, order_id, stock_item_id, description,
		package_type_id, quantity, unit_price
	) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric)
	ON CONFLICT (order_line_id) DO UPDATE SET
		order_id = EXCLUDED.order_id,
		stock_item_id = EXCLUDED.stock_item_id,
		description = EXCLUDED.description,
		package_type_id = EXCLUDED.package_type_id,
		quantity = EXCLUDED.quantity,
		unit_price = EXCLUDED.unit_price,
		updated_at = now()
`

// OrderLineRepository — строки заказов в Postgres (pgxpool).
type OrderLineRepository struct {
	pool *pgxpool.Pool
}

// NewOrderLineRepository — конструктор.
func NewOrderLineRepository(pool *pgxpool.Pool) *OrderLineRepository {
	return &OrderLineRepository{pool: pool}
}

// SaveBatch — идемпотентный upsert партии в одной транзакции.
func (r *OrderLineRepository) SaveBatch(ctx context.Context, lines []domain.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// после Commit Rollback вернёт ErrTxClosed: это норма
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	batch := &pgx.Batch{}
	for i := range lines {
		l := &lines[i]
		batch.Queue(upsertOrderLine,
			l.OrderLineID, l.OrderID, l.StockItemID, l.Description,
			l.PackageTypeID, l.Quantity, l.UnitPrice.String(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range lines {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("upsert order line %d: %w", lines[i].OrderLineID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

// ListByPackageType — страница строк типа упаковки по возрастанию order_line_id.
func (r *OrderLineRepository) ListByPackageType(ctx context.Context, packageTypeID, limit, offset int) ([]domain.OrderLine, error) {
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT order_line_id, order_id, stock_item_id, description,
			package_type_id, quantity, unit_price::text
		FROM order_lines
		WHERE package_type_id = $1
		ORDER BY order_line_id
		LIMIT $2 OFFSET $3
	`, packageTypeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select order lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0, limit)
	for rows.Next() {
		var (
			l     domain.OrderLine
			price string
		)
		if err := rows.Scan(
			&l.OrderLineID, &l.OrderID, &l.StockItemID, &l.Description,
			&l.PackageTypeID, &l.Quantity, &price,
		); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		if l.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse unit_price %q: %w", price, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order lines rows: %w", err)
	}
	return lines, nil
}
