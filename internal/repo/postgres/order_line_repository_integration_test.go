//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/repo/postgres"
	"github.com/Gunvolt24/orderlines/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *postgres.OrderLineRepository {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(ctx, pg.DSN))
	return postgres.NewOrderLineRepository(pg.Pool)
}

func TestOrderLineRepository_SaveAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	var batch []domain.OrderLine
	for range 30 {
		batch = append(batch, testutil.MakeOrderLine(testutil.WithPackageType(3)))
	}
	batch = append(batch, testutil.MakeOrderLine(testutil.WithPackageType(4)))

	// обратный порядок на входе: сервис отдаёт по возрастанию id
	for i, j := 0, len(batch)-1; i < j; i, j = i+1, j-1 {
		batch[i], batch[j] = batch[j], batch[i]
	}
	require.NoError(t, repo.SaveBatch(ctx, batch))

	page1, err := repo.ListByPackageType(ctx, 3, 25, 0)
	require.NoError(t, err)
	require.Len(t, page1, 25)
	for i := 1; i < len(page1); i++ {
		require.Less(t, page1[i-1].OrderLineID, page1[i].OrderLineID)
	}
	require.True(t, page1[0].UnitPrice.Equal(decimal.RequireFromString("32")))

	page2, err := repo.ListByPackageType(ctx, 3, 25, 25)
	require.NoError(t, err)
	require.Len(t, page2, 5)

	other, err := repo.ListByPackageType(ctx, 4, 25, 0)
	require.NoError(t, err)
	require.Len(t, other, 1)

	none, err := repo.ListByPackageType(ctx, 9, 25, 0)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestOrderLineRepository_UpsertIsIdempotent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	l := testutil.MakeOrderLine(testutil.WithPackageType(2))
	require.NoError(t, repo.SaveBatch(ctx, []domain.OrderLine{l}))

	l.Quantity = 99
	l.UnitPrice = decimal.RequireFromString("1.25")
	require.NoError(t, repo.SaveBatch(ctx, []domain.OrderLine{l}))

	got, err := repo.ListByPackageType(ctx, 2, 25, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 99, got[0].Quantity)
	require.True(t, got[0].UnitPrice.Equal(decimal.RequireFromString("1.25")))
}

func TestOrderLineRepository_EmptyBatch(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.SaveBatch(context.Background(), nil))
}
