//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/orderlines/internal/repo/postgres"
)

// ApplyMigrationsGoose применяет те же встроенные миграции, что и сервис при старте.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	if err := postgres.Migrate(ctx, dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
