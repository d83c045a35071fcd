package browser

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/pkg/metrics"
)

// Fetch выполняет запрос через источник и оборачивает итог в Result.
// Ошибка логируется здесь; на состояние она влияет только через Complete.
func Fetch(ctx context.Context, src ports.OrderLineSource, log ports.Logger, req Request) Result {
	start := time.Now()
	lines, err := src.FetchOrderLines(ctx, req.Query)
	if err != nil {
		metrics.BrowserFetches.WithLabelValues("error").Inc()
		log.Errorf(ctx, "error fetching order lines seq=%d type_id=%d page=%d: %v",
			req.Seq, req.Query.TypeID, req.Query.Page, err)
		return Result{Seq: req.Seq, Err: err}
	}

	metrics.BrowserFetches.WithLabelValues("ok").Inc()
	log.Infof(ctx, "order lines fetched seq=%d type_id=%d page=%d n=%d took=%s",
		req.Seq, req.Query.TypeID, req.Query.Page, len(lines), time.Since(start))
	return Result{Seq: req.Seq, Lines: lines}
}

// Apply — Complete с учётом метрик и лога для отброшенных результатов.
func Apply(ctx context.Context, b *Browser, log ports.Logger, res Result) {
	if err := b.Complete(res); errors.Is(err, ErrStaleResult) {
		metrics.BrowserStaleResults.Inc()
		log.Infof(ctx, "stale order lines result dropped seq=%d latest=%d", res.Seq, b.Seq())
	}
}
