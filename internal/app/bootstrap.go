package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/orderlines/config"
	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/kafka"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/internal/repo/postgres"
	"github.com/Gunvolt24/orderlines/internal/session/memory"
	rest "github.com/Gunvolt24/orderlines/internal/transport/http"
	"github.com/Gunvolt24/orderlines/internal/transport/orderapi"
	"github.com/Gunvolt24/orderlines/internal/usecase"
	"github.com/Gunvolt24/orderlines/pkg/logger"
	"github.com/Gunvolt24/orderlines/pkg/metrics"
	"github.com/Gunvolt24/orderlines/pkg/telemetry"
	"github.com/Gunvolt24/orderlines/pkg/validate"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// App — собранный процесс: HTTP-сервер и, для сервиса строк, консьюмер Kafka.
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // nil: без приёма из Kafka
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// ambient — общее для обоих процессов: логгер, метрики, трассировка.
type ambient struct {
	log             *logger.ZapLogger
	otelServiceName string
	closers         []func(context.Context) error
}

func newAmbient(ctx context.Context, cfg *config.Config) (*ambient, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	a := &ambient{log: logg}
	a.closers = append(a.closers, func(context.Context) error { return cleanupLogger() })

	metrics.MustRegister()

	shutdownTrace, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	switch {
	case err != nil:
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
	case cfg.Tracing.Enabled:
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		a.otelServiceName = cfg.Tracing.ServiceName
		a.closers = append(a.closers, func(c context.Context) error { return shutdownTrace(c) })
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)
	return a, nil
}

// cleanup — закрытие в обратном порядке; логгер закрывается последним.
func (a *ambient) cleanup(ctx context.Context, extra ...func() error) Cleanup {
	return func() {
		for _, f := range extra {
			if err := f(); err != nil {
				a.log.Warnf(ctx, "cleanup: %v", err)
			}
		}
		// closers[0]: Sync логгера, его ошибку не логируем
		for i := len(a.closers) - 1; i >= 0; i-- {
			if err := a.closers[i](context.Background()); err != nil && i > 0 {
				a.log.Warnf(ctx, "cleanup: %v", err)
			}
		}
	}
}

// applyGinMode устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

func newHTTPServer(cfg config.HTTP, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// BootstrapBrowser — веб-обозреватель: сессии в памяти, клиент удалённого сервиса строк.
func BootstrapBrowser(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	amb, err := newAmbient(ctx, cfg)
	if err != nil {
		return nil, func() {}, err
	}

	client, err := orderapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	if err != nil {
		amb.cleanup(ctx)()
		return nil, func() {}, fmt.Errorf("order lines client: %w", err)
	}

	sessions := memory.NewStore[*usecase.BrowserSession](cfg.Sessions.Capacity, cfg.Sessions.TTL)
	service := usecase.NewBrowserService(sessions, client, amb.log, browser.WithPageSize(cfg.API.PageSize))

	handler := rest.NewBrowserHandler(service, amb.log, rest.WithSecureCookie(cfg.Logger.IsProd))
	router := rest.NewBrowserRouter(handler, amb.otelServiceName)

	amb.log.Infof(ctx, "order lines browser configured api=%s page_size=%d", cfg.API.BaseURL, cfg.API.PageSize)
	return &App{
		Logger:          amb.log,
		HTTPServer:      newHTTPServer(cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}, amb.cleanup(ctx), nil
}

// BootstrapQueryService — сервис строк заказов: Postgres, миграции, HTTP API и приём из Kafka.
func BootstrapQueryService(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	amb, err := newAmbient(ctx, cfg)
	if err != nil {
		return nil, func() {}, err
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			amb.cleanup(ctx)()
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		amb.log.Infof(ctx, "migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		amb.cleanup(ctx)()
		return nil, func() {}, fmt.Errorf("postgres pool: %w", err)
	}

	repo := postgres.NewOrderLineRepository(pool)
	service := usecase.NewOrderLineService(repo, amb.log, validate.NewOrderLineValidator())

	handler := rest.NewAPIHandler(service, amb.log, cfg.HTTP.HandlerTimeout)
	router := rest.NewAPIRouter(handler, amb.otelServiceName)

	a := &App{
		Logger:          amb.log,
		HTTPServer:      newHTTPServer(cfg.HTTP, router),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	closePool := func() error { pool.Close(); return nil }
	if !cfg.Kafka.Enabled {
		amb.log.Infof(ctx, "kafka ingestion disabled")
		return a, amb.cleanup(ctx, closePool), nil
	}

	consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.Topic,
		GroupID:        cfg.Kafka.GroupID,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}, service, amb.log)
	a.KafkaConsumer = consumer

	return a, amb.cleanup(ctx, consumer.Close, closePool), nil
}

// Run — HTTP-сервер и консьюмер под одним errgroup. Отмена ctx или ошибка любого
// компонента запускает корректную остановку остальных.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if a.KafkaConsumer != nil {
		g.Go(func() error {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(gctx); err != nil && gctx.Err() == nil {
				return fmt.Errorf("kafka consumer: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
		a.shutdown(ctx)
		return nil
	})

	err := g.Wait()
	if err != nil {
		a.Logger.Warnf(ctx, "background error: %v", err)
	}
	a.Logger.Infof(ctx, "service stopped")
	return err
}

func (a *App) shutdown(ctx context.Context) {
	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}
}
