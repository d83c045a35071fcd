package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gunvolt24/orderlines/config"
	"github.com/Gunvolt24/orderlines/internal/browser"
	"github.com/Gunvolt24/orderlines/internal/domain"
	"github.com/Gunvolt24/orderlines/internal/ports"
	"github.com/Gunvolt24/orderlines/internal/transport/orderapi"
	"github.com/Gunvolt24/orderlines/internal/tui"
	"github.com/Gunvolt24/orderlines/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	api         string
	packageType int
	page        int
	timeout     time.Duration
	verbose     bool
	logFile     string
}

// runFunc — запуск обозревателя; в тестах подменяется.
type runFunc func(ctx context.Context, src ports.OrderLineSource, log ports.Logger, opts ...browser.Option) error

func newRootCmd(cfg config.Config, run runFunc) *cobra.Command {
	o := options{
		api:         cfg.API.BaseURL,
		packageType: int(domain.DefaultPackageType),
		page:        1,
		timeout:     cfg.API.Timeout,
		logFile:     "orderlines-tui.log",
	}

	cmd := &cobra.Command{
		Use:   "orderlines-tui",
		Short: "Browse order lines in the terminal",
		Long: `Terminal browser for the order line query service.

Keys: ←/h →/l page, [ ] package type, 0-9 quantity filter,
tab focus, r reload, q quit.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := domain.PackageType(o.packageType)
			if p != domain.AllPackages && !p.Valid() {
				return fmt.Errorf("--type must be 0 (all) or %d..%d", domain.MinPackageType, domain.MaxPackageType)
			}
			if o.page < 1 {
				return fmt.Errorf("--page must be >= 1")
			}

			client, err := orderapi.NewClient(o.api, o.timeout)
			if err != nil {
				return err
			}

			var log ports.Logger = logger.NewNop()
			if o.verbose {
				fileLog, closeLog, err := logger.NewFileLogger(o.logFile, true)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer func() { _ = closeLog() }()
				log = fileLog
			}

			return run(cmd.Context(), client, log,
				browser.WithPackageType(p),
				browser.WithPage(o.page),
				browser.WithPageSize(cfg.API.PageSize),
			)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.api, "api", o.api, "base URL of the order line query service")
	f.IntVar(&o.packageType, "type", o.packageType, "initial package type (0 = All Packages, 1..14)")
	f.IntVar(&o.page, "page", o.page, "initial page")
	f.DurationVar(&o.timeout, "timeout", o.timeout, "HTTP timeout per fetch")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "write debug log to --log-file")
	f.StringVar(&o.logFile, "log-file", o.logFile, "log file used with --verbose")
	return cmd
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, tui.Run).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
