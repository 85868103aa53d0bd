package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cufmcp/internal/domain"
	"cufmcp/internal/infra/config"
	"cufmcp/internal/infra/cufinder"
	"cufmcp/internal/infra/telemetry"
	"cufmcp/internal/infra/tools"
)

type serverOptions struct {
	configPath     string
	apiKey         string
	baseURL        string
	timeoutSeconds int
	metricsEnabled bool
	metricsAddr    string
	logLevel       string
	logger         *zap.Logger
}

func main() {
	opts := serverOptions{
		timeoutSeconds: domain.DefaultTimeoutSeconds,
		logLevel:       "info",
		logger:         zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "cufmcp",
		Short: "CUFinder MCP server over stdio",
		Long: "cufmcp exposes the CUFinder B2B data API (company search, person search,\n" +
			"local business search and single-entity enrichment) as MCP tools.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zapcore.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			// Production config logs to stderr; stdout belongs to the
			// MCP stdio transport.
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			log, err := cfg.Build()
			if err != nil {
				return err
			}
			opts.logger = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, &opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file (optional)")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "CUFinder API key (defaults to $"+domain.APIKeyEnvVar+")")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "provider base URL override")
	root.PersistentFlags().IntVar(&opts.timeoutSeconds, "timeout", opts.timeoutSeconds, "provider request timeout in seconds")
	root.PersistentFlags().BoolVar(&opts.metricsEnabled, "metrics", false, "serve prometheus metrics and health over HTTP")
	root.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "listen address for the metrics server")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("cufmcp " + domain.Version)
		},
	})

	if err := root.Execute(); err != nil {
		opts.logger.Fatal("command failed", zap.Error(err))
	}
}

func runServer(cmd *cobra.Command, opts *serverOptions) error {
	ctx, cancel := signalAwareContext(cmd.Context())
	defer cancel()

	cfg, err := config.NewLoader(opts.logger).Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, opts, &cfg)

	if cfg.APIKey == "" {
		return domain.ErrMissingAPIKey
	}

	metrics := domain.Metrics(domain.NopMetrics{})
	if cfg.Observability.Enabled {
		prom := telemetry.NewPrometheusMetrics(nil)
		metrics = prom
		go func() {
			if err := telemetry.StartHTTPServer(ctx, telemetry.HTTPServerOptions{
				Addr: cfg.Observability.ListenAddress,
			}, opts.logger); err != nil {
				opts.logger.Error("observability server failed", zap.Error(err))
			}
		}()
	}

	client, err := cufinder.New(cufinder.Options{
		Config:  cfg,
		Logger:  opts.logger,
		Metrics: metrics,
	})
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cufinder-mcp",
		Version: domain.Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	tools.NewDispatcher(tools.DispatcherOptions{
		Client:  client,
		Logger:  opts.logger,
		Metrics: metrics,
	}).Register(server)

	opts.logger.Info("server starting (stdio transport)",
		zap.String("base_url", cfg.BaseURL),
		zap.Int("timeout_seconds", cfg.TimeoutSeconds),
	)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func applyFlagOverrides(cmd *cobra.Command, opts *serverOptions, cfg *domain.Config) {
	flags := cmd.Flags()
	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = opts.timeoutSeconds
	}
	if flags.Changed("metrics") {
		cfg.Observability.Enabled = opts.metricsEnabled
	}
	if opts.metricsAddr != "" {
		cfg.Observability.ListenAddress = opts.metricsAddr
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
