package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dropship-gateway/internal/api/handlers"
	mw "github.com/donaldgifford/dropship-gateway/internal/api/middleware"
	"github.com/donaldgifford/dropship-gateway/internal/cj"
	"github.com/donaldgifford/dropship-gateway/internal/config"
	"github.com/donaldgifford/dropship-gateway/internal/engine"
	"github.com/donaldgifford/dropship-gateway/internal/notify"
	"github.com/donaldgifford/dropship-gateway/internal/order"
	"github.com/donaldgifford/dropship-gateway/internal/store"
	"github.com/donaldgifford/dropship-gateway/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gateway API server and drift sweep scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	tier, err := cj.ParseTier(cfg.CJ.Tier)
	if err != nil {
		return fmt.Errorf("parsing tier: %w", err)
	}

	gateway := cj.NewGatewayClient(cfg.CJ.Email, cfg.CJ.APIKey,
		cj.WithBaseURL(cfg.CJ.BaseURL),
		cj.WithGatewayHTTPClient(&http.Client{Timeout: cfg.CJ.Timeout}),
		cj.WithRateLimiter(cj.NewRateLimiter(tier)),
		cj.WithSearchCache(cj.NewSearchCache(
			cj.WithCacheTTL(cfg.CJ.Cache.TTL),
			cj.WithCacheMaxEntries(cfg.CJ.Cache.MaxEntries),
		)),
		cj.WithGatewayLogger(log),
	)
	defer gateway.Close()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifications.Webhook.Enabled {
		notifier = notify.NewWebhookNotifier(cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		)
	}

	paginator := cj.NewPaginator(gateway, st,
		cj.WithPageSize(cfg.CJ.PageSize),
		cj.WithMaxPages(cfg.CJ.MaxPages),
		cj.WithPaginatorLogger(log),
	)

	resolver := order.NewVariantResolver(gateway, order.WithResolverLogger(log))
	transformer := order.NewTransformer(resolver, st, order.WithTransformerLogger(log))
	orderSvc := order.NewService(st, transformer, gateway,
		order.WithServiceLogger(log),
		order.WithServiceNotifier(notifier),
	)

	sweeper := engine.NewEngine(st, resolver,
		engine.WithLogger(log),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
		engine.WithNotifier(notifier),
	)
	scheduler, err := engine.NewScheduler(sweeper, cfg.Schedule.DriftInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Dropship Gateway API", Version)
	api := humaecho.New(e, humaCfg)

	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(gateway, paginator))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(orderSvc))
	handlers.RegisterConnectionRoutes(api, handlers.NewConnectionHandler(gateway))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "tier", string(tier))

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
