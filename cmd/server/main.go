package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/httpserver"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
	"github.com/dmitrymomot/regform/svc/countries"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"regform"`
	FormTitle string `env:"APP_FORM_TITLE" envDefault:"Registration"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ENV_FILE points at an extra dotenv file that overrides the process environment.
	if path := os.Getenv("ENV_FILE"); path != "" {
		if err := config.LoadEnv(path); err != nil {
			return err
		}
	}

	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		countryCfg countries.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if err := config.Load(&countryCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	catalog := countries.NewCatalogFromConfig(countryCfg, nil,
		countries.WithLogger(log),
		countries.WithMetrics(countries.NewMetrics(reg)),
	)
	// The fetch is never canceled; a failure is logged by the catalog and
	// the form then offers no countries.
	loading := catalog.Load(context.WithoutCancel(ctx))
	defer catalog.Close()

	form := registration.NewForm(catalog,
		registration.WithLogger(log),
		registration.WithMetrics(registration.NewMetrics(reg)),
	)
	svc := registration.NewService(form, catalog,
		registration.WithServiceLogger(log),
		registration.WithTitle(appCfg.FormTitle),
	)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, newRouter(log, reg, catalog, svc))
	})
	g.Go(func() error {
		entries, err := loading.AwaitContext(gctx)
		if err == nil {
			log.InfoContext(gctx, "country catalog ready",
				logger.Component("countries"),
				logger.Count(len(entries)),
			)
		}
		return nil
	})
	return g.Wait()
}

func newRouter(log *slog.Logger, reg *prometheus.Registry, catalog *countries.Catalog, svc *registration.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, catalog.Ready))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Mount("/", svc.Handle())
	return r
}
