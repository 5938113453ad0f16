package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/rowfilter/modules/catalog"
	"github.com/dmitrymomot/rowfilter/pkg/config"
	"github.com/dmitrymomot/rowfilter/pkg/httpserver"
	"github.com/dmitrymomot/rowfilter/pkg/logger"
	"github.com/dmitrymomot/rowfilter/pkg/pg"
	"github.com/dmitrymomot/rowfilter/pkg/requestid"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"rowfilter"`
	ScriptURL string `env:"DATASTAR_SCRIPT_URL"`
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "serve the searchable catalog",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "addr",
			Usage: "listen address, overrides HTTP_ADDR",
		},
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "read environment variables from `FILE` before loading config; repeatable",
		},
	},
	Action: serveAction,
}

func serveAction(c *cli.Context) error {
	if err := config.LoadEnv(c.StringSlice("env-file")...); err != nil {
		return err
	}

	var (
		appCfg  appConfig
		httpCfg httpserver.Config
		pgCfg   pg.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&pgCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	storage, ready, closeStorage, err := openStorage(c.Context, pgCfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	router := newRouter(storage, catalog.DefaultViews(appCfg.ScriptURL), log, ready)
	srv := httpserver.New(httpCfg,
		httpserver.WithAddr(c.String("addr")),
		httpserver.WithLogger(log),
	)
	return srv.Run(c.Context, router)
}

// openStorage connects to PostgreSQL and applies migrations when configured,
// and falls back to the in-memory seed catalog otherwise.
func openStorage(ctx context.Context, cfg pg.Config, log *slog.Logger) (catalog.Storage, func(context.Context) error, func(), error) {
	if !cfg.Enabled() {
		log.Info("PG_CONN_URL not set, using in-memory catalog")
		storage := catalog.NewSeededMemoryStorage()
		return storage, func(context.Context) error { return nil }, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pg.Migrate(ctx, pool, cfg, catalog.Migrations(), log); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	return catalog.NewPGStorage(pool), pg.Healthcheck(pool), pool.Close, nil
}

func newRouter(storage catalog.Storage, views *catalog.Views, log *slog.Logger, ready func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ready))
	r.Mount("/", catalog.NewService(storage, views, log).Handle())

	return r
}
