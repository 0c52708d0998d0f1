package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/corpuseditor/internal/editor/inbound"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkglog"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(a.configPath)
	if err != nil {
		slog.Error("failed to init config", "path", a.configPath, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if !pkglog.SetLevel(cfg.GetString("log.level")) {
		slog.Warn("unknown log level, keeping default", "level", cfg.GetString("log.level"))
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(int(a.config.GetInt("goroutine.max")))
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.navigationID = sf

	a.metrics = pkgmetric.New()
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	if a.config.GetBool("metrics.enabled") {
		a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			pkgrouter.HeaderCorrelationID,
			inbound.HeaderNavigationID,
		},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
