package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkglog"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkguid"
)

// ServiceName tags every log record.
const ServiceName = "corpuseditor"

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid         pkguid.StringID
	navigationID pkguid.NumberID
	goroutine    *pkgroutine.Manager
	metrics      *pkgmetric.Metrics

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

// New builds the application from the config file at configPath.
func New(configPath string) *App {
	pkglog.InitLogging(ServiceName)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: configPath,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// Handler returns the application's HTTP handler, CORS included.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}
