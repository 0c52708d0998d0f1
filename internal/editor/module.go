package editor

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"github.com/shandysiswandi/corpuseditor/internal/editor/controller"
	"github.com/shandysiswandi/corpuseditor/internal/editor/inbound"
	"github.com/shandysiswandi/corpuseditor/internal/editor/routing"
	"github.com/shandysiswandi/corpuseditor/internal/editor/view"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkguid"
)

type Dependency struct {
	Config       pkgconfig.Config
	Router       *pkgrouter.Router
	Context      context.Context
	Metrics      *pkgmetric.Metrics
	NavigationID pkguid.NumberID

	// Table defaults to routing.DefaultTable.
	Table *routing.Table
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Table == nil {
		dep.Table = routing.DefaultTable()
	}

	renderer, err := view.NewRenderer(dep.Context, templates(dep.Config), dep.Table.Templates())
	if err != nil {
		return nil, err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, inbound.Dependency{
		Table:        dep.Table,
		Renderer:     renderer,
		Controllers:  controller.NewSet(),
		Metrics:      dep.Metrics,
		NavigationID: dep.NavigationID,
		ReuseHeader:  dep.Config.GetString("editor.layout.reuse_header"),
	})

	slog.InfoContext(dep.Context, "editor routes registered",
		"routes", len(dep.Table.Routes()),
		"default_path", dep.Table.DefaultPath(),
	)

	return nil, nil
}

func templates(cfg pkgconfig.Config) fs.FS {
	if dir := cfg.GetString("editor.templates.dir"); dir != "" {
		return os.DirFS(dir)
	}
	return view.Embedded()
}
