package inbound

import (
	"io"

	"github.com/shandysiswandi/corpuseditor/internal/editor/controller"
	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/editor/view"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkguid"
)

// DefaultReuseHeader names the header a client sends with its active layout.
const DefaultReuseHeader = "X-Active-Layout"

// HeaderNavigationID carries the ID assigned to a page navigation.
const HeaderNavigationID = "X-Navigation-ID"

type resolver interface {
	Resolve(path string) entity.Resolution
	Routes() []entity.Route
	DefaultPath() string
}

type renderer interface {
	Page(w io.Writer, res entity.Resolution, data entity.ViewData) error
	Regions(res entity.Resolution, data entity.ViewData) (view.Fragment, error)
}

type controllers interface {
	For(kind entity.ControllerKind) (controller.Controller, error)
}

// Dependency is what the editor endpoints need.
type Dependency struct {
	Table        resolver
	Renderer     renderer
	Controllers  controllers
	Metrics      *pkgmetric.Metrics
	NavigationID pkguid.NumberID
	ReuseHeader  string
}

// RegisterHTTPEndpoint mounts the route API and makes page navigation the
// router's fallback for every path no API endpoint owns.
func RegisterHTTPEndpoint(r *pkgrouter.Router, dep Dependency) {
	if dep.ReuseHeader == "" {
		dep.ReuseHeader = DefaultReuseHeader
	}

	end := &HTTPEndpoint{table: dep.Table}

	r.GET("/api/routes", end.Routes)
	r.GET("/api/routes/resolve", end.Resolve) // ?path=

	r.NotFound(&PageHandler{
		table:       dep.Table,
		renderer:    dep.Renderer,
		controllers: dep.Controllers,
		metrics:     dep.Metrics,
		navID:       dep.NavigationID,
		reuseHeader: dep.ReuseHeader,
	})
}
