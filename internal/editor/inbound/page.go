package inbound

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkglog"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkguid"
)

// PageHandler serves page navigations: it resolves the request path against
// the route table, binds the matched controller and renders the layout.
// Unmatched paths are redirected to the table's default path.
type PageHandler struct {
	table       resolver
	renderer    renderer
	controllers controllers
	metrics     *pkgmetric.Metrics
	navID       pkguid.NumberID
	reuseHeader string
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		pkgrouter.WriteError(r.Context(), w, pkgerror.NewMethodNotAllowed(r.Method))
		return
	}

	ctx := r.Context()
	if h.navID != nil {
		nid := h.navID.Generate()
		ctx = pkglog.SetNavigationID(ctx, nid)
		w.Header().Set(HeaderNavigationID, strconv.FormatInt(nid, 10))
	}

	res := h.table.Resolve(r.URL.Path)
	route := res.Route.Path
	h.metrics.Navigation(route, res.Route.Controller.String(), res.Redirected)

	if res.Redirected {
		slog.InfoContext(ctx, "navigation redirected",
			"requested_path", res.RequestedPath,
			"location", res.Path,
		)
		http.Redirect(w, r, res.Path, http.StatusFound)
		return
	}

	ctrl, err := h.controllers.For(res.Route.Controller)
	if err != nil {
		h.fail(w, r.WithContext(ctx), route, err)
		return
	}

	data, err := ctrl.Bind(ctx, res.Params)
	if err != nil {
		h.fail(w, r.WithContext(ctx), route, err)
		return
	}

	w.Header().Add("Vary", h.reuseHeader)

	start := time.Now()
	if r.Header.Get(h.reuseHeader) == string(res.Route.Layout) {
		frag, err := h.renderer.Regions(res, data)
		if err != nil {
			h.fail(w, r.WithContext(ctx), route, err)
			return
		}
		h.metrics.RenderDuration(route, pkgmetric.ModeRegions, time.Since(start))
		h.logNavigation(r.WithContext(ctx), res, pkgmetric.ModeRegions)

		pkgrouter.WriteJSON(w, frag, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, res, data); err != nil {
		w.Header().Del("Content-Type")
		h.fail(w, r.WithContext(ctx), route, err)
		return
	}
	h.metrics.RenderDuration(route, pkgmetric.ModePage, time.Since(start))
	h.logNavigation(r.WithContext(ctx), res, pkgmetric.ModePage)
}

func (h *PageHandler) logNavigation(r *http.Request, res entity.Resolution, mode string) {
	slog.InfoContext(r.Context(), "navigation resolved",
		"route", res.Route.Path,
		"controller", res.Route.Controller.String(),
		"params", res.Params.Map(),
		"mode", mode,
	)
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, route string, err error) {
	h.metrics.RenderError(route)
	slog.WarnContext(r.Context(), "navigation failed", "route", route, "error", err)
	pkgrouter.WriteError(r.Context(), w, err)
}
