package inbound

import (
	"context"
	"errors"
	"net/http"

	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	table resolver
}

func (h *HTTPEndpoint) Routes(_ context.Context, _ *http.Request) (any, error) {
	routes := h.table.Routes()

	resp := RoutesResponse{
		Routes:      make([]Route, 0, len(routes)),
		defaultPath: h.table.DefaultPath(),
	}
	for _, r := range routes {
		resp.Routes = append(resp.Routes, toHTTPRoute(r))
	}

	return resp, nil
}

func (h *HTTPEndpoint) Resolve(_ context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()
	if !query.Has("path") {
		return nil, pkgerror.NewInvalidInput(errors.New("path is required"))
	}

	res := h.table.Resolve(query.Get("path"))

	return ResolveResponse{
		RequestedPath: res.RequestedPath,
		Path:          res.Path,
		Redirected:    res.Redirected,
		Route:         toHTTPRoute(res.Route),
		Params:        res.Params.Map(),
	}, nil
}
