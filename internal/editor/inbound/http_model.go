package inbound

import "github.com/shandysiswandi/corpuseditor/internal/editor/entity"

type Route struct {
	Path       string `json:"path"`
	Layout     string `json:"layout"`
	Main       string `json:"main"`
	Sidebar    string `json:"sidebar"`
	Controller string `json:"controller"`
}

type RoutesResponse struct {
	Routes []Route `json:"routes"`

	defaultPath string
}

func (r RoutesResponse) Meta() map[string]any {
	return map[string]any{
		"default_path": r.defaultPath,
		"total":        len(r.Routes),
	}
}

type ResolveResponse struct {
	RequestedPath string            `json:"requested_path"`
	Path          string            `json:"path"`
	Redirected    bool              `json:"redirected"`
	Route         Route             `json:"route"`
	Params        map[string]string `json:"params"`
}

func toHTTPRoute(r entity.Route) Route {
	return Route{
		Path:       r.Path,
		Layout:     string(r.Layout),
		Main:       string(r.Main),
		Sidebar:    string(r.Sidebar),
		Controller: r.Controller.String(),
	}
}
