package routing

import (
	"fmt"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
)

// DefaultPath is where unmatched paths are redirected in the default table.
const DefaultPath = "/article"

type rule struct {
	route   entity.Route
	pattern Pattern
}

// Table is an ordered, immutable route table. It is safe for concurrent use.
type Table struct {
	rules       []rule
	defaultPath string
}

// NewTable compiles routes in registration order.
//
// defaultPath must itself be matched by one of the routes, so that a redirect
// to it always lands on a concrete rule.
func NewTable(routes []entity.Route, defaultPath string) (*Table, error) {
	rules := make([]rule, 0, len(routes))
	for _, r := range routes {
		pattern, err := ParsePattern(r.Path)
		if err != nil {
			return nil, err
		}
		if !r.Controller.Valid() {
			return nil, pkgerror.NewInvalidInput(fmt.Errorf("%w: %q", ErrUnknownController, r.Path))
		}
		rules = append(rules, rule{route: r, pattern: pattern})
	}

	t := &Table{rules: rules, defaultPath: defaultPath}
	if _, ok := t.Match(defaultPath); !ok {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("%w: %q", ErrUnresolvableDefault, defaultPath))
	}

	return t, nil
}

// DefaultRoutes returns the corpus editor's routes in registration order.
func DefaultRoutes() []entity.Route {
	return []entity.Route{
		{
			Path:       "/article",
			Layout:     entity.TemplateLayout,
			Main:       entity.TemplateArticleList,
			Sidebar:    entity.TemplateArticleListSide,
			Controller: entity.ControllerArticleList,
		},
		{
			Path:       "/article/:" + entity.ParamArticleID,
			Layout:     entity.TemplateLayout,
			Main:       entity.TemplateArticleDetail,
			Sidebar:    entity.TemplateArticleDetailSide,
			Controller: entity.ControllerArticleDetail,
		},
		{
			Path:       "/dictionary",
			Layout:     entity.TemplateLayout,
			Main:       entity.TemplateDictionaryMain,
			Sidebar:    entity.TemplateSidebarIndex,
			Controller: entity.ControllerDictionary,
		},
	}
}

// DefaultTable builds the corpus editor's route table.
func DefaultTable() *Table {
	t, err := NewTable(DefaultRoutes(), DefaultPath)
	if err != nil {
		panic(fmt.Sprintf("routing: default table: %v", err))
	}
	return t
}

// Match returns the first rule matching path, without applying the default.
func (t *Table) Match(path string) (entity.Resolution, bool) {
	for _, r := range t.rules {
		if params, ok := r.pattern.Match(path); ok {
			return entity.Resolution{
				Route:         r.route,
				Params:        params,
				RequestedPath: path,
				Path:          path,
			}, true
		}
	}
	return entity.Resolution{}, false
}

// Resolve returns the first rule matching path. When nothing matches, it
// follows a single redirect to the default path.
func (t *Table) Resolve(path string) entity.Resolution {
	if res, ok := t.Match(path); ok {
		return res
	}

	// NewTable guarantees the default path matches a rule.
	res, _ := t.Match(t.defaultPath)
	res.RequestedPath = path
	res.Redirected = true

	return res
}

// Routes returns a copy of the routes in registration order.
func (t *Table) Routes() []entity.Route {
	routes := make([]entity.Route, 0, len(t.rules))
	for _, r := range t.rules {
		routes = append(routes, r.route)
	}
	return routes
}

// Templates returns every distinct template referenced by the table, in
// first-use order.
func (t *Table) Templates() []entity.Template {
	seen := make(map[entity.Template]struct{})
	var out []entity.Template
	for _, r := range t.rules {
		for _, tpl := range r.route.Templates() {
			if _, ok := seen[tpl]; ok {
				continue
			}
			seen[tpl] = struct{}{}
			out = append(out, tpl)
		}
	}
	return out
}

// DefaultPath returns the redirect target for unmatched paths.
func (t *Table) DefaultPath() string {
	return t.defaultPath
}
