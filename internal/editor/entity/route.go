package entity

// Template is an opaque view resource identified by its path string.
type Template string

const (
	TemplateLayout            Template = "layout.html"
	TemplateArticleList       Template = "partials/article-list.html"
	TemplateArticleListSide   Template = "partials/article-list-side.html"
	TemplateArticleDetail     Template = "partials/article-detail.html"
	TemplateArticleDetailSide Template = "partials/article-detail-side.html"
	TemplateDictionaryMain    Template = "partials/dictionary/main.html"
	TemplateSidebarIndex      Template = "partials/sidebar-index.html"
)

// Route maps a path pattern to the templates and controller of a page.
type Route struct {
	Path       string
	Layout     Template
	Main       Template
	Sidebar    Template
	Controller ControllerKind
}

// Templates returns every template the route references, layout first.
func (r Route) Templates() []Template {
	return []Template{r.Layout, r.Main, r.Sidebar}
}

// Param is a single captured path parameter.
type Param struct {
	Key   string
	Value string
}

// Params holds the parameters captured by a match, in pattern order.
type Params []Param

// ByName returns the value of the first parameter with the given key, or "".
func (ps Params) ByName(key string) string {
	for _, p := range ps {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Map returns the params as a map. It never returns nil.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}

// Resolution is the outcome of resolving a path against a route table.
//
// When no rule matches the requested path, Redirected is true and Path holds
// the default path that Route was resolved from.
type Resolution struct {
	Route         Route
	Params        Params
	RequestedPath string
	Path          string
	Redirected    bool
}

// ViewData is what a controller binds into the main and sidebar regions.
type ViewData struct {
	Title   string
	Section string
	Values  map[string]any
}
