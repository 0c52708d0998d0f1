package view

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgroutine"
)

//go:embed templates
var embedded embed.FS

// Embedded returns the built-in templates, rooted so that names match the
// template references of the route table (e.g. "partials/article-list.html").
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("view: embedded templates: %v", err))
	}
	return sub
}

// Fragment is the rendered content of both regions, used when the client
// keeps its current layout and only swaps the regions.
type Fragment struct {
	Layout  string `json:"layout"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Main    string `json:"main"`
	Sidebar string `json:"sidebar"`
}

type layoutData struct {
	Title   string
	Section string
	Layout  string
	Path    string
	Main    template.HTML
	Sidebar template.HTML
}

// Renderer composes the layout shell and its main and sidebar regions.
// Templates are parsed once, so a Renderer is safe for concurrent use.
type Renderer struct {
	templates map[entity.Template]*template.Template
}

// NewRenderer loads every named template from fsys concurrently. Any load
// failure fails construction.
func NewRenderer(ctx context.Context, fsys fs.FS, names []entity.Template) (*Renderer, error) {
	var mu sync.Mutex
	templates := make(map[entity.Template]*template.Template, len(names))

	runner := pkgroutine.NewManager(len(names))
	for _, name := range names {
		name := name // per-iteration copy; module targets go 1.21 loop semantics
		runner.Go(ctx, func(context.Context) error {
			tpl, err := load(fsys, name)
			if err != nil {
				return err
			}

			mu.Lock()
			templates[name] = tpl
			mu.Unlock()
			return nil
		})
	}

	if err := runner.Wait(); err != nil {
		var perr *pkgerror.Error
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, pkgerror.NewServer(fmt.Errorf("view: load templates: %w", err))
	}

	return &Renderer{templates: templates}, nil
}

func load(fsys fs.FS, name entity.Template) (*template.Template, error) {
	raw, err := fs.ReadFile(fsys, string(name))
	if err != nil {
		return nil, pkgerror.NewServer(fmt.Errorf("view: read %s: %w", name, err))
	}

	tpl, err := template.New(string(name)).Parse(string(raw))
	if err != nil {
		return nil, pkgerror.NewServer(fmt.Errorf("view: parse %s: %w", name, err))
	}

	return tpl, nil
}

// Page renders the full layout shell for res into w. Nothing is written when
// rendering fails.
func (r *Renderer) Page(w io.Writer, res entity.Resolution, data entity.ViewData) error {
	main, sidebar, err := r.regions(res.Route, data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = r.execute(&buf, res.Route.Layout, layoutData{
		Title:   data.Title,
		Section: data.Section,
		Layout:  string(res.Route.Layout),
		Path:    res.Path,
		//nolint:gosec // output of html/template, already escaped
		Main: template.HTML(main),
		//nolint:gosec // output of html/template, already escaped
		Sidebar: template.HTML(sidebar),
	})
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return pkgerror.NewServer(fmt.Errorf("view: write page: %w", err))
	}
	return nil
}

// Regions renders only the main and sidebar regions for res.
func (r *Renderer) Regions(res entity.Resolution, data entity.ViewData) (Fragment, error) {
	main, sidebar, err := r.regions(res.Route, data)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{
		Layout:  string(res.Route.Layout),
		Path:    res.Path,
		Title:   data.Title,
		Main:    main,
		Sidebar: sidebar,
	}, nil
}

func (r *Renderer) regions(route entity.Route, data entity.ViewData) (string, string, error) {
	var main, sidebar bytes.Buffer
	if err := r.execute(&main, route.Main, data); err != nil {
		return "", "", err
	}
	if err := r.execute(&sidebar, route.Sidebar, data); err != nil {
		return "", "", err
	}
	return main.String(), sidebar.String(), nil
}

func (r *Renderer) execute(w io.Writer, name entity.Template, data any) error {
	tpl, ok := r.templates[name]
	if !ok {
		return pkgerror.NewServer(fmt.Errorf("view: template %s not loaded", name))
	}
	if err := tpl.Execute(w, data); err != nil {
		return pkgerror.NewServer(fmt.Errorf("view: execute %s: %w", name, err))
	}
	return nil
}
