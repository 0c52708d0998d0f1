package view

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/editor/routing"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgerror"
)

func newTestRenderer(t *testing.T) (*Renderer, *routing.Table) {
	t.Helper()

	table := routing.DefaultTable()
	r, err := NewRenderer(context.Background(), Embedded(), table.Templates())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, table
}

func TestPageComposesLayoutAndRegions(t *testing.T) {
	r, table := newTestRenderer(t)

	res := table.Resolve("/article/42")
	data := entity.ViewData{
		Title:   "Article 42",
		Section: "article",
		Values:  map[string]any{entity.ParamArticleID: "42"},
	}

	var buf bytes.Buffer
	if err := r.Page(&buf, res, data); err != nil {
		t.Fatalf("Page: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`data-layout="layout.html"`,
		`data-path="/article/42"`,
		`class="article-detail" data-article-id="42"`,
		`class="article-detail-side"`,
		`<title>Article 42 · Corpus Editor</title>`,
		`<a href="/article" class="active">Articles</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected page to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPageEscapesViewData(t *testing.T) {
	r, table := newTestRenderer(t)

	res := table.Resolve("/article/x")
	data := entity.ViewData{
		Title:  "<script>",
		Values: map[string]any{entity.ParamArticleID: `"><b>`},
	}

	var buf bytes.Buffer
	if err := r.Page(&buf, res, data); err != nil {
		t.Fatalf("Page: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") || strings.Contains(buf.String(), `"><b>`) {
		t.Fatalf("expected escaped output, got:\n%s", buf.String())
	}
}

func TestRegions(t *testing.T) {
	r, table := newTestRenderer(t)

	res := table.Resolve("/dictionary")
	frag, err := r.Regions(res, entity.ViewData{Title: "Dictionary", Section: "dictionary"})
	if err != nil {
		t.Fatalf("Regions: %v", err)
	}

	if frag.Layout != "layout.html" || frag.Path != "/dictionary" || frag.Title != "Dictionary" {
		t.Fatalf("unexpected fragment header: %#v", frag)
	}
	if !strings.Contains(frag.Main, `class="dictionary"`) {
		t.Fatalf("unexpected main region: %q", frag.Main)
	}
	if !strings.Contains(frag.Sidebar, `class="sidebar-index"`) {
		t.Fatalf("unexpected sidebar region: %q", frag.Sidebar)
	}
	if strings.Contains(frag.Main, "<html") {
		t.Fatalf("regions must not include the layout shell")
	}
}

func TestNewRendererMissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`{{.Main}}`)},
	}

	_, err := NewRenderer(context.Background(), fsys, []entity.Template{entity.TemplateLayout, entity.TemplateArticleList})

	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Type() != pkgerror.TypeServer {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestNewRendererParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`{{.Main`)},
	}

	if _, err := NewRenderer(context.Background(), fsys, []entity.Template{entity.TemplateLayout}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewRendererCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRenderer(ctx, Embedded(), routing.DefaultTable().Templates()); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := entity.Resolution{Route: entity.Route{Layout: entity.TemplateLayout, Main: "missing.html", Sidebar: entity.TemplateSidebarIndex}}

	var buf bytes.Buffer
	if err := r.Page(&buf, res, entity.ViewData{}); err == nil {
		t.Fatalf("expected error for unknown template")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written on failure, got %q", buf.String())
	}
}
