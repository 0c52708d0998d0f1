package editor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/corpuseditor/internal/editor/entity"
	"github.com/shandysiswandi/corpuseditor/internal/editor/routing"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgmetric"
	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkgrouter"
)

func newConfig(t *testing.T, content string) pkgconfig.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	return cfg
}

func TestNewMountsEmbeddedTemplates(t *testing.T) {
	router := pkgrouter.NewRouter(nil)

	closer, err := New(Dependency{
		Config:  newConfig(t, "tz: UTC\n"),
		Router:  router,
		Context: context.Background(),
		Metrics: pkgmetric.New(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if closer != nil {
		t.Fatalf("expected no closer")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dictionary", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `class="dictionary"`) {
		t.Fatalf("unexpected response %d:\n%s", rec.Code, rec.Body.String())
	}
}

func TestNewUsesTemplateDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"layout.html":             `<body>{{.Main}}|{{.Sidebar}}</body>`,
		"partials/only-main.html": `custom {{.Title}}`,
		"partials/only-side.html": `side`,
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	table, err := routing.NewTable([]entity.Route{{
		Path:       "/dictionary",
		Layout:     entity.TemplateLayout,
		Main:       "partials/only-main.html",
		Sidebar:    "partials/only-side.html",
		Controller: entity.ControllerDictionary,
	}}, "/dictionary")
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	router := pkgrouter.NewRouter(nil)
	if _, err := New(Dependency{
		Config:  newConfig(t, "editor:\n  templates:\n    dir: "+dir+"\n"),
		Router:  router,
		Context: context.Background(),
		Table:   table,
	}); err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dictionary", nil))
	if got := rec.Body.String(); got != "<body>custom Dictionary|side</body>" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestNewFailsOnMissingTemplates(t *testing.T) {
	_, err := New(Dependency{
		Config:  newConfig(t, "editor:\n  templates:\n    dir: "+t.TempDir()+"\n"),
		Router:  pkgrouter.NewRouter(nil),
		Context: context.Background(),
	})
	if err == nil {
		t.Fatalf("expected error for empty template dir")
	}
}
