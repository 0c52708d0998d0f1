package pkgmetric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNavigationCounter(t *testing.T) {
	m := New(WithRegistry(prometheus.NewRegistry()))

	m.Navigation("/article", "ArticleListController", true)
	m.Navigation("/article", "ArticleListController", true)
	m.Navigation("/dictionary", "DictionaryController", false)

	if got := testutil.ToFloat64(m.navigations.WithLabelValues("/article", "ArticleListController", "true")); got != 2 {
		t.Fatalf("expected 2 redirected navigations, got %v", got)
	}
	if got := testutil.ToFloat64(m.navigations.WithLabelValues("/dictionary", "DictionaryController", "false")); got != 1 {
		t.Fatalf("expected 1 dictionary navigation, got %v", got)
	}
}

func TestRenderMetrics(t *testing.T) {
	m := New()

	m.RenderDuration("/article/:articleId", ModePage, 5*time.Millisecond)
	m.RenderError("/article/:articleId")

	if got := testutil.CollectAndCount(m.renderDuration); got != 1 {
		t.Fatalf("expected 1 histogram series, got %d", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("/article/:articleId")); got != 1 {
		t.Fatalf("expected 1 render error, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Navigation("/article", "ArticleListController", false)
	m.RenderDuration("/article", ModeRegions, time.Millisecond)
	m.RenderError("/article")
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(WithNamespace("test"))
	m.Navigation("/article", "ArticleListController", false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(string(body), "test_navigations_total") {
		t.Fatalf("expected navigations metric in exposition, got:\n%s", body)
	}
}
