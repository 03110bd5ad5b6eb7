package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecommendationServed(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector()
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}

	collector.RecommendationServed("ai")
	collector.RecommendationServed("ai")
	collector.RecommendationServed("mock")

	if got := testutil.ToFloat64(collector.recommendationsTotal.WithLabelValues("ai")); got != 2 {
		t.Fatalf("expected 2 ai recommendations, got %v", got)
	}
	if got := testutil.ToFloat64(collector.recommendationsTotal.WithLabelValues("mock")); got != 1 {
		t.Fatalf("expected 1 mock recommendation, got %v", got)
	}
}

func TestInstrumentHandlerRecordsRequests(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector()
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}

	handler := collector.InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/recommend", nil))

	if got := testutil.ToFloat64(collector.requestTotal.WithLabelValues("POST", "/api/recommend", "400")); got != 1 {
		t.Fatalf("expected 1 counted request, got %v", got)
	}
}

func TestHandlerExposesScrapeOutput(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector()
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}
	collector.RecommendationServed("mock")

	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from scrape endpoint, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `advisor_recommendations_total{source="mock"} 1`) {
		t.Fatalf("expected counter in scrape output, got:\n%s", rr.Body.String())
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	t.Parallel()

	// Each collector owns its registry, so two can coexist in one process.
	first, err := NewCollector()
	if err != nil {
		t.Fatalf("NewCollector failed: %v", err)
	}
	second, err := NewCollector()
	if err != nil {
		t.Fatalf("second NewCollector failed: %v", err)
	}

	first.RecommendationServed("ai")
	if got := testutil.ToFloat64(second.recommendationsTotal.WithLabelValues("ai")); got != 0 {
		t.Fatalf("expected independent registries, got %v", got)
	}
}
