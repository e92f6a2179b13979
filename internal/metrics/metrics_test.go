package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestCollector_RecordRequest は記録したメトリクスが/metrics出力に
// 反映されることをテストする。
func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, "/api/articles", http.StatusOK, 25*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/api/articles", http.StatusOK, 30*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/api/articles/{article_id}/comments", http.StatusCreated, 40*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, `newsboard_http_requests_total{method="GET",route="/api/articles",status_code="200"} 2`) {
		t.Error("expected request counter for GET /api/articles to be 2")
	}
	if !strings.Contains(body, `newsboard_http_requests_total{method="POST",route="/api/articles/{article_id}/comments",status_code="201"} 1`) {
		t.Error("expected request counter for POST comments to be 1")
	}
	if !strings.Contains(body, "newsboard_http_request_duration_seconds") {
		t.Error("expected duration histogram in metrics output")
	}
}

// TestCollector_IsolatedRegistry はCollectorごとに独立したレジストリを
// 持ち、二重登録パニックが起きないことをテストする。
func TestCollector_IsolatedRegistry(t *testing.T) {
	c1 := NewCollector()
	c2 := NewCollector()

	c1.RecordRequest(http.MethodGet, "/api/topics", http.StatusOK, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c2.Handler().ServeHTTP(w, req)

	if strings.Contains(w.Body.String(), `route="/api/topics"`) {
		t.Error("collectors should not share state")
	}
}
