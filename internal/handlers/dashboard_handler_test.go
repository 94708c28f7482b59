package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"ecommerce-dashboard/internal/cache"
	"ecommerce-dashboard/internal/charts"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/observability"
)

func newTestHandler(t *testing.T) *DashboardHandler {
	t.Helper()
	return newHandlerFor(t, "../dataset/testdata/sample.csv")
}

func newHandlerFor(t *testing.T, path string) *DashboardHandler {
	t.Helper()
	ds, err := dataset.LoadFile(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	figs, err := charts.Build(ds)
	if err != nil {
		t.Fatalf("build charts: %v", err)
	}
	store := cache.New(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	return &DashboardHandler{
		Dataset: ds,
		Figures: figs,
		Store:   store,
		Metrics: observability.New(),
		TTL:     time.Minute,
	}
}

func setupRouter(h *DashboardHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/charts/:file", h.ChartPNG)
	r.GET("/api/charts", h.ListCharts)
	r.GET("/api/charts/:id", h.ChartOptions)
	r.GET("/api/summary", h.Summary)
	r.DELETE("/api/cache", h.PurgeCache)
	r.GET("/healthz", h.Health)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestIndexRendersAllChartsAndCaches(t *testing.T) {
	h := newTestHandler(t)
	r := setupRouter(h)

	w := do(r, http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	body := w.Body.String()
	for _, f := range h.Figures {
		if !strings.Contains(body, charts.ChartID(f.ID())) {
			t.Fatalf("page missing chart %s", f.ID())
		}
	}

	second := do(r, http.MethodGet, "/")
	if second.Body.String() != body {
		t.Fatalf("cached page differs from first render")
	}
	if v := testutil.ToFloat64(h.Metrics.PageRenders); v != 1 {
		t.Fatalf("page rendered %v times, want 1", v)
	}
}

func TestWarm(t *testing.T) {
	h := newTestHandler(t)
	if err := h.Warm(context.Background()); err != nil {
		t.Fatalf("Warm: %v", err)
	}
	do(setupRouter(h), http.MethodGet, "/")
	if v := testutil.ToFloat64(h.Metrics.PageRenders); v != 1 {
		t.Fatalf("page rendered %v times after warm, want 1", v)
	}
}

func TestChartPNG(t *testing.T) {
	h := newTestHandler(t)
	r := setupRouter(h)

	w := do(r, http.MethodGet, "/charts/"+charts.IDGenderPie+".png?width=400&height=300")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("body is not a PNG")
	}
	if v := testutil.ToFloat64(h.Metrics.ChartExports.WithLabelValues(charts.IDGenderPie)); v != 1 {
		t.Fatalf("exports = %v", v)
	}
}

func TestChartPNGErrors(t *testing.T) {
	r := setupRouter(newTestHandler(t))
	cases := []struct {
		path string
		code int
	}{
		{"/charts/unknown.png", http.StatusNotFound},
		{"/charts/" + charts.IDGenderPie + ".jpg", http.StatusNotFound},
		{"/charts/" + charts.IDGenderPie, http.StatusNotFound},
		{"/charts/" + charts.IDGenderPie + ".png?width=50", http.StatusBadRequest},
		{"/charts/" + charts.IDGenderPie + ".png?height=9000", http.StatusBadRequest},
		{"/charts/" + charts.IDGenderPie + ".png?width=abc", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := do(r, http.MethodGet, tc.path)
		if w.Code != tc.code {
			t.Fatalf("%s: status = %d, want %d", tc.path, w.Code, tc.code)
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Error == "" {
			t.Fatalf("%s: expected JSON error, got %q", tc.path, w.Body.String())
		}
	}
}

func TestListCharts(t *testing.T) {
	h := newTestHandler(t)
	w := do(setupRouter(h), http.MethodGet, "/api/charts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ChartListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 7 || len(resp.Charts) != 7 {
		t.Fatalf("got %d charts", len(resp.Charts))
	}
	for i, f := range h.Figures {
		if resp.Charts[i].ID != f.ID() || resp.Charts[i].PNG != "/charts/"+f.ID()+".png" {
			t.Fatalf("chart %d = %+v", i, resp.Charts[i])
		}
	}
}

func TestChartOptions(t *testing.T) {
	r := setupRouter(newTestHandler(t))
	w := do(r, http.MethodGet, "/api/charts/"+charts.IDTopBrandsBar)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Top 10 Marcas") {
		t.Fatalf("options missing title: %s", w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/charts/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown chart status = %d", w.Code)
	}
}

func TestSummary(t *testing.T) {
	r := setupRouter(newTestHandler(t))
	w := do(r, http.MethodGet, "/api/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rows != 26 || len(resp.Columns) != 14 || len(resp.Head) != 5 {
		t.Fatalf("rows=%d columns=%d head=%d", resp.Rows, len(resp.Columns), len(resp.Head))
	}
	if resp.Head[0].Marca != "Lupo" {
		t.Fatalf("first row = %+v", resp.Head[0])
	}
	var preco *ColumnSummary
	for i := range resp.Describe {
		if resp.Describe[i].Column == "Preço" {
			preco = &resp.Describe[i]
		}
	}
	if preco == nil || preco.Count != 26 || preco.Min != 30.4 || preco.Max != 169.4 {
		t.Fatalf("price summary = %+v", preco)
	}

	cached := do(r, http.MethodGet, "/api/summary")
	if cached.Body.String() != w.Body.String() {
		t.Fatalf("cached summary differs")
	}

	w = do(r, http.MethodGet, "/api/summary?head=2")
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Head) != 2 {
		t.Fatalf("head=2 returned %d rows", len(resp.Head))
	}
	w = do(r, http.MethodGet, "/api/summary?head=500")
	var errResp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil || w.Code != http.StatusBadRequest {
		t.Fatalf("head=500 status = %d body=%s", w.Code, w.Body.String())
	}
	if errResp.Field != "head" || errResp.Error == "" {
		t.Fatalf("head=500 error = %+v", errResp)
	}
}

func TestSummarySkipsBlankCells(t *testing.T) {
	r := setupRouter(newHandlerFor(t, "../dataset/testdata/blanks.csv"))
	w := do(r, http.MethodGet, "/api/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"nota":null`) {
		t.Fatalf("blank Nota not encoded as null: %s", w.Body.String())
	}
	var resp SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rows != 4 || resp.Head[0].Nota.Valid() {
		t.Fatalf("rows=%d first=%+v", resp.Rows, resp.Head[0])
	}
	for _, d := range resp.Describe {
		if d.Column == "Nota" && (d.Count != 3 || d.Min != 3.5 || d.Max != 4.5) {
			t.Fatalf("Nota summary = %+v", d)
		}
	}
}

func TestPurgeCache(t *testing.T) {
	h := newTestHandler(t)
	r := setupRouter(h)
	do(r, http.MethodGet, "/")
	do(r, http.MethodGet, "/")
	if w := do(r, http.MethodDelete, "/api/cache"); w.Code != http.StatusOK {
		t.Fatalf("purge status = %d", w.Code)
	}
	do(r, http.MethodGet, "/")
	if v := testutil.ToFloat64(h.Metrics.PageRenders); v != 2 {
		t.Fatalf("page renders after purge = %v, want 2", v)
	}
}

func TestHealth(t *testing.T) {
	w := do(setupRouter(newTestHandler(t)), http.MethodGet, "/healthz")
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || resp.Status != "ok" || resp.Rows != 26 || resp.Charts != 7 {
		t.Fatalf("health = %d %+v", w.Code, resp)
	}
}

func TestHealthReportsCacheEntries(t *testing.T) {
	r := setupRouter(newTestHandler(t))
	do(r, http.MethodGet, "/")
	do(r, http.MethodGet, "/charts/"+charts.IDTopBrandsBar+".png")

	var resp HealthResponse
	w := do(r, http.MethodGet, "/healthz")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CacheEntries == nil || *resp.CacheEntries != 2 {
		t.Fatalf("cache entries = %v", resp.CacheEntries)
	}
}
