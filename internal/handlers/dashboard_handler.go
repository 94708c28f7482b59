package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-dashboard/internal/analysis"
	"ecommerce-dashboard/internal/cache"
	"ecommerce-dashboard/internal/charts"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/logger"
	"ecommerce-dashboard/internal/middleware"
	"ecommerce-dashboard/internal/observability"
)

const (
	defaultHead    = 5
	maxHead        = 100
	defaultTimeout = 5 * time.Second
	pngExt         = ".png"
)

// ExportQuery son los parámetros de la exportación PNG
type ExportQuery struct {
	Width  int `form:"width" binding:"omitempty,min=200,max=4000"`
	Height int `form:"height" binding:"omitempty,min=200,max=4000"`
}

type DashboardHandler struct {
	Dataset    *dataset.Dataset
	Figures    []charts.Figure
	Store      cache.Store
	Metrics    *observability.Metrics
	TTL        time.Duration
	AssetsHost string
}

// GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	page, err := h.page(ctx)
	if err != nil {
		logger.Errorf("❌ render page: %v id=%s", err, middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not render dashboard"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Warm renderiza la página una vez para fallar temprano y dejarla en caché
func (h *DashboardHandler) Warm(ctx context.Context) error {
	_, err := h.page(ctx)
	return err
}

func (h *DashboardHandler) page(ctx context.Context) ([]byte, error) {
	data, hit, err := cache.Fetch(ctx, h.Store, cache.KeyPage+"index", h.TTL, func() ([]byte, error) {
		start := time.Now()
		defer h.Metrics.ObserveRender("page", start)

		var buf bytes.Buffer
		if err := charts.RenderPage(&buf, h.Figures, h.AssetsHost); err != nil {
			return nil, err
		}
		h.Metrics.PageRenders.Inc()
		return buf.Bytes(), nil
	})
	h.Metrics.CacheResult(hit)
	return data, err
}

// GET /charts/:file
func (h *DashboardHandler) ChartPNG(c *gin.Context) {
	file := c.Param("file")
	if !strings.HasSuffix(file, pngExt) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "chart not found"})
		return
	}
	fig, ok := charts.Find(h.Figures, strings.TrimSuffix(file, pngExt))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "chart not found"})
		return
	}

	var q ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "width and height must be between 200 and 4000"})
		return
	}
	width, height := h.getSizeParams(q)

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	key := fmt.Sprintf("%s%s:%dx%d", cache.KeyPNG, fig.ID(), width, height)
	data, hit, err := cache.Fetch(ctx, h.Store, key, h.TTL, func() ([]byte, error) {
		start := time.Now()
		defer h.Metrics.ObserveRender("png", start)

		var buf bytes.Buffer
		if err := fig.RenderPNG(&buf, width, height); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	h.Metrics.CacheResult(hit)
	if err != nil {
		logger.Errorf("❌ render %s: %v id=%s", fig.ID(), err, middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not render chart"})
		return
	}

	h.Metrics.ChartExports.WithLabelValues(fig.ID()).Inc()
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", file))
	c.Data(http.StatusOK, "image/png", data)
}

// GET /api/charts
func (h *DashboardHandler) ListCharts(c *gin.Context) {
	list := make([]ChartInfo, 0, len(h.Figures))
	for _, f := range h.Figures {
		list = append(list, ChartInfo{ID: f.ID(), Title: f.Title(), PNG: "/charts/" + f.ID() + pngExt})
	}
	c.JSON(http.StatusOK, ChartListResponse{Total: len(list), Charts: list})
}

// GET /api/charts/:id
func (h *DashboardHandler) ChartOptions(c *gin.Context) {
	fig, ok := charts.Find(h.Figures, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "chart not found"})
		return
	}
	c.JSON(http.StatusOK, charts.Options(fig))
}

// GET /api/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	head, err := h.getHeadParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	key := fmt.Sprintf("%shead=%d", cache.KeySummary, head)
	var resp SummaryResponse
	if found, err := cache.Unmarshal(ctx, h.Store, key, &resp); err == nil && found {
		h.Metrics.CacheResult(true)
		c.JSON(http.StatusOK, resp)
		return
	}
	h.Metrics.CacheResult(false)

	resp, err = h.buildSummary(head)
	if err != nil {
		logger.Errorf("❌ summary: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not build summary"})
		return
	}
	if err := cache.Marshal(ctx, h.Store, key, resp, h.TTL); err != nil {
		logger.Warnf("⚠️ cache summary: %v", err)
	}
	c.JSON(http.StatusOK, resp)
}

// DELETE /api/cache
func (h *DashboardHandler) PurgeCache(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	if err := h.Store.Purge(ctx, ""); err != nil {
		logger.Errorf("❌ purge cache: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not purge cache"})
		return
	}
	logger.Infof("🧹 cache purged id=%s", middleware.GetRequestID(c))
	c.JSON(http.StatusOK, SuccessResponse{Message: "cache purged"})
}

// GET /healthz
func (h *DashboardHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Rows: h.Dataset.Len(), Charts: len(h.Figures)}
	// solo el caché en memoria conoce su tamaño
	if s, ok := h.Store.(interface{ Size() int }); ok {
		n := s.Size()
		resp.CacheEntries = &n
	}
	c.JSON(http.StatusOK, resp)
}

// --- Métodos auxiliares ---

// getSizeParams aplica el tamaño por defecto a los parámetros ausentes
func (h *DashboardHandler) getSizeParams(q ExportQuery) (width, height int) {
	width, height = q.Width, q.Height
	if width == 0 {
		width = charts.DefaultWidth
	}
	if height == 0 {
		height = charts.DefaultHeight
	}
	return width, height
}

// getHeadParam obtiene y valida la cantidad de filas de muestra
func (h *DashboardHandler) getHeadParam(c *gin.Context) (int, error) {
	head, err := strconv.Atoi(c.DefaultQuery("head", strconv.Itoa(defaultHead)))
	if err != nil || head < 0 || head > maxHead {
		return 0, &ValidationError{Field: "head", Message: fmt.Sprintf("head must be between 0 and %d", maxHead)}
	}
	return head, nil
}

func (h *DashboardHandler) buildSummary(head int) (SummaryResponse, error) {
	resp := SummaryResponse{
		Rows:     h.Dataset.Len(),
		Columns:  h.Dataset.Columns(),
		Describe: make([]ColumnSummary, 0),
		Head:     h.Dataset.Head(head),
	}
	if h.Dataset.Len() == 0 {
		return resp, nil
	}
	for _, col := range h.Dataset.NumericColumns() {
		values, err := h.Dataset.Float(col)
		if err != nil {
			return SummaryResponse{}, err
		}
		// una columna sin valores queda con count 0
		s, err := analysis.Describe(values)
		if err != nil && !errors.Is(err, analysis.ErrNoData) {
			return SummaryResponse{}, err
		}
		resp.Describe = append(resp.Describe, ColumnSummary{Column: col, Summary: s})
	}
	return resp, nil
}

func validationResponse(err error) ErrorResponse {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse{Error: verr.Message, Field: verr.Field}
	}
	return ErrorResponse{Error: err.Error()}
}
