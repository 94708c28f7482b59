package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-dashboard/internal/cache"
	"ecommerce-dashboard/internal/charts"
	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/handlers"
	"ecommerce-dashboard/internal/logger"
	"ecommerce-dashboard/internal/models"
	"ecommerce-dashboard/internal/observability"
	"ecommerce-dashboard/internal/routes"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg := config.LoadConfig()
	if !logger.SetLevel(cfg.LogLevel) {
		logger.Warnf("⚠️ unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	loader := &dataset.Loader{AWSRegion: cfg.AWSRegion, Timeout: startupTimeout}
	ds, err := loader.Load(ctx, cfg.DataPath)
	if err != nil {
		logger.Fatalf("❌ loading dataset: %v", err)
	}
	logger.Infof("📄 %d rows loaded from %s\n%s", ds.Len(), cfg.DataPath, headPreview(ds, 5))

	figs, err := charts.Build(ds)
	if err != nil {
		logger.Fatalf("❌ building charts: %v", err)
	}
	logger.Infof("📊 %d charts ready", len(figs))

	store := newStore(ctx, cfg)
	defer store.Close()

	metrics := observability.New()
	metrics.DatasetRows.Set(float64(ds.Len()))

	h := &handlers.DashboardHandler{
		Dataset:    ds,
		Figures:    figs,
		Store:      store,
		Metrics:    metrics,
		TTL:        cfg.CacheTTL,
		AssetsHost: cfg.AssetsHost,
	}
	if err := h.Warm(ctx); err != nil {
		logger.Fatalf("❌ rendering dashboard: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, h)

	logger.Infof("🚀 Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("❌ server: %v", err)
	}
}

// newStore usa Redis si REDIS_URL está definido; si no responde, cae al caché en memoria
func newStore(ctx context.Context, cfg *config.Config) cache.Store {
	if cfg.RedisURL != "" {
		r, err := cache.NewRedis(ctx, cfg.RedisURL, cache.DefaultRedisPrefix)
		if err == nil {
			logger.Infof("✅ using redis cache")
			return r
		}
		logger.Warnf("⚠️ redis unavailable, falling back to memory cache: %v", err)
	}
	return cache.New(cfg.CacheTTL)
}

// headPreview arma una tabla con las primeras n filas
func headPreview(ds *dataset.Dataset, n int) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ds.Columns(), "\t"))
	for _, p := range ds.Head(n) {
		cells := make([]string, 0, len(ds.Columns()))
		for _, col := range ds.Columns() {
			cells = append(cells, cellValue(p, col))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
	return sb.String()
}

func cellValue(p *models.Product, col string) string {
	if get, ok := models.NumericFields[col]; ok {
		return fmt.Sprintf("%g", get(p))
	}
	if get, ok := models.TextFields[col]; ok {
		return get(p)
	}
	return ""
}
