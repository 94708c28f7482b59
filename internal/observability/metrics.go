package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas del dashboard en un registry propio
type Metrics struct {
	Registry *prometheus.Registry

	PageRenders   prometheus.Counter
	ChartExports  *prometheus.CounterVec
	RenderSeconds *prometheus.HistogramVec
	DatasetRows   prometheus.Gauge
	CacheHits     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		PageRenders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_page_renders_total",
				Help: "Total de renders de la página del dashboard",
			},
		),
		ChartExports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_chart_exports_total",
				Help: "Total de exportaciones PNG por gráfico",
			},
			[]string{"chart"},
		),
		RenderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_render_seconds",
				Help:    "Duración de los renders (page, png)",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		DatasetRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_dataset_rows",
				Help: "Filas del dataset cargado",
			},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_requests_total",
				Help: "Consultas al caché de renders por resultado",
			},
			[]string{"result"},
		),
	}
	m.Registry.MustRegister(
		m.PageRenders,
		m.ChartExports,
		m.RenderSeconds,
		m.DatasetRows,
		m.CacheHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRender registra la duración de un render desde start
func (m *Metrics) ObserveRender(kind string, start time.Time) {
	m.RenderSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// CacheResult cuenta un acierto o fallo del caché
func (m *Metrics) CacheResult(hit bool) {
	if hit {
		m.CacheHits.WithLabelValues("hit").Inc()
		return
	}
	m.CacheHits.WithLabelValues("miss").Inc()
}

// Handler expone el registry en formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
