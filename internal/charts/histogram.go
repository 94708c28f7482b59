package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ecommerce-dashboard/internal/analysis"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/models"
)

// RatingBins es la cantidad de intervalos del histograma de notas
const RatingBins = 30

// RatingHistogram es el histograma de frecuencias de la columna Nota
type RatingHistogram struct {
	Bins []analysis.Bin
}

func NewRatingHistogram(ds *dataset.Dataset) (Figure, error) {
	notas, err := ds.Float(models.ColNota)
	if err != nil {
		return nil, err
	}
	bins, err := analysis.Histogram(notas, RatingBins)
	if err != nil {
		return nil, err
	}
	return &RatingHistogram{Bins: bins}, nil
}

func (h *RatingHistogram) ID() string    { return IDRatingHistogram }
func (h *RatingHistogram) Title() string { return "Histograma - Produto e Nota" }

func (h *RatingHistogram) Charter() components.Charter {
	bar := binBar(h.ID(), h.Title(), "Nota", "Frequência", h.Bins)
	bar.AddSeries("Nota", binData(h.Bins),
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "1%"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#636efa"}),
	)
	return bar
}

func (h *RatingHistogram) RenderPNG(w io.Writer, width, height int) error {
	c := pngBars(h.Title(), binValues(h.Bins, drawing.ColorFromHex("636efa"), 1), width, height)
	return c.Render(chart.PNG, w)
}

// binBar prepara un bar chart con los intervalos como categorías
func binBar(id, title, xName, yName string, bins []analysis.Bin) *charts.Bar {
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = binLabel(b.Lo, b.Hi)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(id, title)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(axisX(xName, "category")),
		charts.WithYAxisOpts(axisY(yName, "value")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	return bar
}

func binData(bins []analysis.Bin) []opts.BarData {
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		data[i] = opts.BarData{Value: b.Count}
	}
	return data
}

func binValues(bins []analysis.Bin, color drawing.Color, opacity float64) []chart.Value {
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = trimFloat(b.Lo)
	}
	labels = sparseLabels(labels)
	fill := withAlpha(color, opacity)
	values := make([]chart.Value, len(bins))
	for i, b := range bins {
		values[i] = chart.Value{
			Label: labels[i],
			Value: float64(b.Count),
			Style: chart.Style{FillColor: fill, StrokeColor: color, StrokeWidth: 1},
		}
	}
	return values
}
