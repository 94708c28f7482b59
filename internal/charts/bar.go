package charts

import (
	"fmt"
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

// TopBrands es la cantidad de marcas del gráfico de barras
const TopBrands = 10

// TopBrandsBar muestra las marcas con más productos. El agregado "Outras"
// se calcula pero no se grafica.
type TopBrandsBar struct {
	Counts analysis.TopN
}

func NewTopBrandsBar(ds *dataset.Dataset) (Figure, error) {
	marcas, err := ds.Strings(models.ColMarca)
	if err != nil {
		return nil, err
	}
	return &TopBrandsBar{Counts: analysis.Top(analysis.ValueCounts(marcas), TopBrands)}, nil
}

func (b *TopBrandsBar) ID() string    { return IDTopBrandsBar }
func (b *TopBrandsBar) Title() string { return fmt.Sprintf("Top %d Marcas", TopBrands) }

func (b *TopBrandsBar) Charter() components.Charter {
	labels := make([]string, len(b.Counts.Top))
	data := make([]opts.BarData, len(b.Counts.Top))
	for i, c := range b.Counts.Top {
		labels[i] = c.Label
		data[i] = opts.BarData{Name: c.Label, Value: c.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(b.ID(), b.Title())...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(axisX("Marca", "category")),
		charts.WithYAxisOpts(axisY("Quantidade", "value")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Quantidade de Produtos", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorBrands}),
	)
	return bar
}

func (b *TopBrandsBar) RenderPNG(w io.Writer, width, height int) error {
	color := drawing.ColorFromHex(colorBrands)
	values := make([]chart.Value, len(b.Counts.Top))
	for i, c := range b.Counts.Top {
		values[i] = chart.Value{
			Label: c.Label,
			Value: float64(c.Count),
			Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
		}
	}
	c := pngBars(b.Title(), values, width, height)
	return c.Render(chart.PNG, w)
}
