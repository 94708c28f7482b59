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

// PriceBinWidth es el ancho de los intervalos de precio
const PriceBinWidth = 10.0

// PriceDensity es el histograma de Preço con marcas rug de cada precio presente
type PriceDensity struct {
	Bins   []analysis.Bin
	Prices []float64
}

func NewPriceDensity(ds *dataset.Dataset) (Figure, error) {
	precos, err := ds.Float(models.ColPreco)
	if err != nil {
		return nil, err
	}
	bins, err := analysis.HistogramWidth(precos, PriceBinWidth)
	if err != nil {
		return nil, err
	}
	return &PriceDensity{Bins: bins, Prices: analysis.DropNaN(precos)}, nil
}

func (d *PriceDensity) ID() string    { return IDPriceDensity }
func (d *PriceDensity) Title() string { return "Densidade de Preço" }

// Charter arma dos grillas: el histograma abajo y el rug en una franja arriba
func (d *PriceDensity) Charter() components.Charter {
	bar := binBar(d.ID(), d.Title(), "Preço", "Densidade", d.Bins)
	bar.SetGlobalOptions(charts.WithGridOpts(
		opts.Grid{Top: "28%", Bottom: "12%", Left: "8%", Right: "5%"},
		opts.Grid{Top: "12%", Height: "8%", Left: "8%", Right: "5%"},
	))

	lo, hi := d.Bins[0].Lo, d.Bins[len(d.Bins)-1].Hi
	bar.ExtendXAxis(opts.XAxis{
		Type:      "value",
		GridIndex: 1,
		Min:       lo,
		Max:       hi,
		Show:      opts.Bool(false),
	})
	bar.ExtendYAxis(opts.YAxis{
		Type:      "value",
		GridIndex: 1,
		Show:      opts.Bool(false),
	})

	bar.AddSeries("Preço", binData(d.Bins),
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:       colorDensity,
			Opacity:     opts.Float(0.7),
			BorderColor: colorDensity,
			BorderWidth: 1,
		}),
	)

	rug := make([]opts.ScatterData, len(d.Prices))
	for i, p := range d.Prices {
		rug[i] = opts.ScatterData{Value: []float64{p, 0}}
	}
	marks := charts.NewScatter()
	marks.AddSeries("rug", rug,
		charts.WithScatterChartOpts(opts.ScatterChart{
			XAxisIndex: 1,
			YAxisIndex: 1,
			Symbol:     "rect",
			SymbolSize: []int{1, 14},
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorDensity, Opacity: opts.Float(0.7)}),
	)
	bar.Overlap(marks)
	return bar
}

func (d *PriceDensity) RenderPNG(w io.Writer, width, height int) error {
	c := pngBars(d.Title(), binValues(d.Bins, drawing.ColorFromHex(colorDensity), 0.7), width, height)
	return c.Render(chart.PNG, w)
}
