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

// DiscountSalesTrend es la dispersión Desconto × Qtd_Vendidos_Cod con su curva LOWESS
type DiscountSalesTrend struct {
	Desconto []float64
	QtdCod   []float64
	Curve    []analysis.Point
}

func NewDiscountSalesTrend(ds *dataset.Dataset) (Figure, error) {
	desconto, err := ds.Float(models.ColDesconto)
	if err != nil {
		return nil, err
	}
	qtd, err := ds.Float(models.ColQtdVendidosCod)
	if err != nil {
		return nil, err
	}
	pair := analysis.CompleteRows(desconto, qtd)
	desconto, qtd = pair[0], pair[1]
	curve, err := analysis.Lowess(desconto, qtd, analysis.DefaultLowessFrac, analysis.DefaultLowessIter)
	if err != nil {
		return nil, err
	}
	return &DiscountSalesTrend{Desconto: desconto, QtdCod: qtd, Curve: curve}, nil
}

func (t *DiscountSalesTrend) ID() string    { return IDDiscountSalesTrend }
func (t *DiscountSalesTrend) Title() string { return "Regressão de Desconto por Quantidade Vendida" }

func (t *DiscountSalesTrend) Charter() components.Charter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(globalOpts(t.ID(), t.Title())...)
	sc.SetGlobalOptions(
		charts.WithXAxisOpts(axisX("Desconto", "value")),
		charts.WithYAxisOpts(axisY("Quantidade Vendida", "value")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	points := make([]opts.ScatterData, len(t.Desconto))
	for i := range t.Desconto {
		points[i] = opts.ScatterData{Value: []float64{t.Desconto[i], t.QtdCod[i]}}
	}
	sc.AddSeries("Produtos", points,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorTrendDots, Opacity: opts.Float(0.5)}),
	)

	curve := make([]opts.LineData, len(t.Curve))
	for i, p := range t.Curve {
		curve[i] = opts.LineData{Value: []float64{p.X, p.Y}}
	}
	line := charts.NewLine()
	line.AddSeries("LOWESS", curve,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorTrendLine, Width: 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorTrendLine}),
	)
	sc.Overlap(line)
	return sc
}

func (t *DiscountSalesTrend) RenderPNG(w io.Writer, width, height int) error {
	xs := make([]float64, len(t.Curve))
	ys := make([]float64, len(t.Curve))
	for i, p := range t.Curve {
		xs[i], ys[i] = p.X, p.Y
	}
	c := chart.Chart{
		Title:      t.Title(),
		TitleStyle: chart.Style{FontSize: 12},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Desconto", Range: axisRange(t.Desconto)},
		YAxis:      chart.YAxis{Name: "Quantidade Vendida", Range: axisRange(t.QtdCod, ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Produtos",
				XValues: t.Desconto,
				YValues: t.QtdCod,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    withAlpha(drawing.ColorFromHex(colorTrendDots), 0.5),
				},
			},
			chart.ContinuousSeries{
				Name:    "LOWESS",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 3,
					StrokeColor: drawing.ColorFromHex(colorTrendLine),
				},
			},
		},
	}
	return c.Render(chart.PNG, w)
}
