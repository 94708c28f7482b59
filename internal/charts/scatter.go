package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ecommerce-dashboard/internal/analysis"
	"ecommerce-dashboard/internal/dataset"
	"ecommerce-dashboard/internal/models"
)

const scatterTooltip = `function (p) {
  return 'Preço: ' + p.value[0] +
    '<br/>N_Avaliações: ' + p.value[1] +
    '<br/>Qtd_Vendidos_Cod: ' + p.value[2] +
    '<br/>Nota: ' + p.value[3];
}`

// PriceReviewsScatter cruza Preço y N_Avaliações, coloreado por Qtd_Vendidos_Cod.
// Solo se grafican las filas completas en las cuatro columnas.
type PriceReviewsScatter struct {
	Preco    []float64
	NAval    []float64
	QtdCod   []float64
	Nota     []float64
	min, max float64
}

func NewPriceReviewsScatter(ds *dataset.Dataset) (Figure, error) {
	names := []string{models.ColPreco, models.ColNAvaliacoes, models.ColQtdVendidosCod, models.ColNota}
	cols := make([][]float64, len(names))
	for i, c := range names {
		v, err := ds.Float(c)
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	cols = analysis.CompleteRows(cols...)
	if len(cols[0]) == 0 {
		return nil, analysis.ErrNoData
	}
	s := &PriceReviewsScatter{Preco: cols[0], NAval: cols[1], QtdCod: cols[2], Nota: cols[3]}
	s.min, _ = stats.Min(s.QtdCod)
	s.max, _ = stats.Max(s.QtdCod)
	return s, nil
}

func (s *PriceReviewsScatter) ID() string    { return IDPriceReviewsScatter }
func (s *PriceReviewsScatter) Title() string { return "Dispersão de Preço e Número de Avaliações" }

func (s *PriceReviewsScatter) Charter() components.Charter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(globalOpts(s.ID(), s.Title())...)
	sc.SetGlobalOptions(
		charts.WithXAxisOpts(axisX("Preço", "value")),
		charts.WithYAxisOpts(axisY("Número de Avaliações", "value")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(scatterTooltip),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(s.min),
			Max:        float32(s.max),
			Dimension:  "2",
			Text:       []string{models.ColQtdVendidosCod},
			Right:      "0",
			Top:        "center",
			InRange:    &opts.VisualMapInRange{Color: plasma},
		}),
	)

	data := make([]opts.ScatterData, len(s.Preco))
	for i := range s.Preco {
		data[i] = opts.ScatterData{Value: []float64{s.Preco[i], s.NAval[i], s.QtdCod[i], s.Nota[i]}}
	}
	sc.AddSeries("Produtos", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return sc
}

func (s *PriceReviewsScatter) RenderPNG(w io.Writer, width, height int) error {
	span := s.max - s.min
	c := chart.Chart{
		Title:      s.Title(),
		TitleStyle: chart.Style{FontSize: 12},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Preço", Range: axisRange(s.Preco)},
		YAxis:      chart.YAxis{Name: "Número de Avaliações", Range: axisRange(s.NAval)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Produtos",
				XValues: s.Preco,
				YValues: s.NAval,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
						if span == 0 {
							return paletteAt(plasma, 0)
						}
						return paletteAt(plasma, (s.QtdCod[index]-s.min)/span)
					},
				},
			},
		},
	}
	return c.Render(chart.PNG, w)
}
