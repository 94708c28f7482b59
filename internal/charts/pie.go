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

// GenderPie es la distribución de productos por Gênero, con agujero central
type GenderPie struct {
	Counts []analysis.Count
}

func NewGenderPie(ds *dataset.Dataset) (Figure, error) {
	generos, err := ds.Strings(models.ColGenero)
	if err != nil {
		return nil, err
	}
	return &GenderPie{Counts: analysis.ValueCounts(generos)}, nil
}

func (p *GenderPie) ID() string    { return IDGenderPie }
func (p *GenderPie) Title() string { return "Distribuição de Vendas por Gênero" }

func (p *GenderPie) Charter() components.Charter {
	colors := p.colors()
	data := make([]opts.PieData, len(p.Counts))
	for i, c := range p.Counts {
		data[i] = opts.PieData{
			Name:      c.Label,
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: colors[i]},
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(p.ID(), p.Title())...)
	pie.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "vertical", Right: "5%", Top: "middle"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}: {c} ({d}%)"}),
	)
	// agujero del 20% del radio exterior
	pie.AddSeries(models.ColGenero, data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"15%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{d}%"}),
	)
	return pie
}

func (p *GenderPie) RenderPNG(w io.Writer, width, height int) error {
	colors := p.colors()
	values := make([]chart.Value, len(p.Counts))
	for i, c := range p.Counts {
		values[i] = chart.Value{
			Label: c.Label,
			Value: float64(c.Count),
			Style: chart.Style{FillColor: drawing.ColorFromHex(colors[i]), StrokeColor: drawing.ColorWhite},
		}
	}
	c := chart.DonutChart{
		Title:      p.Title(),
		TitleStyle: chart.Style{FontSize: 12},
		Width:      width,
		Height:     height,
		Values:     values,
	}
	return c.Render(chart.PNG, w)
}

// colors asigna la escala RdBu en orden, como una secuencia discreta
func (p *GenderPie) colors() []string {
	out := make([]string, len(p.Counts))
	for i := range out {
		out[i] = rdBu[i%len(rdBu)]
	}
	return out
}
