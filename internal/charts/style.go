package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	colorBrands     = "#90ee70"
	colorDensity    = "#863e9c"
	colorTrendDots  = "#34c289"
	colorTrendLine  = "#278f65"
	colorBackground = "#ffffff"

	chartHeight = "500px"
	chartWidth  = "1100px"
)

// Escala divergente RdBu (rojo → azul)
var rdBu = []string{
	"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
	"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
}

// Escala continua Plasma
var plasma = []string{
	"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
	"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
}

// globalOpts son las opciones comunes: tamaño, id estable, título centrado y toolbox
func globalOpts(id, title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:           chartWidth,
			Height:          chartHeight,
			ChartID:         ChartID(id),
			BackgroundColor: colorBackground,
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show:  opts.Bool(true),
			Right: "2%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Type: "png", Name: id},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
			},
		}),
	}
}

// ChartID es el id del contenedor HTML; debe ser un identificador JS válido
func ChartID(id string) string {
	return "chart_" + strings.ReplaceAll(id, "-", "_")
}

func axisX(name, typ string) opts.XAxis {
	return opts.XAxis{Name: name, Type: typ, NameLocation: "middle", NameGap: 30}
}

func axisY(name, typ string) opts.YAxis {
	return opts.YAxis{Name: name, Type: typ, NameLocation: "middle", NameGap: 45}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func binLabel(lo, hi float64) string {
	return fmt.Sprintf("%s-%s", trimFloat(lo), trimFloat(hi))
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", round2(v))
}

// paletteAt interpola la escala en t ∈ [0,1]; valores fuera se recortan
func paletteAt(palette []string, t float64) drawing.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(palette)-1)
	i := int(math.Floor(pos))
	if i >= len(palette)-1 {
		return drawing.ColorFromHex(palette[len(palette)-1])
	}
	a := drawing.ColorFromHex(palette[i])
	b := drawing.ColorFromHex(palette[i+1])
	f := pos - float64(i)
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f)) }
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func withAlpha(c drawing.Color, opacity float64) drawing.Color {
	return c.WithAlpha(uint8(math.Round(255 * opacity)))
}

// pngBars arma un gráfico de barras estático con el eje y desde cero
func pngBars(title string, bars []chart.Value, width, height int) chart.BarChart {
	top := 0.0
	for _, b := range bars {
		top = math.Max(top, b.Value)
	}
	if top == 0 {
		top = 1
	}
	barWidth := (width - 120) / (len(bars) + 1)
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}
	return chart.BarChart{
		Title:        title,
		TitleStyle:   chart.Style{FontSize: 12},
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		UseBaseValue: true,
		BaseValue:    0,
		Background:   chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		YAxis:        chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top * 1.05}},
		Bars:         bars,
	}
}

// sparseLabels deja como mucho ~12 etiquetas visibles en el eje x
func sparseLabels(labels []string) []string {
	step := (len(labels) + 11) / 12
	if step < 1 {
		step = 1
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		if i%step == 0 {
			out[i] = l
		}
	}
	return out
}

// axisRange fija el rango de un eje de go-chart cuando los valores no tienen
// amplitud (un solo punto o todos iguales); nil deja el rango automático.
func axisRange(values ...[]float64) chart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	switch {
	case lo > hi:
		return &chart.ContinuousRange{Min: 0, Max: 1}
	case lo == hi:
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	return nil
}
