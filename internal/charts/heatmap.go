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

// CorrelationColumns son las columnas del mapa de calor, en orden de eje
var CorrelationColumns = []string{
	models.ColNAvaliacoes,
	models.ColQtdVendidosCod,
	models.ColDesconto,
	models.ColNota,
	models.ColPreco,
	models.ColMaterialCod,
	models.ColTemporadaCod,
	models.ColMarcaCod,
}

// CorrelationHeatmap muestra la matriz de Pearson con escala fija [0,1]
type CorrelationHeatmap struct {
	Matrix analysis.Matrix
}

func NewCorrelationHeatmap(ds *dataset.Dataset) (Figure, error) {
	columns := make([][]float64, len(CorrelationColumns))
	for i, c := range CorrelationColumns {
		v, err := ds.Float(c)
		if err != nil {
			return nil, err
		}
		columns[i] = v
	}
	m, err := analysis.CorrelationMatrix(CorrelationColumns, columns)
	if err != nil {
		return nil, err
	}
	return &CorrelationHeatmap{Matrix: m}, nil
}

func (h *CorrelationHeatmap) ID() string    { return IDCorrelationHeatmap }
func (h *CorrelationHeatmap) Title() string { return "Mapa de Calor de Correlação entre Variáveis" }

func (h *CorrelationHeatmap) Charter() components.Charter {
	labels := h.Matrix.Labels
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(globalOpts(h.ID(), h.Title())...)
	hm.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      labels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      labels,
			Inverse:   opts.Bool(true),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithGridOpts(opts.Grid{Left: "12%", Right: "12%", Bottom: "18%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			Right:      "0",
			Top:        "center",
			InRange:    &opts.VisualMapInRange{Color: rdBu},
		}),
	)

	n := len(labels)
	data := make([]opts.HeatMapData, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, round2(h.Matrix.At(i, j))}})
		}
	}
	hm.AddSeries("Correlação", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return hm
}

// RenderPNG dibuja la grilla a mano: go-chart no tiene heatmap
func (h *CorrelationHeatmap) RenderPNG(w io.Writer, width, height int) error {
	r, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)

	fillRect(r, 0, 0, width, height, drawing.ColorWhite)

	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(12)
	tb := r.MeasureText(h.Title())
	r.Text(h.Title(), (width-tb.Width())/2, 24)

	labels := h.Matrix.Labels
	n := len(labels)
	if n == 0 {
		return r.Save(w)
	}
	left, top := width/5, 50
	right, bottom := width-20, height-height/5
	cw := (right - left) / n
	ch := (bottom - top) / n
	if cw < 1 || ch < 1 {
		return fmt.Errorf("image %dx%d too small for %d columns", width, height, n)
	}

	r.SetFontSize(8)
	for i := 0; i < n; i++ {
		y := top + i*ch
		for j := 0; j < n; j++ {
			x := left + j*cw
			v := h.Matrix.At(i, j)
			fillRect(r, x, y, x+cw, y+ch, paletteAt(rdBu, v))

			text := fmt.Sprintf("%.2f", v)
			b := r.MeasureText(text)
			r.SetFontColor(cellTextColor(v))
			r.Text(text, x+(cw-b.Width())/2, y+(ch+b.Height())/2)
		}
		r.SetFontColor(drawing.ColorBlack)
		b := r.MeasureText(labels[i])
		r.Text(labels[i], left-b.Width()-6, y+(ch+b.Height())/2)
	}

	r.SetFontColor(drawing.ColorBlack)
	for j := 0; j < n; j++ {
		x := left + j*cw + cw/2
		r.SetTextRotation(0.5)
		r.Text(labels[j], x-cw/4, bottom+12)
		r.ClearTextRotation()
	}
	return r.Save(w)
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

// cellTextColor usa texto blanco sobre los extremos oscuros de la escala
func cellTextColor(v float64) drawing.Color {
	if v < 0.2 || v > 0.8 {
		return drawing.ColorWhite
	}
	return drawing.ColorBlack
}
