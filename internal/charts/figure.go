package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"

	"ecommerce-dashboard/internal/dataset"
)

// IDs estables de cada gráfico, en el orden de la página
const (
	IDRatingHistogram     = "rating-histogram"
	IDPriceReviewsScatter = "price-reviews-scatter"
	IDCorrelationHeatmap  = "correlation-heatmap"
	IDTopBrandsBar        = "top-brands-bar"
	IDGenderPie           = "gender-pie"
	IDPriceDensity        = "price-density"
	IDDiscountSalesTrend  = "discount-sales-trend"
)

// Tamaño por defecto de la exportación PNG
const (
	DefaultWidth  = 900
	DefaultHeight = 500
)

// ErrEmptyDataset se retorna cuando el CSV no tiene filas
var ErrEmptyDataset = errors.New("dataset has no rows")

// Figure es un gráfico ya calculado: se puede montar como chart interactivo
// o exportar como PNG estático.
type Figure interface {
	ID() string
	Title() string
	// Charter construye un chart nuevo en cada llamada
	Charter() components.Charter
	RenderPNG(w io.Writer, width, height int) error
}

type builder func(ds *dataset.Dataset) (Figure, error)

// Build calcula los siete gráficos del dashboard en orden de página.
// Cualquier columna faltante aborta la construcción.
func Build(ds *dataset.Dataset) ([]Figure, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	builders := []struct {
		id    string
		build builder
	}{
		{IDRatingHistogram, NewRatingHistogram},
		{IDPriceReviewsScatter, NewPriceReviewsScatter},
		{IDCorrelationHeatmap, NewCorrelationHeatmap},
		{IDTopBrandsBar, NewTopBrandsBar},
		{IDGenderPie, NewGenderPie},
		{IDPriceDensity, NewPriceDensity},
		{IDDiscountSalesTrend, NewDiscountSalesTrend},
	}

	figs := make([]Figure, 0, len(builders))
	for _, b := range builders {
		fig, err := b.build(ds)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", b.id, err)
		}
		figs = append(figs, fig)
	}
	return figs, nil
}

// Find busca un gráfico por id
func Find(figs []Figure, id string) (Figure, bool) {
	for _, f := range figs {
		if f.ID() == id {
			return f, true
		}
	}
	return nil, false
}

type jsoner interface {
	JSON() map[string]interface{}
}

// Options retorna las opciones ECharts del gráfico ya validadas
func Options(fig Figure) map[string]interface{} {
	c := fig.Charter()
	c.Validate()
	if j, ok := c.(jsoner); ok {
		return j.JSON()
	}
	return nil
}
