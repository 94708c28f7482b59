package analysis

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrNoData se retorna cuando no hay valores que agrupar
var ErrNoData = errors.New("no data")

// Bin es un intervalo [Lo, Hi) del histograma; el último bin incluye Hi.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram agrupa values en nbins intervalos de igual ancho entre min y max.
// Con todos los valores iguales se produce un único bin de ancho 1.
// Los NaN no se cuentan.
func Histogram(values []float64, nbins int) ([]Bin, error) {
	values = DropNaN(values)
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if nbins < 1 {
		nbins = 1
	}
	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	if lo == hi {
		return []Bin{{Lo: lo, Hi: lo + 1, Count: len(values)}}, nil
	}

	width := (hi - lo) / float64(nbins)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[nbins-1].Hi = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		bins[idx].Count++
	}
	return bins, nil
}

// HistogramWidth agrupa values en bins de ancho fijo alineados a múltiplos de width.
func HistogramWidth(values []float64, width float64) ([]Bin, error) {
	values = DropNaN(values)
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if width <= 0 {
		return nil, errors.New("bin width must be positive")
	}
	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)

	start := math.Floor(lo/width) * width
	n := int(math.Floor((hi-start)/width)) + 1
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = start + float64(i)*width
		bins[i].Hi = start + float64(i+1)*width
	}
	for _, v := range values {
		idx := int(math.Floor((v - start) / width))
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins, nil
}
