package analysis

import (
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Parámetros por defecto del suavizado (los mismos de la línea de tendencia original)
const (
	DefaultLowessFrac = 2.0 / 3.0
	DefaultLowessIter = 3
)

// Point es un par (x, y)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lowess ajusta una regresión local ponderada (pesos tricúbicos) con iter
// pasadas de robustez bisquare. frac es la fracción de puntos usada en cada
// ajuste local. El resultado tiene un punto por observación completa (sin NaN),
// ordenado por x.
func Lowess(xs, ys []float64, frac float64, iter int) ([]Point, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, errors.New("lowess: x and y lengths differ")
	}
	pair := CompleteRows(xs, ys)
	xs, ys = pair[0], pair[1]
	if n = len(xs); n == 0 {
		return nil, ErrNoData
	}
	if frac <= 0 || frac > 1 {
		frac = DefaultLowessFrac
	}
	if iter < 0 {
		iter = 0
	}

	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	if n == 1 {
		return pts, nil
	}

	k := int(frac*float64(n) + 1e-10)
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	fitted := make([]float64, n)
	robust := make([]float64, n)
	for i := range robust {
		robust[i] = 1
	}
	weights := make([]float64, n)

	for pass := 0; pass <= iter; pass++ {
		left := 0
		for i := 0; i < n; i++ {
			xi := pts[i].X
			for left+k < n && xi-pts[left].X > pts[left+k].X-xi {
				left++
			}
			right := left + k - 1
			h := math.Max(xi-pts[left].X, pts[right].X-xi)
			fitted[i] = localFit(pts, left, right, i, h, robust, weights)
		}

		if pass == iter {
			break
		}
		residuals := make([]float64, n)
		for i := range pts {
			residuals[i] = math.Abs(pts[i].Y - fitted[i])
		}
		med, _ := stats.Median(residuals)
		if med == 0 {
			break
		}
		s := 6 * med
		for i, r := range residuals {
			u := r / s
			if u < 1 {
				robust[i] = (1 - u*u) * (1 - u*u)
			} else {
				robust[i] = 0
			}
		}
	}

	out := make([]Point, n)
	for i := range pts {
		out[i] = Point{X: pts[i].X, Y: fitted[i]}
	}
	return out, nil
}

// localFit resuelve la regresión lineal ponderada en la ventana [left, right]
// y la evalúa en pts[i].X.
func localFit(pts []Point, left, right, i int, h float64, robust, w []float64) float64 {
	xi := pts[i].X
	var sw float64
	for j := left; j <= right; j++ {
		var t float64
		if h > 0 {
			u := math.Abs(pts[j].X-xi) / h
			if u < 1 {
				c := 1 - u*u*u
				t = c * c * c
			}
		} else if pts[j].X == xi {
			t = 1
		}
		w[j] = t * robust[j]
		sw += w[j]
	}
	if sw <= 0 {
		return pts[i].Y
	}

	var xbar, ybar float64
	for j := left; j <= right; j++ {
		xbar += w[j] * pts[j].X
		ybar += w[j] * pts[j].Y
	}
	xbar /= sw
	ybar /= sw

	var sxy, sxx float64
	for j := left; j <= right; j++ {
		dx := pts[j].X - xbar
		sxy += w[j] * dx * (pts[j].Y - ybar)
		sxx += w[j] * dx * dx
	}
	if sxx <= 1e-12*math.Max(1, xbar*xbar) {
		return ybar
	}
	return ybar + sxy/sxx*(xi-xbar)
}
