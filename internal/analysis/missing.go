package analysis

import "math"

// DropNaN retorna los valores presentes, sin las celdas vacías (NaN)
func DropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CompleteRows descarta las filas donde alguna columna es NaN.
// Todas las columnas deben tener el mismo largo.
func CompleteRows(columns ...[]float64) [][]float64 {
	out := make([][]float64, len(columns))
	if len(columns) == 0 {
		return out
	}
	n := len(columns[0])
	for i := range out {
		out[i] = make([]float64, 0, n)
	}
rows:
	for r := 0; r < n; r++ {
		for _, c := range columns {
			if r >= len(c) || math.IsNaN(c[r]) {
				continue rows
			}
		}
		for i, c := range columns {
			out[i] = append(out[i], c[r])
		}
	}
	return out
}
