package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Matrix es una matriz de correlación cuadrada y simétrica
type Matrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// At retorna la correlación entre las columnas i y j
func (m Matrix) At(i, j int) float64 { return m.Values[i][j] }

// CorrelationMatrix calcula el coeficiente de Pearson entre cada par de columnas.
// Cada par usa solo las filas completas en ambas columnas. Columnas constantes
// o sin filas en común producen 0 fuera de la diagonal.
func CorrelationMatrix(labels []string, columns [][]float64) (Matrix, error) {
	if len(labels) != len(columns) {
		return Matrix{}, fmt.Errorf("got %d labels for %d columns", len(labels), len(columns))
	}
	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		values[i][i] = 1
		for j := i + 1; j < n; j++ {
			pair := CompleteRows(columns[i], columns[j])
			if len(pair[0]) == 0 {
				continue
			}
			r, err := stats.Pearson(pair[0], pair[1])
			if err != nil {
				return Matrix{}, fmt.Errorf("correlation %s/%s: %w", labels[i], labels[j], err)
			}
			values[i][j] = r
			values[j][i] = r
		}
	}
	out := make([]string, n)
	copy(out, labels)
	return Matrix{Labels: out, Values: values}, nil
}
