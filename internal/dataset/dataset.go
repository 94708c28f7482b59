package dataset

import (
	"errors"
	"fmt"

	"ecommerce-dashboard/internal/models"
)

// ErrColumnNotFound indica que la columna no existe en el CSV cargado
var ErrColumnNotFound = errors.New("column not found")

// ColumnError describe una columna ausente o de tipo incorrecto
type ColumnError struct {
	Column string
	Kind   string
}

func (e *ColumnError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s column %q not found", e.Kind, e.Column)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *ColumnError) Unwrap() error { return ErrColumnNotFound }

// Dataset es la tabla en memoria; no se modifica después de cargarse.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    []*models.Product
}

// New construye un Dataset a partir de las columnas del header y las filas
func New(columns []string, rows []*models.Product) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return &Dataset{columns: cols, index: index, rows: rows}
}

// Columns retorna los nombres de columnas en el orden del archivo
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

func (d *Dataset) Len() int { return len(d.rows) }

func (d *Dataset) Rows() []*models.Product { return d.rows }

// Head retorna las primeras n filas
func (d *Dataset) Head(n int) []*models.Product {
	if n < 0 {
		n = 0
	}
	if n > len(d.rows) {
		n = len(d.rows)
	}
	return d.rows[:n]
}

// Float retorna los valores de una columna numérica
func (d *Dataset) Float(col string) ([]float64, error) {
	get, ok := models.NumericFields[col]
	if !ok || !d.HasColumn(col) {
		return nil, &ColumnError{Column: col, Kind: "numeric"}
	}
	out := make([]float64, len(d.rows))
	for i, r := range d.rows {
		out[i] = get(r)
	}
	return out, nil
}

// Strings retorna los valores de una columna de texto
func (d *Dataset) Strings(col string) ([]string, error) {
	get, ok := models.TextFields[col]
	if !ok || !d.HasColumn(col) {
		return nil, &ColumnError{Column: col, Kind: "text"}
	}
	out := make([]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = get(r)
	}
	return out, nil
}

// NumericColumns retorna las columnas numéricas presentes, en orden del archivo
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, c := range d.columns {
		if _, ok := models.NumericFields[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
