package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number es una celda numérica del CSV; una celda vacía queda como NaN.
type Number float64

// Missing es el valor de una celda vacía
var Missing = Number(math.NaN())

func (n Number) Float() float64 { return float64(n) }

// Valid indica si la celda tiene un valor
func (n Number) Valid() bool { return !math.IsNaN(float64(n)) }

// UnmarshalCSV implementa gocsv.TypeUnmarshaller
func (n *Number) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = Missing
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// MarshalJSON escribe null para las celdas vacías
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = Missing
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
