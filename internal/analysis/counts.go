package analysis

import "sort"

// OthersLabel es la etiqueta del agregado de categorías fuera del top
const OthersLabel = "Outras"

// Count es la frecuencia de una categoría
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ValueCounts cuenta las ocurrencias de cada valor, orden descendente por
// frecuencia; los empates conservan el orden de primera aparición.
// Las celdas vacías no se cuentan.
func ValueCounts(values []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count{Label: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// TopN separa las n categorías más frecuentes y agrega el resto en Others.
type TopN struct {
	Top    []Count `json:"top"`
	Others Count   `json:"others"`
}

// Top toma counts ya ordenado (ver ValueCounts) y separa las primeras n.
func Top(counts []Count, n int) TopN {
	if n < 0 {
		n = 0
	}
	if n > len(counts) {
		n = len(counts)
	}
	res := TopN{
		Top:    append([]Count(nil), counts[:n]...),
		Others: Count{Label: OthersLabel},
	}
	for _, c := range counts[n:] {
		res.Others.Count += c.Count
	}
	return res
}
