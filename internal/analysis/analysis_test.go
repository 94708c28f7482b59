package analysis

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestHistogramEqualWidth(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	bins, err := Histogram(values, 5)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if len(bins) != 5 {
		t.Fatalf("bins=%d want 5", len(bins))
	}
	want := []int{2, 2, 2, 2, 3} // el último bin incluye el máximo
	total := 0
	for i, b := range bins {
		if b.Count != want[i] {
			t.Fatalf("bin %d count=%d want %d (%+v)", i, b.Count, want[i], bins)
		}
		total += b.Count
	}
	if total != len(values) {
		t.Fatalf("total=%d", total)
	}
	if bins[0].Lo != 0 || bins[4].Hi != 10 {
		t.Fatalf("range [%v,%v]", bins[0].Lo, bins[4].Hi)
	}
}

func TestHistogramEdgeCases(t *testing.T) {
	if _, err := Histogram(nil, 30); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	bins, err := Histogram([]float64{4, 4, 4}, 30)
	if err != nil || len(bins) != 1 || bins[0].Count != 3 {
		t.Fatalf("constant input => %+v %v", bins, err)
	}
	bins, _ = Histogram([]float64{1, 2}, 0)
	if len(bins) != 1 {
		t.Fatalf("nbins<1 should clamp to 1, got %d", len(bins))
	}
}

func TestHistogramWidth(t *testing.T) {
	bins, err := HistogramWidth([]float64{12, 19.9, 20, 35, 41}, 10)
	if err != nil {
		t.Fatalf("HistogramWidth: %v", err)
	}
	if len(bins) != 4 {
		t.Fatalf("bins=%d want 4: %+v", len(bins), bins)
	}
	if bins[0].Lo != 10 || bins[0].Count != 2 || bins[1].Count != 1 || bins[2].Count != 1 || bins[3].Count != 1 {
		t.Fatalf("unexpected bins %+v", bins)
	}
	if _, err := HistogramWidth([]float64{1}, 0); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestCorrelationMatrix(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}
	c := []float64{5, 4, 3, 2, 1}
	m, err := CorrelationMatrix([]string{"a", "b", "c"}, [][]float64{a, b, c})
	if err != nil {
		t.Fatalf("CorrelationMatrix: %v", err)
	}
	if !almostEqual(m.At(0, 1), 1, 1e-9) || !almostEqual(m.At(0, 2), -1, 1e-9) {
		t.Fatalf("unexpected matrix %+v", m.Values)
	}
	for i := 0; i < 3; i++ {
		if m.At(i, i) != 1 {
			t.Fatalf("diagonal %d = %v", i, m.At(i, i))
		}
		for j := 0; j < 3; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Fatalf("matrix not symmetric at %d,%d", i, j)
			}
		}
	}
	if _, err := CorrelationMatrix([]string{"a"}, [][]float64{a, b}); err == nil {
		t.Fatalf("expected label/column mismatch error")
	}
	if _, err := CorrelationMatrix([]string{"a", "short"}, [][]float64{a, {1}}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestValueCountsOrdering(t *testing.T) {
	counts := ValueCounts([]string{"b", "a", "c", "a", "b", "a", "d"})
	want := []Count{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}
	if len(counts) != len(want) {
		t.Fatalf("counts=%+v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("pos %d got %+v want %+v", i, counts[i], want[i])
		}
	}
}

func TestTopWithOthers(t *testing.T) {
	counts := []Count{{"a", 5}, {"b", 3}, {"c", 2}, {"d", 1}}
	top := Top(counts, 2)
	if len(top.Top) != 2 || top.Top[0].Label != "a" || top.Top[1].Label != "b" {
		t.Fatalf("top=%+v", top.Top)
	}
	if top.Others.Label != OthersLabel || top.Others.Count != 3 {
		t.Fatalf("others=%+v", top.Others)
	}
	all := Top(counts, 10)
	if len(all.Top) != 4 || all.Others.Count != 0 {
		t.Fatalf("n > len: %+v", all)
	}
}

func TestLowessLinearDataIsPreserved(t *testing.T) {
	var xs, ys []float64
	for i := 0; i < 20; i++ {
		xs = append(xs, float64(i))
		ys = append(ys, 2*float64(i)+1)
	}
	fit, err := Lowess(xs, ys, DefaultLowessFrac, DefaultLowessIter)
	if err != nil {
		t.Fatalf("Lowess: %v", err)
	}
	for i, p := range fit {
		if !almostEqual(p.Y, 2*p.X+1, 1e-6) {
			t.Fatalf("point %d: got %v want %v", i, p.Y, 2*p.X+1)
		}
	}
}

func TestLowessSortedAndRobust(t *testing.T) {
	xs := []float64{5, 1, 3, 2, 4, 6, 7, 8, 9, 10}
	ys := []float64{5, 1, 3, 2, 40, 6, 7, 8, 9, 10} // outlier en x=4
	fit, err := Lowess(xs, ys, DefaultLowessFrac, DefaultLowessIter)
	if err != nil {
		t.Fatalf("Lowess: %v", err)
	}
	if len(fit) != len(xs) {
		t.Fatalf("len=%d", len(fit))
	}
	for i := 1; i < len(fit); i++ {
		if fit[i].X < fit[i-1].X {
			t.Fatalf("output not sorted by x: %+v", fit)
		}
	}
	// con iteraciones de robustez el outlier no domina el ajuste
	if fit[3].X != 4 || fit[3].Y > 10 {
		t.Fatalf("outlier not down-weighted: %+v", fit[3])
	}
}

func TestLowessEdgeCases(t *testing.T) {
	if _, err := Lowess(nil, nil, 0.5, 3); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := Lowess([]float64{1, 2}, []float64{1}, 0.5, 3); err == nil {
		t.Fatalf("expected length error")
	}
	fit, err := Lowess([]float64{3}, []float64{7}, 0.5, 3)
	if err != nil || len(fit) != 1 || fit[0].Y != 7 {
		t.Fatalf("single point => %+v %v", fit, err)
	}
	fit, err = Lowess([]float64{2, 2, 2}, []float64{1, 2, 3}, 1, 0)
	if err != nil {
		t.Fatalf("constant x: %v", err)
	}
	for _, p := range fit {
		if !almostEqual(p.Y, 2, 1e-9) {
			t.Fatalf("constant x should fit the mean: %+v", fit)
		}
	}
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if s.Count != 4 || s.Mean != 2.5 || s.Min != 1 || s.Max != 4 {
		t.Fatalf("summary=%+v", s)
	}
	if s.P50 != 2 {
		t.Fatalf("median percentile=%v", s.P50)
	}
	one, err := Describe([]float64{7})
	if err != nil || one.P25 != 7 || one.P75 != 7 {
		t.Fatalf("single value => %+v %v", one, err)
	}
	if _, err := Describe(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData")
	}
}

func TestLowessCurvedReference(t *testing.T) {
	// valores de referencia del ajuste local tricúbico sin robustez
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
		frac float64
		want []float64
	}{
		{
			name: "parabola full window",
			xs:   []float64{-2, -1, 0, 1, 2},
			ys:   []float64{4, 1, 0, 1, 4},
			frac: 1,
			want: []float64{3.379726882540406, 1.8615354728074665, 0.5726210350584308, 1.8615354728074662, 3.379726882540406},
		},
		{
			name: "sine irregular x",
			xs:   []float64{0, 1, 1.5, 3, 4.2, 5, 7},
			ys:   []float64{math.Sin(0), math.Sin(1), math.Sin(1.5), math.Sin(3), math.Sin(4.2), math.Sin(5), math.Sin(7)},
			frac: 0.6,
			want: []float64{0.03105163849907211, 0.7333241513971709, 0.9974949866040544, 0.07277078930536823, -0.6512132596253284, -0.9589242746631383, 0.6125991146876005},
		},
	}
	for _, tc := range cases {
		fit, err := Lowess(tc.xs, tc.ys, tc.frac, 0)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		for i, p := range fit {
			if p.X != tc.xs[i] || !almostEqual(p.Y, tc.want[i], 1e-9) {
				t.Fatalf("%s point %d = %+v, want y=%v", tc.name, i, p, tc.want[i])
			}
		}
	}
}

func TestMissingValuesAreSkipped(t *testing.T) {
	nan := math.NaN()

	bins, err := Histogram([]float64{nan, 1, 2, nan, 3}, 2)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 3 || bins[0].Lo != 1 {
		t.Fatalf("histogram counted missing values: %+v", bins)
	}
	if _, err := HistogramWidth([]float64{nan, nan}, 10); !errors.Is(err, ErrNoData) {
		t.Fatalf("all-missing column: %v", err)
	}

	s, err := Describe([]float64{nan, 2, 4})
	if err != nil || s.Count != 2 || s.Mean != 3 || s.Min != 2 {
		t.Fatalf("Describe = %+v %v", s, err)
	}

	// el par usa solo las filas completas en ambas columnas
	m, err := CorrelationMatrix([]string{"a", "b"}, [][]float64{
		{1, 2, nan, 4},
		{10, 20, 99, 40},
	})
	if err != nil || !almostEqual(m.At(0, 1), 1, 1e-12) {
		t.Fatalf("pairwise correlation = %v %v", m.Values, err)
	}

	fit, err := Lowess([]float64{1, nan, 3}, []float64{2, 5, nan}, 1, 0)
	if err != nil || len(fit) != 1 || fit[0].X != 1 {
		t.Fatalf("Lowess with missing = %+v %v", fit, err)
	}

	rows := CompleteRows([]float64{1, nan, 3}, []float64{4, 5, 6})
	if len(rows[0]) != 2 || rows[0][1] != 3 || rows[1][1] != 6 {
		t.Fatalf("CompleteRows = %v", rows)
	}

	counts := ValueCounts([]string{"Feminino", "", "Masculino", "Feminino"})
	if len(counts) != 2 || counts[0].Label != "Feminino" || counts[0].Count != 2 {
		t.Fatalf("blank label counted: %+v", counts)
	}
}
