package master_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recurrence/master"
)

func TestClassifyDivision(t *testing.T) {
	tests := []struct {
		name    string
		a, b, k float64
		want    master.Case
		bound   string
	}{
		{name: "merge sort", a: 2, b: 2, k: 1, want: master.DivisionLeafBalanced, bound: "Θ(n log n)"},
		{name: "quickselect", a: 1, b: 2, k: 1, want: master.DivisionRootHeavy, bound: "Θ(n)"},
		{name: "naive multiply", a: 4, b: 2, k: 1, want: master.DivisionLeafHeavy, bound: "Θ(n^2)"},
		{name: "binary search", a: 1, b: 2, k: 0, want: master.DivisionLeafBalanced, bound: "Θ(log n)"},
		{name: "karatsuba", a: 3, b: 2, k: 1, want: master.DivisionLeafHeavy, bound: "Θ(n^1.585)"},
		{name: "strassen", a: 7, b: 2, k: 2, want: master.DivisionLeafHeavy, bound: "Θ(n^2.807)"},
		{name: "cubic balanced", a: 8, b: 2, k: 3, want: master.DivisionLeafBalanced, bound: "Θ(n^3 log n)"},
		{name: "quadratic root", a: 2, b: 2, k: 2, want: master.DivisionRootHeavy, bound: "Θ(n^2)"},
		{name: "ternary balanced", a: 3, b: 3, k: 1, want: master.DivisionLeafBalanced, bound: "Θ(n log n)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := master.ClassifyDivision(tt.a, tt.b, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, master.Division, got.Family())
			assert.Equal(t, tt.bound, master.Bound(got, tt.a, tt.b, tt.k))
		})
	}
}

func TestClassifyDivision_Invalid(t *testing.T) {
	for _, p := range [][3]float64{
		{0.5, 2, 1},
		{2, 1, 1},
		{2, 0.5, 1},
		{2, 2, -1},
		{math.NaN(), 2, 1},
		{2, math.Inf(1), 1},
	} {
		_, err := master.ClassifyDivision(p[0], p[1], p[2])
		assert.ErrorIs(t, err, master.ErrInvalidParameter, "params=%v", p)
	}
}

func TestClassifySubtraction(t *testing.T) {
	tests := []struct {
		name    string
		a, c, k float64
		want    master.Case
		bound   string
	}{
		{name: "linear sum", a: 1, c: 1, k: 0, want: master.SubtractionLinear, bound: "O(n)"},
		{name: "hanoi", a: 2, c: 1, k: 0, want: master.SubtractionExponential, bound: "O(2^n)"},
		{name: "probabilistic", a: 0.5, c: 1, k: 0, want: master.SubtractionDecaying, bound: "O(1)"},
		{name: "insertion sort", a: 1, c: 1, k: 1, want: master.SubtractionLinear, bound: "O(n^2)"},
		{name: "step two with work", a: 2, c: 2, k: 1, want: master.SubtractionExponential, bound: "O(2^(n/2)·n)"},
		{name: "decaying linear work", a: 0.25, c: 1, k: 1, want: master.SubtractionDecaying, bound: "O(n)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := master.ClassifySubtraction(tt.a, tt.c, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, master.Subtraction, got.Family())
			assert.Equal(t, tt.bound, master.Bound(got, tt.a, tt.c, tt.k))
		})
	}
}

func TestClassifySubtraction_Invalid(t *testing.T) {
	for _, p := range [][3]float64{
		{0, 1, 0},
		{-1, 1, 0},
		{1, 0, 0},
		{1, 1, -2},
		{math.Inf(-1), 1, 0},
	} {
		_, err := master.ClassifySubtraction(p[0], p[1], p[2])
		assert.ErrorIs(t, err, master.ErrInvalidParameter, "params=%v", p)
	}
}

func TestCriticalExponent(t *testing.T) {
	assert.Equal(t, 2.0, master.CriticalExponent(4, 2))
	assert.Equal(t, 3.0, master.CriticalExponent(8, 2))
	assert.InDelta(t, 1.0, master.CriticalExponent(3, 3), 1e-12)
	assert.InDelta(t, math.Log2(3), master.CriticalExponent(3, 2), 1e-12)
	assert.Zero(t, master.CriticalExponent(1, 5))
}

func TestCatalog(t *testing.T) {
	wantCases := []master.Case{
		master.SubtractionLinear,
		master.SubtractionExponential,
		master.SubtractionDecaying,
		master.DivisionLeafBalanced,
		master.DivisionRootHeavy,
		master.DivisionLeafHeavy,
	}
	wantBounds := []string{"O(n)", "O(2^n)", "O(1)", "Θ(n log n)", "Θ(n)", "Θ(n^2)"}
	wantConds := []string{"a=1", "a>1", "a<1", "a=b^k", "a<b^k", "a>b^k"}

	cat := master.Catalog()
	require.Len(t, cat, 6)
	for i, r := range cat {
		c, err := r.Classify()
		require.NoError(t, err, r.Name)
		assert.Equal(t, wantCases[i], c, r.Name)
		assert.Equal(t, wantConds[i], c.Condition(), r.Name)

		b, err := r.Bound()
		require.NoError(t, err, r.Name)
		assert.Equal(t, wantBounds[i], b, r.Name)
		assert.NotEmpty(t, r.Formula)
	}

	// callers get their own copy
	cat[0].Name = "changed"
	assert.Equal(t, "LinearAccumulate", master.Catalog()[0].Name)
}

func TestRecurrence_UnknownFamily(t *testing.T) {
	r := master.Recurrence{Name: "bogus", Family: master.Family(9), A: 1, B: 2, K: 1}
	_, err := r.Classify()
	assert.ErrorIs(t, err, master.ErrInvalidParameter)
	_, err = r.Bound()
	assert.ErrorIs(t, err, master.ErrInvalidParameter)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "subtraction", master.Subtraction.String())
	assert.Equal(t, "division", master.Division.String())
	assert.Equal(t, "Family(9)", master.Family(9).String())

	assert.Equal(t, "DivisionLeafHeavy", master.DivisionLeafHeavy.String())
	assert.Equal(t, "SubtractionDecaying", master.SubtractionDecaying.String())
	assert.Equal(t, "Case(0)", master.Case(0).String())
	assert.Equal(t, "?", master.Case(0).Condition())
	assert.Equal(t, "?", master.Bound(master.Case(42), 1, 2, 1))
}
