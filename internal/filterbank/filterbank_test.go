package filterbank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-aacfxp/internal/tables"
)

func TestFFTMatchesDFT(t *testing.T) {
	const n = 16
	p := newFFTPlan(n)

	re := make([]int32, n)
	im := make([]int32, n)
	seed := uint32(7)
	for i := range re {
		seed = seed*1103515245 + 12345
		re[i] = int32(seed) >> 12
		seed = seed*1103515245 + 12345
		im[i] = int32(seed) >> 12
	}
	wantRe := make([]float64, n)
	wantIm := make([]float64, n)
	for q := 0; q < n; q++ {
		for r := 0; r < n; r++ {
			a := -2 * math.Pi * float64(q*r) / n
			wantRe[q] += float64(re[r])*math.Cos(a) - float64(im[r])*math.Sin(a)
			wantIm[q] += float64(re[r])*math.Sin(a) + float64(im[r])*math.Cos(a)
		}
		// The implementation scales by 1/n.
		wantRe[q] /= n
		wantIm[q] /= n
	}

	p.transform(re, im)
	for q := 0; q < n; q++ {
		require.InDelta(t, wantRe[q], float64(re[q]), 48, "re[%d]", q)
		require.InDelta(t, wantIm[q], float64(im[q]), 48, "im[%d]", q)
	}
}

func TestDCT4MatchesDirect(t *testing.T) {
	const m = 128
	p := newDCT4Plan(m)

	x := make([]int32, m)
	seed := uint32(41)
	for i := range x {
		seed = seed*1103515245 + 12345
		x[i] = int32(seed) >> 12
	}
	want := make([]float64, m)
	for k := 0; k < m; k++ {
		for n := 0; n < m; n++ {
			want[k] += float64(x[n]) *
				math.Cos(math.Pi/m*(float64(n)+0.5)*(float64(k)+0.5))
		}
		want[k] *= 2.0 / m // implementation scale
	}

	re := make([]int32, m/2)
	im := make([]int32, m/2)
	p.transform(x, re, im)
	for k := 0; k < m; k++ {
		require.InDelta(t, want[k], float64(x[k]), 256, "bin %d", k)
	}
}

func TestWindowsPowerComplementary(t *testing.T) {
	check := func(name string, w []int32) {
		n := len(w)
		for i := 0; i < n; i++ {
			a := float64(w[i]) / (1 << 31)
			b := float64(w[n-1-i]) / (1 << 31)
			// Princen-Bradley: rise^2 + reversed-rise^2 = 1.
			require.InDelta(t, 1.0, a*a+b*b, 1e-4, "%s sample %d", name, i)
		}
	}
	check("sineLong", sineLong[:])
	check("sineShort", sineShort[:])
	check("kbdLong", kbdLong[:])
	check("kbdShort", kbdShort[:])
}

func TestWindowsMonotonicRise(t *testing.T) {
	for _, w := range [][]int32{sineLong[:], sineShort[:], kbdLong[:], kbdShort[:]} {
		for i := 1; i < len(w); i++ {
			require.GreaterOrEqual(t, w[i], w[i-1])
		}
	}
}

// refIMDCT is the textbook inverse MDCT at double precision.
func refIMDCT(spec []float64) []float64 {
	m := len(spec)
	n := 2 * m
	n0 := float64(n)/4 + 0.5
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k < m; k++ {
			sum += spec[k] * math.Cos(2*math.Pi/float64(n)*(float64(i)+n0)*(float64(k)+0.5))
		}
		out[i] = sum / float64(m)
	}
	return out
}

func TestInverseLongAgainstReference(t *testing.T) {
	const qf = 15
	coef := make([]int32, tables.LongWindow)
	ref := make([]float64, tables.LongWindow)
	for _, k := range []int{1, 5, 40, 333} {
		coef[k] = 3000 << qf
		ref[k] = 3000
	}

	want := refIMDCT(ref)
	overlap := make([]int32, tables.LongWindow)
	out := make([]int32, tables.LongWindow)
	var s Scratch
	Inverse(tables.OnlyLongSequence, ShapeSine, ShapeSine, coef, qf, overlap, out, &s)

	for i := 0; i < tables.LongWindow; i++ {
		w := math.Sin(math.Pi * (float64(i) + 0.5) / (2 * tables.LongWindow))
		wantQ := want[i] * w * (1 << TimeQ)
		require.InDelta(t, wantQ, float64(out[i]), math.Abs(wantQ)*0.01+512,
			"sample %d", i)
	}
	// The saved overlap is the windowed second half.
	for i := 0; i < tables.LongWindow; i += 97 {
		j := tables.LongWindow + i
		w := math.Sin(math.Pi * (float64(tables.LongWindow-1-i) + 0.5) / (2 * tables.LongWindow))
		wantQ := want[j] * w * (1 << TimeQ)
		require.InDelta(t, wantQ, float64(overlap[i]), math.Abs(wantQ)*0.01+512,
			"overlap %d", i)
	}
}

func TestInverseAddsOverlap(t *testing.T) {
	coef := make([]int32, tables.LongWindow)
	overlap := make([]int32, tables.LongWindow)
	out := make([]int32, tables.LongWindow)
	for i := range overlap {
		overlap[i] = int32(i)
	}
	var s Scratch
	Inverse(tables.OnlyLongSequence, ShapeSine, ShapeSine, coef, 20, overlap, out, &s)
	for i := 0; i < tables.LongWindow; i++ {
		require.Equal(t, int32(i), out[i])
		require.Zero(t, overlap[i])
	}
}

func TestForwardInverseConsistency(t *testing.T) {
	// A spectrum sent through the synthesis filterbank twice (steady
	// state) and re-analyzed with Forward must come back close to
	// itself on the mid spectrum bins.
	const qf = 15
	spec := make([]int32, tables.LongWindow)
	for _, k := range []int{3, 17, 200} {
		spec[k] = 2000 << qf
	}

	overlap := make([]int32, tables.LongWindow)
	outA := make([]int32, tables.LongWindow)
	outB := make([]int32, tables.LongWindow)
	var s Scratch

	coef := make([]int32, tables.LongWindow)
	copy(coef, spec)
	Inverse(tables.OnlyLongSequence, ShapeSine, ShapeSine, coef, qf, overlap, outA, &s)
	copy(coef, spec)
	Inverse(tables.OnlyLongSequence, ShapeSine, ShapeSine, coef, qf, overlap, outB, &s)

	// Reconstruct the 2048-sample steady-state slab: frame B plus the
	// pending overlap tail.
	time := make([]int32, 2*tables.LongWindow)
	copy(time[:tables.LongWindow], outB)
	copy(time[tables.LongWindow:], overlap)

	got := make([]int32, tables.LongWindow)
	Forward(tables.OnlyLongSequence, ShapeSine, ShapeSine, time, got, qf, &s)

	for _, k := range []int{3, 17, 200} {
		require.InDelta(t, float64(spec[k]), float64(got[k]),
			float64(spec[k])*0.05, "bin %d", k)
	}
}
