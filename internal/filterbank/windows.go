// internal/filterbank/windows.go
package filterbank

import (
	"math"

	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Window shapes from the 1-bit window_shape field.
const (
	ShapeSine = 0
	ShapeKBD  = 1
)

// Rising window halves in Q31. The falling half of a window is the
// rising half read backwards.
var (
	sineLong  [tables.LongWindow]int32
	sineShort [tables.ShortWindow]int32
	kbdLong   [tables.LongWindow]int32
	kbdShort  [tables.ShortWindow]int32
)

func init() {
	fillSine(sineLong[:])
	fillSine(sineShort[:])
	fillKBD(kbdLong[:], 4.0)
	fillKBD(kbdShort[:], 6.0)
}

func fillSine(w []int32) {
	n := float64(len(w))
	for i := range w {
		w[i] = q31(math.Sin(math.Pi * (float64(i) + 0.5) / (2 * n)))
	}
}

// fillKBD builds a Kaiser-Bessel derived rising half per ISO/IEC
// 14496-3: cumulative sums of a Kaiser window of length n+1.
func fillKBD(w []int32, alpha float64) {
	n := len(w)
	kaiser := make([]float64, n+1)
	var total float64
	for j := 0; j <= n; j++ {
		x := 2*float64(j)/float64(n) - 1
		kaiser[j] = besselI0(math.Pi * alpha * math.Sqrt(1-x*x))
		total += kaiser[j]
	}
	var cum float64
	for i := 0; i < n; i++ {
		cum += kaiser[i]
		w[i] = q31(math.Sqrt(cum / total))
	}
}

func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	for k := 1; k < 64; k++ {
		term *= (x / (2 * float64(k))) * (x / (2 * float64(k)))
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

func q31(v float64) int32 {
	s := math.Round(v * (1 << 31))
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(s)
}

// windowHalf returns the rising half for a shape and length.
func windowHalf(shape uint8, short bool) []int32 {
	if short {
		if shape == ShapeKBD {
			return kbdShort[:]
		}
		return sineShort[:]
	}
	if shape == ShapeKBD {
		return kbdLong[:]
	}
	return sineLong[:]
}
