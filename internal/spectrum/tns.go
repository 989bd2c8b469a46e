// internal/spectrum/tns.go
package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// lpcQ is the fixed-point precision of the LPC coefficients derived
// from the transmitted reflection coefficients.
const lpcQ = 23

// Reflection coefficient tables in Q31, one per coefficient
// resolution, indexed by the sign-extended transmitted value plus the
// table midpoint.
var (
	tnsKTable3 [8]int32
	tnsKTable4 [16]int32
)

func init() {
	fillKTable(tnsKTable3[:], 3)
	fillKTable(tnsKTable4[:], 4)
}

func fillKTable(table []int32, bits uint) {
	half := 1 << (bits - 1)
	iqfac := (float64(half) - 0.5) / (math.Pi / 2)
	iqfacM := (float64(half) + 0.5) / (math.Pi / 2)
	for c := -half; c < half; c++ {
		f := iqfac
		if c < 0 {
			f = iqfacM
		}
		table[c+half] = int32(math.Round(math.Sin(float64(c)/f) * float64(1<<31)))
	}
}

// tnsLPC converts one filter's reflection coefficients to direct-form
// LPC coefficients in Q23. lpc[0] is implicit and not stored; lpc[i]
// corresponds to a delay of i+1 samples.
//
// Ported from: tns_decode_coef() in aacdec/tns_decode_coef.cpp
func tnsLPC(filt *syntax.TNSFilter, lpc *[syntax.TNSMaxOrder]int64) {
	table := tnsKTable3[:]
	half := 4
	if filt.CoefRes == 1 {
		table = tnsKTable4[:]
		half = 8
	}

	var work [syntax.TNSMaxOrder]int64
	for m := 0; m < filt.Order; m++ {
		k := int64(table[int(filt.Coef[m])+half])
		for i := 0; i < m; i++ {
			work[i] = lpc[i] + (k*lpc[m-1-i])>>31
		}
		work[m] = k >> (31 - lpcQ)
		copy(lpc[:m+1], work[:m+1])
	}
}

// tnsRegion resolves one filter's coefficient span inside a window:
// band indices clipped to max_sfb and the sample rate's TNS band
// limit, then mapped through the window's band tops.
func tnsRegion(ics *syntax.ICSInfo, srIndex uint8, filt *syntax.TNSFilter) (int, int) {
	short := ics.WindowSequence == tables.EightShortSequence
	limit := tables.TNSMaxBands(srIndex, short)
	if limit > ics.MaxSFB {
		limit = ics.MaxSFB
	}

	clip := func(b int) int {
		if b > limit {
			b = limit
		}
		if b <= 0 {
			return 0
		}
		return int(ics.Frame.WinSFBTop[b-1])
	}
	return clip(filt.StartBand), clip(filt.StopBand)
}

// ApplyTNS runs the temporal-noise-shaping synthesis filter over the
// decoded spectrum of one channel, window by window. The spectrum must
// already be in per-window order.
//
// Ported from: tns_ar_filter() in aacdec/tns_ar_filter.cpp
func ApplyTNS(cs *syntax.ChannelStream, srIndex uint8, coef []int32) {
	if !cs.TNS.Present {
		return
	}
	ics := &cs.Info
	var lpc [syntax.TNSMaxOrder]int64
	for w := 0; w < ics.Frame.NumWin; w++ {
		win := coef[w*ics.Frame.CoefPerWin : (w+1)*ics.Frame.CoefPerWin]
		for f := 0; f < cs.TNS.NumFilt[w]; f++ {
			filt := &cs.TNS.Filters[w][f]
			if filt.Order == 0 {
				continue
			}
			start, stop := tnsRegion(ics, srIndex, filt)
			if stop-start <= 0 {
				continue
			}
			tnsLPC(filt, &lpc)
			arFilter(win[start:stop], lpc[:filt.Order], filt.Downward)
		}
	}
}

// TNSFilterPrediction runs the analysis (FIR) counterpart over a
// predicted spectrum, removing the shaping the synthesis filter will
// reapply. Used on the long-term prediction path, long windows only.
//
// Ported from: tns_inv_filter() in aacdec/tns_inv_filter.cpp
func TNSFilterPrediction(cs *syntax.ChannelStream, srIndex uint8, coef []int32) {
	if !cs.TNS.Present {
		return
	}
	ics := &cs.Info
	var lpc [syntax.TNSMaxOrder]int64
	for f := 0; f < cs.TNS.NumFilt[0]; f++ {
		filt := &cs.TNS.Filters[0][f]
		if filt.Order == 0 {
			continue
		}
		start, stop := tnsRegion(ics, srIndex, filt)
		if stop-start <= 0 {
			continue
		}
		tnsLPC(filt, &lpc)
		firFilter(coef[start:stop], lpc[:filt.Order], filt.Downward)
	}
}

// arFilter applies the all-pole filter in place:
// y[n] = x[n] - sum(lpc[i]*y[n-1-i]).
func arFilter(x []int32, lpc []int64, downward bool) {
	n := len(x)
	idx := func(i int) int {
		if downward {
			return n - 1 - i
		}
		return i
	}
	for i := 0; i < n; i++ {
		acc := int64(x[idx(i)]) << lpcQ
		for j := 0; j < len(lpc) && j < i; j++ {
			acc -= lpc[j] * int64(x[idx(i-1-j)])
		}
		x[idx(i)] = int32(acc >> lpcQ)
	}
}

// firFilter applies the all-zero filter in place:
// y[n] = x[n] + sum(lpc[i]*x[n-1-i]).
func firFilter(x []int32, lpc []int64, downward bool) {
	n := len(x)
	idx := func(i int) int {
		if downward {
			return n - 1 - i
		}
		return i
	}
	var hist [syntax.TNSMaxOrder]int64
	for i := 0; i < n; i++ {
		v := int64(x[idx(i)])
		acc := v << lpcQ
		for j := 0; j < len(lpc) && j < i; j++ {
			acc += lpc[j] * hist[(i-1-j)%syntax.TNSMaxOrder]
		}
		hist[i%syntax.TNSMaxOrder] = v
		x[idx(i)] = int32(acc >> lpcQ)
	}
}
