// internal/spectrum/ltp.go
package spectrum

import (
	"github.com/llehouerou/go-aacfxp/internal/filterbank"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// LTPHistorySize is the per-channel sample history the predictor sees:
// the outputs of the previous two frames plus the pending overlap tail.
const LTPHistorySize = 3 * tables.LongWindow

// ltpWeights is the prediction gain codebook in Q14.
var ltpWeights = [8]int32{
	9352, 11413, 13320, 14931, 16137, 17496, 19572, 22438,
}

// ApplyLTP adds the long-term prediction to a channel's spectrum:
// weighted history samples form the predicted signal, the forward MDCT
// moves it into the spectral domain, any TNS filtering is undone on
// it, and the bands flagged in the side info receive the prediction.
// coef must already be at the single Q format qf. Short frames carry
// no usable prediction and are skipped.
//
// Ported from: long_term_prediction() in aacdec/long_term_prediction.cpp
func ApplyLTP(cs *syntax.ChannelStream, srIndex uint8, prevShape uint8, hist []int16, coef []int32, qf int, predTime, predSpec []int32, fb *filterbank.Scratch) {
	ics := &cs.Info
	if !cs.LTP.DataPresent || ics.WindowSequence == tables.EightShortSequence {
		return
	}

	w := ltpWeights[cs.LTP.WeightIndex]
	lag := cs.LTP.Lag
	for j := 0; j < 2*tables.LongWindow; j++ {
		idx := tables.LongWindow + j - lag
		if idx < 0 {
			predTime[j] = 0
			continue
		}
		// Q14 weight times PCM history, widened to the TimeQ domain.
		predTime[j] = (w * int32(hist[idx])) << 1
	}

	filterbank.Forward(ics.WindowSequence, ics.WindowShape, prevShape, predTime, predSpec, qf, fb)
	TNSFilterPrediction(cs, srIndex, predSpec)

	last := ics.MaxSFB
	if last > syntax.MaxLTPSFB {
		last = syntax.MaxLTPSFB
	}
	prev := 0
	for sfb := 0; sfb < last; sfb++ {
		top := int(ics.Frame.WinSFBTop[sfb])
		if cs.LTP.LongUsed[sfb] {
			for i := prev; i < top; i++ {
				coef[i] = satAdd(coef[i], predSpec[i])
			}
		}
		prev = top
	}
}

// UpdateLTPHistory shifts a channel's prediction history after the
// filterbank: the previous frame's output slides down, the fresh
// output fills the middle, and the pending overlap tail (still in
// TimeQ) lands on top.
//
// Ported from: the ltp_buffer update in aacdec/pvmp4audiodecodeframe.cpp
func UpdateLTPHistory(hist []int16, pcm []int16, overlap []int32) {
	n := tables.LongWindow
	copy(hist[:n], hist[n:2*n])
	copy(hist[n:2*n], pcm[:n])
	for i := 0; i < n; i++ {
		hist[2*n+i] = clamp16(int32((int64(overlap[i]) + 1<<(filterbank.TimeQ-1)) >> filterbank.TimeQ))
	}
}

func satAdd(a, b int32) int32 {
	s := int64(a) + int64(b)
	if s > 1<<31-1 {
		return 1<<31 - 1
	}
	if s < -(1 << 31) {
		return -(1 << 31)
	}
	return int32(s)
}

func clamp16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
