// internal/filterbank/filterbank.go
package filterbank

import (
	"math"

	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// TimeQ is the fractional precision of time-domain samples produced by
// Inverse and consumed by Forward: PCM value times 2^TimeQ.
const TimeQ = 15

// Scratch is the per-decoder working memory of the transforms. One
// instance serves every channel; nothing in it survives a call.
type Scratch struct {
	Time [2 * tables.LongWindow]int32
	Fold [tables.LongWindow]int32
	Re   [tables.LongWindow / 2]int32
	Im   [tables.LongWindow / 2]int32
}

var (
	dct4Long  = newDCT4Plan(tables.LongWindow)
	dct4Short = newDCT4Plan(tables.ShortWindow)
)

// imdct expands an M-point scaled DCT-IV into the 2M-sample inverse
// MDCT output using the kernel symmetries. coef is destroyed.
func imdct(p *dct4Plan, coef, time []int32, s *Scratch) {
	m := p.m
	p.transform(coef, s.Re[:m/2], s.Im[:m/2])
	for n := 0; n < m/2; n++ {
		time[n] = coef[n+m/2]
	}
	for n := m / 2; n < 3*m/2; n++ {
		time[n] = -coef[3*m/2-1-n]
	}
	for n := 3 * m / 2; n < 2*m; n++ {
		time[n] = -coef[n-3*m/2]
	}
}

// Inverse runs the synthesis filterbank for one channel: IMDCT,
// windowing with the frame's window sequence and shapes, and overlap
// add. coef holds the frame's spectrum (per-window order, common Q
// format qf) and is destroyed. out receives 1024 time samples in
// TimeQ; overlap carries 1024 samples of state across frames.
//
// Ported from: trans4m_freq_2_time_fxp() in
// aacdec/trans4m_freq_2_time_fxp.cpp
func Inverse(seq tables.WindowSequence, shape, prevShape uint8, coef []int32, qf int, overlap, out []int32, s *Scratch) {
	copy(out[:tables.LongWindow], overlap[:tables.LongWindow])
	for i := 0; i < tables.LongWindow; i++ {
		overlap[i] = 0
	}
	sh := qf + 1 - TimeQ

	if seq == tables.EightShortSequence {
		for w := 0; w < tables.NumShortWindows; w++ {
			block := coef[w*tables.ShortWindow : (w+1)*tables.ShortWindow]
			time := s.Time[:2*tables.ShortWindow]
			imdct(dct4Short, block, time, s)

			left := shape
			if w == 0 {
				left = prevShape
			}
			rise := windowHalf(left, true)
			fall := windowHalf(shape, true)
			pos := 448 + w*tables.ShortWindow
			for i := 0; i < tables.ShortWindow; i++ {
				addSample(out, overlap, pos+i, winScale(time[i], rise[i], sh))
				addSample(out, overlap, pos+tables.ShortWindow+i,
					winScale(time[tables.ShortWindow+i], fall[tables.ShortWindow-1-i], sh))
			}
		}
		return
	}

	time := s.Time[:2*tables.LongWindow]
	imdct(dct4Long, coef, time, s)

	// Left half.
	switch seq {
	case tables.LongStopSequence:
		rise := windowHalf(prevShape, true)
		for i := 448; i < 576; i++ {
			addSample(out, overlap, i, winScale(time[i], rise[i-448], sh))
		}
		for i := 576; i < tables.LongWindow; i++ {
			addSample(out, overlap, i, shiftRound(int64(time[i]), sh))
		}
	default: // only-long and long-start share the long rise
		rise := windowHalf(prevShape, false)
		for i := 0; i < tables.LongWindow; i++ {
			addSample(out, overlap, i, winScale(time[i], rise[i], sh))
		}
	}

	// Right half.
	switch seq {
	case tables.LongStartSequence:
		for i := 0; i < 448; i++ {
			addSample(out, overlap, tables.LongWindow+i,
				shiftRound(int64(time[tables.LongWindow+i]), sh))
		}
		fall := windowHalf(shape, true)
		for i := 448; i < 576; i++ {
			addSample(out, overlap, tables.LongWindow+i,
				winScale(time[tables.LongWindow+i], fall[575-i], sh))
		}
	default: // only-long and long-stop share the long fall
		fall := windowHalf(shape, false)
		for i := 0; i < tables.LongWindow; i++ {
			addSample(out, overlap, tables.LongWindow+i,
				winScale(time[tables.LongWindow+i], fall[tables.LongWindow-1-i], sh))
		}
	}
}

// Forward runs the analysis MDCT the long-term predictor needs: window
// the 2048-sample predicted signal (TimeQ) with the current frame's
// long window, fold, transform, and write the predicted spectrum into
// spec at the channel's Q format. Long window sequences only.
//
// Ported from: trans4m_time_2_freq_fxp() in
// aacdec/trans4m_time_2_freq_fxp.cpp
func Forward(seq tables.WindowSequence, shape, prevShape uint8, time []int32, spec []int32, qf int, s *Scratch) {
	m := tables.LongWindow
	y := s.Time[:2*m]

	switch seq {
	case tables.LongStopSequence:
		rise := windowHalf(prevShape, true)
		for i := 0; i < 448; i++ {
			y[i] = 0
		}
		for i := 448; i < 576; i++ {
			y[i] = int32((int64(time[i]) * int64(rise[i-448])) >> 31)
		}
		copy(y[576:m], time[576:m])
	default:
		rise := windowHalf(prevShape, false)
		for i := 0; i < m; i++ {
			y[i] = int32((int64(time[i]) * int64(rise[i])) >> 31)
		}
	}
	switch seq {
	case tables.LongStartSequence:
		copy(y[m:m+448], time[m:m+448])
		fall := windowHalf(shape, true)
		for i := 448; i < 576; i++ {
			y[m+i] = int32((int64(time[m+i]) * int64(fall[575-i])) >> 31)
		}
		for i := 576; i < m; i++ {
			y[m+i] = 0
		}
	default:
		fall := windowHalf(shape, false)
		for i := 0; i < m; i++ {
			y[m+i] = int32((int64(time[m+i]) * int64(fall[m-1-i])) >> 31)
		}
	}

	v := s.Fold[:m]
	for i := 0; i < m/2; i++ {
		v[i] = sat32(-int64(y[3*m/2-1-i]) - int64(y[3*m/2+i]))
	}
	for i := m / 2; i < m; i++ {
		v[i] = sat32(int64(y[i-m/2]) - int64(y[3*m/2-1-i]))
	}

	dct4Long.transform(v, s.Re[:m/2], s.Im[:m/2])

	// The transform chain carries 2/M twice; restoring the analysis
	// amplitude at the channel Q format needs 2^(qf-5).
	sh := 5 - qf
	for i := 0; i < m; i++ {
		spec[i] = shiftRound(int64(v[i]), sh)
	}
}

// winScale windows one sample (Q31 coefficient) and rescales the
// transform output to TimeQ.
func winScale(v, w int32, sh int) int32 {
	return shiftRound((int64(v)*int64(w))>>31, sh)
}

// shiftRound rescales by 2^-sh with rounding on right shifts and
// saturation on left shifts.
func shiftRound(v int64, sh int) int32 {
	if sh > 0 {
		if sh >= 63 {
			return 0
		}
		return sat32((v + (1 << uint(sh-1))) >> uint(sh))
	}
	if sh < -32 {
		sh = -32
	}
	return sat32(v << uint(-sh))
}

// addSample accumulates one windowed value into the frame output or,
// past the frame boundary, into the overlap state.
func addSample(out, overlap []int32, idx int, v int32) {
	if idx < tables.LongWindow {
		out[idx] = sat32(int64(out[idx]) + int64(v))
	} else {
		overlap[idx-tables.LongWindow] = sat32(int64(overlap[idx-tables.LongWindow]) + int64(v))
	}
}

func sat32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
