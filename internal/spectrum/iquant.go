// Package spectrum rebuilds spectral coefficients from their coded
// form: inverse quantization, the stereo tools (mid/side, intensity,
// perceptual noise substitution), long-term prediction and temporal
// noise shaping, ending in a single Q format per channel ready for the
// filterbank.
//
// Coefficients are int32 mantissas. Until QNormalize runs, each
// scalefactor band has its own Q format in a caller-owned array: the
// real value of coef[i] in band b is coef[i] / 2^qf[b].
package spectrum

import (
	mathbits "math/bits"

	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// QFormatUnset marks a band that carries no spectral content yet:
// zero-coded bands, and noise or intensity bands before synthesis.
const QFormatUnset = 127

// Band mantissas are normalized to fewer than mantissaBits bits,
// leaving int32 headroom for the stereo tools and TNS.
const mantissaBits = 27

// iquantMag returns |q|^(4/3) scaled by the fractional part of the
// band exponent: mantissa*2^shift in Q13, where mantissa comes from
// the pow43 table. Magnitudes at or above the table size lose three
// low bits per reduction step (8^(4/3) = 16, so each step adds four
// result bits).
//
// Ported from: esc_iquant_scaling() in aacdec/esc_iquant_scaling.cpp
func iquantMag(q int32, qp int64) int64 {
	a := q
	if a < 0 {
		a = -a
	}
	shift := uint(0)
	for a >= 1024 {
		a >>= 3
		shift += 4
	}
	return (int64(pow43[a]) * qp >> 30) << shift
}

// Dequant converts the quantized coefficients of every coded band to
// spectral mantissas and fills qf with the per-band Q formats. Bands
// whose codebook carries no payload are marked QFormatUnset.
//
// Ported from: esc_iquant_scaling() in aacdec/esc_iquant_scaling.cpp
func Dequant(cs *syntax.ChannelStream, coef []int32, qf []int) {
	ics := &cs.Info
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			book := cs.SFBCB[band]
			if book == huffman.ZeroHCB || book > huffman.EscHCB {
				qf[band] = QFormatUnset
				continue
			}
			start, end := ics.BandRange(g, sfb)
			qf[band] = dequantBand(coef[start:end], cs.FactorAt(g, sfb))
		}
	}
}

// dequantBand scales one band in place and returns its Q format.
func dequantBand(coef []int32, sf int) int {
	exp := sf - syntax.SFOffset
	p := exp >> 2
	qp := int64(quarterPow[exp&3])

	var vmax int64
	for _, q := range coef {
		if v := iquantMag(q, qp); v > vmax {
			vmax = v
		}
	}
	if vmax == 0 {
		return QFormatUnset
	}

	// Normalize the band so the largest mantissa uses mantissaBits bits.
	t := mathbits.Len64(uint64(vmax)) - mantissaBits
	for i, q := range coef {
		v := iquantMag(q, qp)
		if t >= 0 {
			v >>= uint(t)
		} else {
			v <<= uint(-t)
		}
		if q < 0 {
			v = -v
		}
		coef[i] = int32(v)
	}
	return 13 - p - t
}

// QNormalize brings every coded band of a channel to the frame-wide
// minimum Q format and returns it. Bands whose mantissas would shift
// out entirely are cleared. Channels with no content at all report
// the neutral format for an all-zero spectrum.
//
// Ported from: q_normalize() in aacdec/q_normalize.cpp
func QNormalize(ics *syntax.ICSInfo, coef []int32, qf []int) int {
	minQF := QFormatUnset
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			if q := qf[g*ics.Frame.SFBPerWin+sfb]; q < minQF {
				minQF = q
			}
		}
	}
	if minQF == QFormatUnset {
		for i := 0; i < tables.LongWindow; i++ {
			coef[i] = 0
		}
		return mantissaBits
	}

	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			start, end := ics.BandRange(g, sfb)
			shift := qf[band] - minQF
			if shift == 0 {
				continue
			}
			if shift >= 31 {
				for i := start; i < end; i++ {
					coef[i] = 0
				}
			} else {
				for i := start; i < end; i++ {
					coef[i] >>= uint(shift)
				}
			}
			qf[band] = minQF
		}
	}
	return minQF
}
