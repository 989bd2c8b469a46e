// internal/spectrum/pns.go
package spectrum

import (
	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// noiseQ is the fractional precision of synthesized noise mantissas.
const noiseQ = 15

// nextRand steps the noise generator. Every call consumes one state
// update, so the sequence a frame sees depends only on the seed and
// the number of noise coefficients decoded before it.
//
// Ported from: gen_rand_vector() in aacdec/gen_rand_vector.cpp
func nextRand(seed *uint32) int32 {
	*seed = *seed*1103515245 + 12345
	return int32(*seed) >> 16
}

// GenerateNoise fills every noise band of a channel with scaled random
// values: a fresh random vector normalized to unit RMS, then scaled by
// 2^(energy/4). Bands are visited in group-major order so the
// generator state advances deterministically.
//
// Ported from: pns_left() in aacdec/pns_left.cpp
func GenerateNoise(seed *uint32, cs *syntax.ChannelStream, coef []int32, qf []int) {
	ics := &cs.Info
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			if cs.SFBCB[band] != huffman.NoiseHCB {
				continue
			}
			start, end := ics.BandRange(g, sfb)
			qf[band] = noiseBand(seed, coef[start:end], cs.FactorAt(g, sfb))
		}
	}
}

// GenerateNoisePair handles the noise bands of a channel pair. The
// left channel always gets a fresh vector. A masked band means the
// channels are correlated: the right band reuses the left vector,
// rescaled by the energy difference. Unmasked right bands draw their
// own vector after the left channel is done.
//
// Ported from: pns_intensity_right() in aacdec/pns_intensity_right.cpp
func GenerateNoisePair(seed *uint32, left, right *syntax.ChannelStream, mask *[tables.MaxBands]bool, coefL, coefR []int32, qfL, qfR []int) {
	GenerateNoise(seed, left, coefL, qfL)

	ics := &right.Info
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			if right.SFBCB[band] != huffman.NoiseHCB {
				continue
			}
			start, end := ics.BandRange(g, sfb)

			correlated := mask[band] &&
				left.SFBCB[band] == huffman.NoiseHCB &&
				qfL[band] != QFormatUnset
			if !correlated {
				qfR[band] = noiseBand(seed, coefR[start:end], right.FactorAt(g, sfb))
				continue
			}

			diff := right.FactorAt(g, sfb) - left.FactorAt(g, sfb)
			qp := int64(quarterPow[diff&3])
			for i := start; i < end; i++ {
				coefR[i] = int32(int64(coefL[i]) * qp >> 30)
			}
			qfR[band] = qfL[band] - (diff >> 2)
		}
	}
}

// noiseBand writes one band of noise and returns its Q format.
func noiseBand(seed *uint32, coef []int32, nrg int) int {
	var energy int64
	for i := range coef {
		n := nextRand(seed)
		coef[i] = n
		energy += int64(n) * int64(n)
	}
	if energy == 0 {
		return QFormatUnset
	}
	rms := isqrt64(energy / int64(len(coef)))
	if rms == 0 {
		rms = 1
	}

	qp := int64(quarterPow[nrg&3])
	for i := range coef {
		unit := (int64(coef[i]) << noiseQ) / rms
		coef[i] = int32(unit * qp >> 30)
	}
	return noiseQ - (nrg >> 2)
}

// isqrt64 is the integer square root, rounded down.
func isqrt64(v int64) int64 {
	if v <= 0 {
		return 0
	}
	var root, bit int64
	bit = 1 << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= root+bit {
			v -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root
}
