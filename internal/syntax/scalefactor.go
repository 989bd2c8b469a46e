// internal/syntax/scalefactor.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/huffman"
)

// ParseScaleFactors decodes scale_factor_data(): one value per decoded
// band, interpretation depending on the band's codebook class.
//
// Regular bands carry DPCM scalefactors relative to global_gain.
// Intensity bands carry DPCM intensity positions starting from zero.
// Noise bands carry noise energies relative to global_gain-90; the
// first noise value in the frame is 9-bit PCM, the rest are DPCM.
//
// Ported from: hufffac() in aacdec/hufffac.cpp
func ParseScaleFactors(r *bits.Reader, cs *ChannelStream) error {
	fac := cs.GlobalGain
	isPos := 0
	noiseNrg := cs.GlobalGain - NoiseOffset
	noisePCM := true

	band := 0
	for s := 0; s < cs.NumSec; s++ {
		sect := cs.Sect[s]
		switch {
		case sect.Book == huffman.ZeroHCB:
			for ; band < sect.End; band++ {
				cs.Factors[band] = 0
			}

		case sect.Book == huffman.IntensityHCB ||
			sect.Book == huffman.IntensityHCB2:
			for ; band < sect.End; band++ {
				isPos += huffman.DecodeScaleFactor(r)
				cs.Factors[band] = int16(isPos)
			}

		case sect.Book == huffman.NoiseHCB:
			for ; band < sect.End; band++ {
				if noisePCM {
					noisePCM = false
					noiseNrg += int(r.GetBits(9)) - 256
				} else {
					noiseNrg += huffman.DecodeScaleFactor(r)
				}
				cs.Factors[band] = int16(noiseNrg)
			}

		default:
			for ; band < sect.End; band++ {
				fac += huffman.DecodeScaleFactor(r)
				if fac < 0 || fac >= 2*TEXP {
					return ErrScaleFactorRange
				}
				cs.Factors[band] = int16(fac)
			}
		}
	}
	return nil
}
