// internal/spectrum/ms.go
package spectrum

import (
	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// ApplyMS runs mid/side synthesis on every masked band whose right
// channel carries regular spectral data: l = m+s, r = m-s. Intensity
// and noise bands are left for their own tools, which consume the mask
// themselves. Both bands are first brought to a common Q format one
// bit below the smaller of the two, so the sums cannot overflow.
//
// Ported from: ms_synt() in aacdec/ms_synt.cpp
func ApplyMS(right *syntax.ChannelStream, mask *[tables.MaxBands]bool, coefL, coefR []int32, qfL, qfR []int) {
	ics := &right.Info
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			if !mask[band] {
				continue
			}
			book := right.SFBCB[band]
			if book == huffman.NoiseHCB || book == huffman.IntensityHCB ||
				book == huffman.IntensityHCB2 {
				continue
			}
			if qfL[band] == QFormatUnset && qfR[band] == QFormatUnset {
				continue
			}

			common := qfL[band]
			if qfR[band] < common {
				common = qfR[band]
			}
			common-- // guard bit for the add

			start, end := ics.BandRange(g, sfb)
			alignBand(coefL[start:end], qfL[band]-common)
			alignBand(coefR[start:end], qfR[band]-common)
			qfL[band] = common
			qfR[band] = common

			for i := start; i < end; i++ {
				m, s := coefL[i], coefR[i]
				coefL[i] = m + s
				coefR[i] = m - s
			}
		}
	}
}

// alignBand shifts a band's mantissas down to a smaller Q format.
// An unset source band is all zeros and needs no work.
func alignBand(coef []int32, shift int) {
	if shift <= 0 {
		return
	}
	if shift >= 31 {
		for i := range coef {
			coef[i] = 0
		}
		return
	}
	for i := range coef {
		coef[i] >>= uint(shift)
	}
}
