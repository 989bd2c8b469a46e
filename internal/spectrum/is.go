// internal/spectrum/is.go
package spectrum

import (
	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// ApplyIntensity rebuilds the right channel of every intensity band
// from the left channel scaled by 2^(-position/4). The direction is
// in phase for the intensity codebook and out of phase for its
// counterpart; a set mask bit inverts it.
//
// Ported from: intensity_right() in aacdec/intensity_right.cpp
func ApplyIntensity(right *syntax.ChannelStream, mask *[tables.MaxBands]bool, coefL, coefR []int32, qfL, qfR []int) {
	ics := &right.Info
	for g := 0; g < ics.NumGroups; g++ {
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			band := g*ics.Frame.SFBPerWin + sfb
			book := right.SFBCB[band]
			if book != huffman.IntensityHCB && book != huffman.IntensityHCB2 {
				continue
			}

			invert := book == huffman.IntensityHCB2
			if mask[band] {
				invert = !invert
			}

			start, end := ics.BandRange(g, sfb)
			if qfL[band] == QFormatUnset {
				for i := start; i < end; i++ {
					coefR[i] = 0
				}
				qfR[band] = QFormatUnset
				continue
			}

			pos := -right.FactorAt(g, sfb)
			qp := int64(quarterPow[pos&3])
			for i := start; i < end; i++ {
				v := int32(int64(coefL[i]) * qp >> 30)
				if invert {
					v = -v
				}
				coefR[i] = v
			}
			qfR[band] = qfL[band] - (pos >> 2)
		}
	}
}
