// internal/syntax/tns.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// ParseTNSData decodes tns_data(): per-window filter counts, then for
// each filter its band extent, order, direction and reflection
// coefficients. Band regions are assigned top-down from max_sfb.
//
// Ported from: get_tns() in aacdec/get_tns.cpp
func ParseTNSData(r *bits.Reader, ics *ICSInfo, tns *TNSData) error {
	short := ics.WindowSequence == tables.EightShortSequence

	nFiltBits, lengthBits, orderBits := uint(2), uint(6), uint(5)
	maxOrder := TNSMaxOrderLong
	numWin := 1
	if short {
		nFiltBits, lengthBits, orderBits = 1, 4, 3
		maxOrder = TNSMaxOrderShort
		numWin = tables.NumShortWindows
	}

	tns.Present = true
	for w := 0; w < numWin; w++ {
		nFilt := int(r.GetBits(nFiltBits))
		tns.NumFilt[w] = nFilt
		if nFilt == 0 {
			continue
		}
		coefRes := int(r.Get1Bit())

		bottom := ics.MaxSFB
		if bottom > ics.Frame.SFBPerWin {
			bottom = ics.Frame.SFBPerWin
		}
		for f := 0; f < nFilt; f++ {
			filt := &tns.Filters[w][f]
			top := bottom
			bottom = top - int(r.GetBits(lengthBits))
			if bottom < 0 {
				bottom = 0
			}
			filt.StartBand = bottom
			filt.StopBand = top

			filt.Order = int(r.GetBits(orderBits))
			if filt.Order > maxOrder {
				return ErrTNSOrder
			}
			if filt.Order == 0 {
				continue
			}

			filt.Downward = r.Get1Bit() != 0
			filt.Compress = r.Get1Bit() != 0
			filt.CoefRes = coefRes

			coefBits := uint(coefRes + 3)
			if filt.Compress {
				coefBits--
			}
			signShift := uint(8) - coefBits
			for i := 0; i < filt.Order; i++ {
				raw := uint8(r.GetBits(coefBits))
				filt.Coef[i] = int8(raw<<signShift) >> signShift
			}
		}
	}
	return nil
}
