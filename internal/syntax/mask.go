// internal/syntax/mask.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Mid/side mask states from the 2-bit ms_mask_present field.
const (
	MaskNotPresent = 0
	MaskPresent    = 1
	MaskAll        = 2
)

// ParseMask decodes the ms_mask_present field of a channel_pair_element
// and, when per-band flags follow, the ms_used bits for every group and
// active band. The flags are fetched in wide reads rather than one bit
// at a time.
//
// Ported from: getmask() in aacdec/getmask.cpp
func ParseMask(r *bits.Reader, ics *ICSInfo, mask *[tables.MaxBands]bool) (int, error) {
	present := int(r.GetBits(2))
	switch present {
	case MaskNotPresent:
		for i := range mask {
			mask[i] = false
		}
		return present, nil
	case MaskAll:
		for i := range mask {
			mask[i] = true
		}
		return present, nil
	case MaskPresent:
	default:
		return 0, ErrMaskPresent
	}

	band := 0
	for g := 0; g < ics.NumGroups; g++ {
		remaining := ics.MaxSFB
		groupEnd := band + ics.Frame.SFBPerWin
		for remaining > 0 {
			n := remaining
			if n > bits.MaxGetBits {
				n = bits.MaxGetBits
			}
			flags := r.GetBits(uint(n))
			for i := n - 1; i >= 0; i-- {
				mask[band] = flags&(1<<uint(i)) != 0
				band++
			}
			remaining -= n
		}
		for ; band < groupEnd; band++ {
			mask[band] = false
		}
	}
	for ; band < tables.MaxBands; band++ {
		mask[band] = false
	}
	return present, nil
}
