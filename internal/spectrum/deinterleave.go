// internal/spectrum/deinterleave.go
package spectrum

import (
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Deinterleave rewrites a short frame from the grouped band layout to
// plain per-window order: window w occupies coef[w*128:(w+1)*128].
// scratch must hold tables.LongWindow values; long frames are already
// in window order and are left untouched.
//
// Ported from: deinterleave() in aacdec/deinterleave.cpp
func Deinterleave(ics *syntax.ICSInfo, coef, scratch []int32) {
	if ics.WindowSequence != tables.EightShortSequence {
		return
	}

	src := 0
	win := 0
	for g := 0; g < ics.NumGroups; g++ {
		l := ics.GroupLen[g]
		prev := 0
		for sfb := 0; sfb < ics.Frame.SFBPerWin; sfb++ {
			top := int(ics.Frame.WinSFBTop[sfb])
			width := top - prev
			for w := 0; w < l; w++ {
				dst := (win+w)*tables.ShortWindow + prev
				copy(scratch[dst:dst+width], coef[src:src+width])
				src += width
			}
			prev = top
		}
		win += l
	}
	copy(coef[:tables.LongWindow], scratch[:tables.LongWindow])
}
