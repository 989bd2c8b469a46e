// internal/syntax/fill.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
)

// SkipFillElement consumes a fill_element() payload without
// interpreting it. Extension payloads (including SBR) are bit-skipped.
//
// Ported from: getfill() in aacdec/getfill.cpp
func SkipFillElement(r *bits.Reader) {
	count := int(r.GetBits(4))
	if count == 15 {
		count += int(r.GetBits(8)) - 1
	}
	for i := 0; i < count; i++ {
		r.GetBits(8)
	}
}

// SkipDataStreamElement consumes a data_stream_element() payload.
//
// Ported from: get_dse() in aacdec/get_dse.cpp
func SkipDataStreamElement(r *bits.Reader) {
	r.GetBits(4) // element_instance_tag
	alignFlag := r.Get1Bit() != 0
	count := int(r.GetBits(8))
	if count == 255 {
		count += int(r.GetBits(8))
	}
	if alignFlag {
		r.ByteAlign()
	}
	for i := 0; i < count; i++ {
		r.GetBits(8)
	}
}
