// internal/syntax/adif.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
)

const adifMagic = 0x41444946 // "ADIF"

// ADIFHeader is the stream-level adif header. The program configs it
// carries determine the object type, sample rate and channel layout.
type ADIFHeader struct {
	BitstreamType int // 0 constant rate, 1 variable rate
	Bitrate       uint32
	NumPCE        int
	PCE           ProgramConfig
}

// ParseADIFHeader decodes adif_header() at the start of a stream.
// Only the first program config is retained; this decoder plays one
// program.
//
// Ported from: get_adif_header() in aacdec/get_adif_header.cpp
func ParseADIFHeader(r *bits.Reader, h *ADIFHeader) error {
	if r.GetBits(16) != adifMagic>>16 || r.GetBits(16) != adifMagic&0xFFFF {
		return ErrADIFMagic
	}
	if r.Get1Bit() != 0 { // copyright_id_present
		for i := 0; i < 9; i++ {
			r.GetBits(8) // copyright_id
		}
	}
	r.Get1Bit() // original_copy
	r.Get1Bit() // home
	h.BitstreamType = int(r.Get1Bit())
	h.Bitrate = r.GetBits(23)

	h.NumPCE = int(r.GetBits(4)) + 1
	for i := 0; i < h.NumPCE; i++ {
		if h.BitstreamType == 0 {
			r.GetBits(20) // adif_buffer_fullness
		}
		var pce ProgramConfig
		if err := ParseProgramConfig(r, &pce); err != nil {
			return err
		}
		if i == 0 {
			h.PCE = pce
		}
	}
	if r.Overrun() {
		return ErrADIFMagic
	}
	return nil
}
