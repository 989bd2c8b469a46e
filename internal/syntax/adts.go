// internal/syntax/adts.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

const (
	adtsSyncword   = 0xFFF
	adtsSyncBits   = 12
	adtsHeaderBits = 44 // fixed+variable header after the syncword
)

// ADTSHeader is the fixed and variable part of one adts frame header.
type ADTSHeader struct {
	ObjectType       int
	SRIndex          uint8
	ChannelConfig    int
	FrameLength      int // bytes, header included
	BufferFullness   int
	NumRawDataBlocks int
	CRCAbsent        bool
}

// FindADTSSync advances the reader bit by bit until the 12-bit
// syncword is visible, leaving the reader positioned on it.
//
// Ported from: find_adts_syncword() in aacdec/find_adts_syncword.cpp
func FindADTSSync(r *bits.Reader) error {
	for r.UsedBits()+adtsSyncBits+adtsHeaderBits <= r.Available() {
		if r.ShowBits(adtsSyncBits) == adtsSyncword {
			return nil
		}
		r.Get1Bit()
	}
	return ErrADTSSync
}

// ParseADTSHeader decodes one adts header at the current position,
// which must be on a syncword.
//
// Ported from: get_adts_header() in aacdec/get_adts_header.cpp
func ParseADTSHeader(r *bits.Reader, h *ADTSHeader) error {
	if r.GetBits(adtsSyncBits) != adtsSyncword {
		return ErrADTSSync
	}
	r.Get1Bit() // ID
	if r.GetBits(2) != 0 {
		return ErrADTSSync // layer must be '00'
	}
	h.CRCAbsent = r.Get1Bit() != 0

	h.ObjectType = int(r.GetBits(2)) + 1
	if h.ObjectType != ObjectTypeLC && h.ObjectType != ObjectTypeLTP {
		return ErrUnsupportedObject
	}
	h.SRIndex = uint8(r.GetBits(4))
	if tables.SampleRate(h.SRIndex) == 0 {
		return ErrSampleRateIndex
	}
	r.Get1Bit() // private_bit
	h.ChannelConfig = int(r.GetBits(3))
	if h.ChannelConfig > 2 {
		return ErrChannelConfig
	}
	r.Get1Bit() // original/copy
	r.Get1Bit() // home
	r.Get1Bit() // copyright_identification_bit
	r.Get1Bit() // copyright_identification_start

	h.FrameLength = int(r.GetBits(13))
	h.BufferFullness = int(r.GetBits(11))
	h.NumRawDataBlocks = int(r.GetBits(2))

	if !h.CRCAbsent {
		r.GetBits(16)
	}
	if r.Overrun() {
		return ErrADTSSync
	}
	return nil
}
