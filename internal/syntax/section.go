// internal/syntax/section.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Section run-length field widths.
const (
	sectBitsLong  = 5
	sectBitsShort = 3
)

// ParseSectionData decodes section_data(): per-group runs of
// scalefactor bands sharing one codebook. Bands between max_sfb and the
// full band count of a group are covered by a synthetic zero-codebook
// section so that downstream stages can walk Sect without special
// cases. The cumulative boundaries must land exactly on tot_sfb.
//
// Also fills cs.SFBCB, the flat per-band codebook map used by the
// scalefactor and stereo stages.
//
// Ported from: huffcb() in aacdec/huffcb.cpp
func ParseSectionData(r *bits.Reader, cs *ChannelStream) error {
	ics := &cs.Info

	sectBits := sectBitsLong
	if ics.WindowSequence == tables.EightShortSequence {
		sectBits = sectBitsShort
	}
	sectEscVal := (1 << uint(sectBits)) - 1

	totSFB := ics.TotalSFB()
	nsec := 0
	base := 0

	for g := 0; g < ics.NumGroups; g++ {
		band := base
		groupEnd := base + ics.MaxSFB
		for band < groupEnd {
			book := uint8(r.GetBits(4))
			if book == huffman.ReservedHCB {
				return ErrReservedCodebook
			}

			length := 0
			for {
				inc := int(r.GetBits(uint(sectBits)))
				length += inc
				if inc != sectEscVal {
					break
				}
			}

			band += length
			if band > groupEnd || nsec >= MaxSections {
				return ErrSectionBoundary
			}
			cs.Sect[nsec] = SectInfo{Book: book, End: band}
			nsec++
			for i := band - length; i < band; i++ {
				cs.SFBCB[i] = book
			}
		}
		if band != groupEnd {
			return ErrSectionBoundary
		}

		// Bands above max_sfb carry no data; cover them with a
		// synthetic zero section up to the group boundary.
		base += ics.Frame.SFBPerWin
		if band < base {
			if nsec >= MaxSections {
				return ErrSectionBoundary
			}
			cs.Sect[nsec] = SectInfo{Book: huffman.ZeroHCB, End: base}
			nsec++
			for i := band; i < base; i++ {
				cs.SFBCB[i] = huffman.ZeroHCB
			}
		}
	}
	if base != totSFB {
		return ErrSectionBoundary
	}

	cs.NumSec = nsec
	return nil
}
