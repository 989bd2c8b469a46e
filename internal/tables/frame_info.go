// Package tables contains the immutable lookup tables for AAC decoding:
// per-rate scalefactor band layouts, frame descriptors and the window
// sequence map.
package tables

// Frame geometry constants.
// Ported from: aacdec/e_blockswitching.h
const (
	LongWindow      = 1024 // coefficients in a long window
	ShortWindow     = 128  // coefficients in a short window
	NumShortWindows = 8    // short windows per frame

	MaxSFBLong  = 51 // most scalefactor bands in any long-window layout
	MaxSFBShort = 15 // most scalefactor bands in any short window
	MaxGroups   = 8  // at most one group per short window

	// MaxBands bounds the total (group, sfb) coordinates in a frame.
	MaxBands = NumShortWindows * MaxSFBShort
)

// WindowSequence is the 2-bit window_sequence field of ics_info.
// Ported from: WINDOW_SEQUENCE in aacdec/e_window_sequence.h
type WindowSequence uint8

const (
	OnlyLongSequence WindowSequence = iota
	LongStartSequence
	EightShortSequence
	LongStopSequence
)

// FrameInfo describes one block type at one sampling rate: window count,
// coefficients and scalefactor bands per window, and the cumulative band
// top table (band b spans coefficients [WinSFBTop[b-1], WinSFBTop[b])).
//
// FrameInfo values are immutable; per-frame grouping state derived from
// them lives with the channel stream.
//
// Ported from: FrameInfo in aacdec/s_frameinfo.h
type FrameInfo struct {
	NumWin     int
	CoefPerWin int
	SFBPerWin  int
	WinSFBTop  []int16
}

// longInfo and shortInfo cache the FrameInfo per sample rate index.
var (
	longInfo  [12]FrameInfo
	shortInfo [12]FrameInfo
)

func init() {
	for sr := 0; sr < 12; sr++ {
		longInfo[sr] = FrameInfo{
			NumWin:     1,
			CoefPerWin: LongWindow,
			SFBPerWin:  len(sfbTopLongWindow[sr]),
			WinSFBTop:  sfbTopLongWindow[sr],
		}
		shortInfo[sr] = FrameInfo{
			NumWin:     NumShortWindows,
			CoefPerWin: ShortWindow,
			SFBPerWin:  len(sfbTopShortWindow[sr]),
			WinSFBTop:  sfbTopShortWindow[sr],
		}
	}
}

// WinMap returns the FrameInfo for a window sequence at the given sample
// rate index. Long-start and long-stop frames share the long layout.
//
// Ported from: winmap[] selection in aacdec/huffman.cpp (huffdecode)
func WinMap(ws WindowSequence, srIndex uint8) *FrameInfo {
	if srIndex >= 12 {
		return nil
	}
	if ws == EightShortSequence {
		return &shortInfo[srIndex]
	}
	return &longInfo[srIndex]
}
