// Package syntax parses the AAC syntactic elements: channel streams,
// section and scalefactor data, grouping, masks, TNS/LTP side info and
// the stream headers.
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Scalefactor numeric bounds.
// Ported from: TEXP and the scalefactor checks in aacdec/hufffac.cpp
const (
	TEXP        = 128 // valid scalefactors are [0, 2*TEXP)
	SFOffset    = 100 // subtracted before converting a scalefactor to a scale
	NoiseOffset = 90  // initial noise energy is global_gain - NoiseOffset

	// MaxSections bounds the section list: every band its own section,
	// plus one synthetic zero section per group.
	MaxSections = tables.MaxBands + tables.MaxGroups

	MaxLTPSFB = 40 // bands carrying ltp_long_used flags
)

// ElementID is the 3-bit syntactic element tag.
// Ported from: the id_syn_ele switch in aacdec/huffdecode.cpp
type ElementID uint8

const (
	IDSCE ElementID = iota // single channel element
	IDCPE                  // channel pair element
	IDCCE                  // coupling channel (unsupported)
	IDLFE                  // low frequency effects (unsupported)
	IDDSE                  // data stream element
	IDPCE                  // program config element
	IDFIL                  // fill element
	IDEND                  // terminator
)

// LenSEID is the bit width of an element id tag.
const LenSEID = 3

// SectInfo is one run of scalefactor bands sharing a Huffman codebook.
// End is the cumulative band index (over groups) just past the run.
//
// Ported from: SectInfo in aacdec/s_sectinfo.h
type SectInfo struct {
	Book uint8
	End  int
}

// LTPInfo is the parsed long-term-prediction side info for one channel.
//
// Ported from: LT_PRED_STATUS in aacdec/s_lt_pred_status.h
type LTPInfo struct {
	DataPresent bool
	Lag         int
	WeightIndex int // 3-bit index into the prediction weight table

	// Long windows: per-sfb prediction flags up to min(max_sfb, MaxLTPSFB).
	LongUsed [MaxLTPSFB]bool

	// Short windows: per-window use flags and optional lag corrections.
	ShortUsed       [tables.NumShortWindows]bool
	ShortLagPresent [tables.NumShortWindows]bool
	ShortLag        [tables.NumShortWindows]int
}

// TNS filter limits for the LC/LTP profiles.
// Ported from: TNS_MAX_ORDER and the per-window caps in aacdec/get_tns.cpp
const (
	TNSMaxOrder      = 20
	TNSMaxOrderLong  = 12
	TNSMaxOrderShort = 7
	TNSMaxFilters    = 3
)

// TNSFilter is one temporal-noise-shaping filter: a band range, an LPC
// order and quantized reflection coefficient indices. The coefficient
// indices are dequantized by the spectrum stage.
type TNSFilter struct {
	StartBand int
	StopBand  int
	Order     int
	Downward  bool
	CoefRes   int // 3 or 4 bit coefficient resolution
	Compress  bool
	Coef      [TNSMaxOrder]int8
}

// TNSData is the per-channel TNS side info: up to TNSMaxFilters filters
// for each window.
type TNSData struct {
	Present bool
	NumFilt [tables.NumShortWindows]int
	Filters [tables.NumShortWindows][TNSMaxFilters]TNSFilter
}

// PulseData is the parsed pulse_data() payload: up to four impulse
// corrections to quantized coefficients, long windows only.
//
// Ported from: s_pulseinfo.h
type PulseData struct {
	Present   bool
	NumPulse  int
	StartBand int
	Offset    [4]int
	Amp       [4]int
}

// ICSInfo is the decoded ics_info() plus the grouping tables derived
// from it. It selects the immutable FrameInfo for the block type and
// adds the per-frame group structure every downstream stage walks.
type ICSInfo struct {
	WindowSequence tables.WindowSequence
	WindowShape    uint8
	MaxSFB         int

	Frame *tables.FrameInfo

	// Grouping. Long frames have one group of one window; short frames
	// get these from the 7 grouping bits.
	NumGroups int
	GroupLen  [tables.MaxGroups]int // windows per group; sums to NumWin

	// groupBase[g] is the coefficient offset of group g's first band in
	// the grouped layout: earlier groups occupy GroupLen*CoefPerWin
	// coefficients each.
	groupBase [tables.MaxGroups]int
}

// DeriveGroups computes the group base offsets in the grouped
// coefficient layout from NumGroups and GroupLen. The window counts
// must tile the frame exactly; this cannot fail for grouping bits
// expanded by ics_info but is checked rather than inherited as
// undefined behavior.
//
// Ported from: calc_gsfb_table() in aacdec/calc_gsfb_table.cpp
func (ics *ICSInfo) DeriveGroups() error {
	sum := 0
	for g := 0; g < ics.NumGroups; g++ {
		ics.groupBase[g] = sum * ics.Frame.CoefPerWin
		sum += ics.GroupLen[g]
	}
	if sum != ics.Frame.NumWin {
		return ErrBadGrouping
	}
	return nil
}

// TotalSFB is the number of (group, sfb) coordinates in the frame:
// every group spans the full per-window band count, with bands at or
// above MaxSFB zero-coded.
func (ics *ICSInfo) TotalSFB() int {
	return ics.NumGroups * ics.Frame.SFBPerWin
}

// BandRange returns the coefficient span [start, end) of band sfb of
// group g in the grouped layout. For short frames a band covers
// GroupLen[g] interleaved windows, so its width is the base band width
// times the group's window count; this is the calc_gsfb_table mapping.
//
// Ported from: calc_gsfb_table() in aacdec/calc_gsfb_table.cpp
func (ics *ICSInfo) BandRange(g, sfb int) (int, int) {
	top := ics.Frame.WinSFBTop
	prev := 0
	if sfb > 0 {
		prev = int(top[sfb-1])
	}
	l := ics.GroupLen[g]
	return ics.groupBase[g] + prev*l, ics.groupBase[g] + int(top[sfb])*l
}

// ChannelStream is the per-channel decode state for one frame's
// individual_channel_stream: side info, the section map and decoded
// scalefactors. Spectral coefficients live in the caller-owned buffer
// handed to the spectral decode.
//
// Ported from: the per-channel fields of tDec_Int_Chan in
// aacdec/s_tdec_int_chan.h (the shared scratch overlay of the reference
// is replaced by plain fields)
type ChannelStream struct {
	GlobalGain int
	Info       ICSInfo

	Sect   [MaxSections]SectInfo
	NumSec int

	// SFBCB and Factors are indexed by g*SFBPerWin + sfb.
	SFBCB   [tables.MaxBands]uint8
	Factors [tables.MaxBands]int16

	TNS   TNSData
	Pulse PulseData
	LTP   LTPInfo
}

// CodebookAt returns the codebook covering (group, sfb).
func (cs *ChannelStream) CodebookAt(g, sfb int) uint8 {
	return cs.SFBCB[g*cs.Info.Frame.SFBPerWin+sfb]
}

// FactorAt returns the decoded scalefactor (or intensity position or
// noise energy, per the band's codebook) at (group, sfb).
func (cs *ChannelStream) FactorAt(g, sfb int) int {
	return int(cs.Factors[g*cs.Info.Frame.SFBPerWin+sfb])
}
