// internal/syntax/ics_info.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Audio object types this decoder recognizes.
// Ported from: tMP4AudioObjectType in aacdec/e_mp4ff_const.h
const (
	ObjectTypeMain = 1
	ObjectTypeLC   = 2
	ObjectTypeSSR  = 3
	ObjectTypeLTP  = 4
)

// ParseICSInfo decodes ics_info(): window sequence and shape, max_sfb,
// and for eight-short sequences the grouping bits. The derived FrameInfo
// and group tables are left in cs.Info for every later stage.
//
// LTP side info is parsed when the object type carries it; a set
// predictor_data_present bit on any other object type fails the frame
// (MAIN prediction is not supported).
//
// Ported from: get_ics_info() in aacdec/get_ics_info.cpp
func ParseICSInfo(r *bits.Reader, cs *ChannelStream, srIndex uint8, objectType int, commonWindow bool, ltpRight *LTPInfo) error {
	ics := &cs.Info

	if r.Get1Bit() != 0 {
		return ErrReservedBit
	}

	ics.WindowSequence = tables.WindowSequence(r.GetBits(2))
	ics.WindowShape = uint8(r.Get1Bit())
	ics.Frame = tables.WinMap(ics.WindowSequence, srIndex)

	if ics.WindowSequence == tables.EightShortSequence {
		ics.MaxSFB = int(r.GetBits(4))
		grouping := r.GetBits(7)
		getGroup(ics, grouping)
		if err := ics.DeriveGroups(); err != nil {
			return err
		}
	} else {
		ics.MaxSFB = int(r.GetBits(6))
		ics.NumGroups = 1
		ics.GroupLen[0] = 1
		ics.groupBase[0] = 0

		predictorDataPresent := r.Get1Bit() != 0
		cs.LTP.DataPresent = false
		if ltpRight != nil {
			ltpRight.DataPresent = false
		}
		if predictorDataPresent {
			if objectType != ObjectTypeLTP {
				return ErrPredictorData
			}
			cs.LTP.DataPresent = r.Get1Bit() != 0
			if cs.LTP.DataPresent {
				if err := ParseLTPData(r, ics, &cs.LTP); err != nil {
					return err
				}
			}
			if commonWindow {
				ltpRight.DataPresent = r.Get1Bit() != 0
				if ltpRight.DataPresent {
					if err := ParseLTPData(r, ics, ltpRight); err != nil {
						return err
					}
				}
			}
		}
	}

	if ics.MaxSFB > ics.Frame.SFBPerWin {
		return ErrMaxSFB
	}
	return nil
}

// getGroup expands the 7 grouping bits: bit i clear starts a new group
// at window i+1, bit i set extends the current group.
//
// Ported from: getgroup() in aacdec/getgroup.cpp
func getGroup(ics *ICSInfo, grouping uint32) {
	ics.NumGroups = 1
	ics.GroupLen[0] = 1
	for w := 1; w < tables.NumShortWindows; w++ {
		if grouping&(1<<uint(tables.NumShortWindows-1-w)) == 0 {
			ics.GroupLen[ics.NumGroups] = 1
			ics.NumGroups++
		} else {
			ics.GroupLen[ics.NumGroups-1]++
		}
	}
}

// ParseLTPData reads one ltp_data() payload: an 11-bit lag, a 3-bit
// weight index, then per-band or per-window prediction flags.
//
// Ported from: get_ltp_data-equivalent parsing in aacdec/get_ics_info.cpp
func ParseLTPData(r *bits.Reader, ics *ICSInfo, ltp *LTPInfo) error {
	ltp.Lag = int(r.GetBits(11))
	if ltp.Lag > 2*tables.LongWindow {
		return ErrLTPLag
	}
	ltp.WeightIndex = int(r.GetBits(3))

	if ics.WindowSequence == tables.EightShortSequence {
		for w := 0; w < tables.NumShortWindows; w++ {
			ltp.ShortUsed[w] = r.Get1Bit() != 0
			if ltp.ShortUsed[w] {
				ltp.ShortLagPresent[w] = r.Get1Bit() != 0
				if ltp.ShortLagPresent[w] {
					ltp.ShortLag[w] = int(r.GetBits(4))
				}
			}
		}
		return nil
	}

	last := ics.MaxSFB
	if last > MaxLTPSFB {
		last = MaxLTPSFB
	}
	for sfb := 0; sfb < last; sfb++ {
		ltp.LongUsed[sfb] = r.Get1Bit() != 0
	}
	return nil
}
