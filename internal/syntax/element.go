// internal/syntax/element.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// parseICS decodes one individual_channel_stream(). When commonWindow
// is set the caller has already filled cs.Info and the LTP side info
// from the shared ics_info.
//
// Ported from: getics() in aacdec/getics.cpp
func parseICS(r *bits.Reader, cs *ChannelStream, coef []int32, srIndex uint8, objectType int, commonWindow bool) error {
	cs.GlobalGain = int(r.GetBits(8))

	if !commonWindow {
		if err := ParseICSInfo(r, cs, srIndex, objectType, false, nil); err != nil {
			return err
		}
	}

	if err := ParseSectionData(r, cs); err != nil {
		return err
	}
	if err := ParseScaleFactors(r, cs); err != nil {
		return err
	}

	cs.Pulse.Present = r.Get1Bit() != 0
	if cs.Pulse.Present {
		if cs.Info.WindowSequence == tables.EightShortSequence {
			return ErrPulseInShort
		}
		ParsePulseData(r, &cs.Pulse)
	}

	cs.TNS.Present = false
	if r.Get1Bit() != 0 {
		if err := ParseTNSData(r, &cs.Info, &cs.TNS); err != nil {
			return err
		}
	}

	if r.Get1Bit() != 0 {
		// gain_control_data is SSR-only
		return ErrUnsupportedObject
	}

	if err := ParseSpectralData(r, cs, coef); err != nil {
		return err
	}
	if err := ApplyPulse(cs, coef); err != nil {
		return err
	}
	if r.Overrun() {
		return ErrSectionBoundary
	}
	return nil
}

// ParseSCE decodes a single_channel_element and returns its instance
// tag.
//
// Ported from: the SCE arm of huffdecode() in aacdec/huffdecode.cpp
func ParseSCE(r *bits.Reader, cs *ChannelStream, coef []int32, srIndex uint8, objectType int) (uint8, error) {
	tag := uint8(r.GetBits(4))
	cs.LTP.DataPresent = false
	if err := parseICS(r, cs, coef, srIndex, objectType, false); err != nil {
		return tag, err
	}
	return tag, nil
}

// ParseCPE decodes a channel_pair_element into left and right. When
// common_window is set the shared ics_info (including the right
// channel's LTP side info) and the mid/side mask are decoded once and
// mirrored into the right channel.
//
// Ported from: the CPE arm of huffdecode() in aacdec/huffdecode.cpp
func ParseCPE(r *bits.Reader, left, right *ChannelStream, coefL, coefR []int32, mask *[tables.MaxBands]bool, srIndex uint8, objectType int) (maskPresent int, err error) {
	r.GetBits(4) // element_instance_tag

	commonWindow := r.Get1Bit() != 0
	left.LTP.DataPresent = false
	right.LTP.DataPresent = false
	if commonWindow {
		if err = ParseICSInfo(r, left, srIndex, objectType, true, &right.LTP); err != nil {
			return 0, err
		}
		maskPresent, err = ParseMask(r, &left.Info, mask)
		if err != nil {
			return 0, err
		}
		right.Info = left.Info
	} else {
		for i := range mask {
			mask[i] = false
		}
	}

	if err = parseICS(r, left, coefL, srIndex, objectType, commonWindow); err != nil {
		return 0, err
	}
	if err = parseICS(r, right, coefR, srIndex, objectType, commonWindow); err != nil {
		return 0, err
	}
	return maskPresent, nil
}
