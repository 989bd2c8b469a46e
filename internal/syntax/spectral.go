// internal/syntax/spectral.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/huffman"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// ParseSpectralData decodes spectral_data() into coef using the grouped
// layout: within group g, band sfb occupies a contiguous run covering
// all windows of the group. Bands whose codebook carries no spectral
// payload (zero, noise, intensity) are cleared here; their content is
// synthesized later.
//
// coef must hold tables.LongWindow values.
//
// Ported from: huffspec_fxp() in aacdec/huffspec_fxp.cpp
func ParseSpectralData(r *bits.Reader, cs *ChannelStream, coef []int32) error {
	ics := &cs.Info
	sfbPerWin := ics.Frame.SFBPerWin

	band := 0
	for s := 0; s < cs.NumSec; s++ {
		sect := cs.Sect[s]
		payload := sect.Book >= 1 && sect.Book <= huffman.EscHCB
		for ; band < sect.End; band++ {
			g := band / sfbPerWin
			sfb := band % sfbPerWin
			start, end := ics.BandRange(g, sfb)
			if !payload {
				for i := start; i < end; i++ {
					coef[i] = 0
				}
				continue
			}
			dim := huffman.Dim(int(sect.Book))
			for i := start; i < end; i += dim {
				if err := huffman.DecodeSpectrum(int(sect.Book), r, coef[i:i+dim]); err != nil {
					return err
				}
			}
		}
	}

	// The band-top tables end at CoefPerWin, so the sections (including
	// the synthetic zero sections above max_sfb) tile the full frame and
	// no separate tail clear is needed.
	return nil
}

// ApplyPulse adds the decoded pulse amplitudes to the quantized
// coefficients, flipping the sign where the underlying value is
// negative. Only meaningful for long windows.
//
// Ported from: pulse_nc() in aacdec/pulse_nc.cpp
func ApplyPulse(cs *ChannelStream, coef []int32) error {
	if !cs.Pulse.Present {
		return nil
	}
	ics := &cs.Info
	if ics.WindowSequence == tables.EightShortSequence {
		return ErrPulseInShort
	}
	if cs.Pulse.StartBand >= ics.Frame.SFBPerWin {
		return ErrPulseBand
	}

	k := 0
	if cs.Pulse.StartBand > 0 {
		k = int(ics.Frame.WinSFBTop[cs.Pulse.StartBand-1])
	}
	for p := 0; p <= cs.Pulse.NumPulse; p++ {
		k += cs.Pulse.Offset[p]
		if k >= tables.LongWindow {
			return ErrPulseBand
		}
		if coef[k] < 0 {
			coef[k] -= int32(cs.Pulse.Amp[p])
		} else {
			coef[k] += int32(cs.Pulse.Amp[p])
		}
	}
	return nil
}
