// internal/syntax/pulse.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
)

// ParsePulseData decodes pulse_data(): up to four single-coefficient
// corrections addressed by offsets from a starting band.
//
// Ported from: get_pulse_data() in aacdec/get_pulse_data.cpp
func ParsePulseData(r *bits.Reader, pd *PulseData) {
	pd.NumPulse = int(r.GetBits(2))
	pd.StartBand = int(r.GetBits(6))
	for p := 0; p <= pd.NumPulse; p++ {
		pd.Offset[p] = int(r.GetBits(5))
		pd.Amp[p] = int(r.GetBits(4))
	}
}
