package tables

// sampleRates maps the 4-bit sampling_frequency_index to Hz.
// Indices 12-15 are reserved.
//
// Ported from: samp_rate_info in aacdec/tns_inv_filter.cpp sibling
// table aacdec/pvmp4audiodecoderinitlibrary.cpp
var sampleRates = [16]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
	7350, 0, 0, 0,
}

// SampleRate returns the rate in Hz for a sampling frequency index,
// or 0 for reserved indices.
func SampleRate(srIndex uint8) uint32 {
	if srIndex >= 16 {
		return 0
	}
	return sampleRates[srIndex]
}

// SRIndex returns the sampling frequency index for a rate, using the
// threshold ranges defined by the standard so nearby rates map to the
// canonical index.
func SRIndex(sampleRate uint32) uint8 {
	switch {
	case sampleRate >= 92017:
		return 0
	case sampleRate >= 75132:
		return 1
	case sampleRate >= 55426:
		return 2
	case sampleRate >= 46009:
		return 3
	case sampleRate >= 37566:
		return 4
	case sampleRate >= 27713:
		return 5
	case sampleRate >= 23004:
		return 6
	case sampleRate >= 18783:
		return 7
	case sampleRate >= 13856:
		return 8
	case sampleRate >= 11502:
		return 9
	case sampleRate >= 9391:
		return 10
	default:
		return 11
	}
}
