// Band top tables for short (128-coefficient) windows.
//
// Ported from: aacdec/sfb.cpp (sfb_bins_short per sampling rate)
package tables

// sfbTopShort96: 12 bands.
var sfbTopShort96 = []int16{
	4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128,
}

// sfbTopShort64: 12 bands.
var sfbTopShort64 = []int16{
	4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128,
}

// sfbTopShort48: 14 bands.
var sfbTopShort48 = []int16{
	4, 8, 12, 16, 20, 28, 36, 44, 56, 68, 80, 96, 112, 128,
}

// sfbTopShort24: 15 bands.
var sfbTopShort24 = []int16{
	4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 64, 76, 92, 108, 128,
}

// sfbTopShort16: 15 bands.
var sfbTopShort16 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 40, 48, 60, 72, 88, 108, 128,
}

// sfbTopShort8: 15 bands.
var sfbTopShort8 = []int16{
	4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 60, 72, 88, 108, 128,
}

// sfbTopShortWindow maps sample rate index to the short-window band tops.
var sfbTopShortWindow = [12][]int16{
	sfbTopShort96, // 96000
	sfbTopShort96, // 88200
	sfbTopShort64, // 64000
	sfbTopShort48, // 48000
	sfbTopShort48, // 44100
	sfbTopShort48, // 32000
	sfbTopShort24, // 24000
	sfbTopShort24, // 22050
	sfbTopShort16, // 16000
	sfbTopShort16, // 12000
	sfbTopShort16, // 11025
	sfbTopShort8,  // 8000
}
