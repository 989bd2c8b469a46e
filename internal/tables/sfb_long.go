// Band top tables for long (1024-coefficient) windows. Values are
// cumulative: band b ends at entry b. The layouts are the ISO/IEC
// 14496-3 scalefactor band tables.
//
// Ported from: aacdec/sfb.cpp (sfb_bins_long per sampling rate)
package tables

// sfbTopLong96: 41 bands.
var sfbTopLong96 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 64,
	72, 80, 88, 96, 108, 120, 132, 144, 156, 172, 188, 212, 240, 276, 320,
	384, 448, 512, 576, 640, 704, 768, 832, 896, 960, 1024,
}

// sfbTopLong64: 47 bands.
var sfbTopLong64 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 64,
	72, 80, 88, 100, 112, 124, 140, 156, 172, 192, 216, 240, 268, 304, 344,
	384, 424, 464, 504, 544, 584, 624, 664, 704, 744, 784, 824, 864, 904, 944,
	984, 1024,
}

// sfbTopLong48: 49 bands.
var sfbTopLong48 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72, 80,
	88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292, 320, 352,
	384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736, 768, 800, 832,
	864, 896, 928, 1024,
}

// sfbTopLong32: 51 bands.
var sfbTopLong32 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72, 80,
	88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292, 320, 352,
	384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736, 768, 800, 832,
	864, 896, 928, 960, 992, 1024,
}

// sfbTopLong24: 47 bands.
var sfbTopLong24 = []int16{
	4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 52, 60, 68, 76,
	84, 92, 100, 108, 116, 124, 136, 148, 160, 172, 188, 204, 220, 240, 260,
	284, 308, 336, 364, 396, 432, 468, 508, 552, 600, 652, 704, 768, 832, 896,
	960, 1024,
}

// sfbTopLong16: 43 bands.
var sfbTopLong16 = []int16{
	8, 16, 24, 32, 40, 48, 56, 64, 72, 80, 88, 100, 112, 124, 136,
	148, 160, 172, 184, 196, 212, 228, 244, 260, 280, 300, 320, 344, 368, 396,
	424, 456, 492, 532, 572, 616, 664, 716, 772, 832, 896, 960, 1024,
}

// sfbTopLong8: 40 bands.
var sfbTopLong8 = []int16{
	12, 24, 36, 48, 60, 72, 84, 96, 108, 120, 132, 144, 156, 172, 188,
	204, 220, 236, 252, 268, 288, 308, 328, 348, 372, 396, 420, 448, 476, 508,
	544, 580, 620, 664, 712, 764, 820, 880, 944, 1024,
}

// sfbTopLongWindow maps sample rate index to the long-window band tops.
var sfbTopLongWindow = [12][]int16{
	sfbTopLong96, // 96000
	sfbTopLong96, // 88200
	sfbTopLong64, // 64000
	sfbTopLong48, // 48000
	sfbTopLong48, // 44100
	sfbTopLong32, // 32000
	sfbTopLong24, // 24000
	sfbTopLong24, // 22050
	sfbTopLong16, // 16000
	sfbTopLong16, // 12000
	sfbTopLong16, // 11025
	sfbTopLong8,  // 8000
}
