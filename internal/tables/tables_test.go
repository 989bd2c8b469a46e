package tables

import "testing"

func TestBandTops_CoverWholeWindow(t *testing.T) {
	for sr := uint8(0); sr < 12; sr++ {
		long := WinMap(OnlyLongSequence, sr)
		if got := long.WinSFBTop[long.SFBPerWin-1]; got != LongWindow {
			t.Errorf("sr %d long: last top %d, want %d", sr, got, LongWindow)
		}
		short := WinMap(EightShortSequence, sr)
		if got := short.WinSFBTop[short.SFBPerWin-1]; got != ShortWindow {
			t.Errorf("sr %d short: last top %d, want %d", sr, got, ShortWindow)
		}
	}
}

func TestBandTops_StrictlyIncreasing(t *testing.T) {
	for sr := uint8(0); sr < 12; sr++ {
		for _, fi := range []*FrameInfo{WinMap(OnlyLongSequence, sr), WinMap(EightShortSequence, sr)} {
			prev := int16(0)
			for b, top := range fi.WinSFBTop {
				if top <= prev {
					t.Errorf("sr %d: band %d top %d not above %d", sr, b, top, prev)
				}
				prev = top
			}
			if fi.SFBPerWin > MaxBands {
				t.Errorf("sr %d: %d bands exceeds MaxBands", sr, fi.SFBPerWin)
			}
		}
	}
}

func TestWinMap_BlockTypes(t *testing.T) {
	// Start and stop frames share the long layout.
	for _, ws := range []WindowSequence{OnlyLongSequence, LongStartSequence, LongStopSequence} {
		fi := WinMap(ws, 3)
		if fi.NumWin != 1 || fi.CoefPerWin != LongWindow {
			t.Errorf("ws %d: got %d windows of %d coefficients", ws, fi.NumWin, fi.CoefPerWin)
		}
	}
	fi := WinMap(EightShortSequence, 3)
	if fi.NumWin != NumShortWindows || fi.CoefPerWin != ShortWindow {
		t.Errorf("short: got %d windows of %d coefficients", fi.NumWin, fi.CoefPerWin)
	}
	if WinMap(OnlyLongSequence, 12) != nil {
		t.Error("reserved sample rate index returned a FrameInfo")
	}
}

func TestKnownBandCounts(t *testing.T) {
	// Spot checks against the ISO tables.
	cases := []struct {
		sr        uint8
		ws        WindowSequence
		wantBands int
	}{
		{3, OnlyLongSequence, 49}, // 48kHz
		{4, OnlyLongSequence, 49}, // 44.1kHz
		{5, OnlyLongSequence, 51}, // 32kHz
		{3, EightShortSequence, 14},
		{6, EightShortSequence, 15},
		{11, OnlyLongSequence, 40}, // 8kHz
	}
	for _, c := range cases {
		if got := WinMap(c.ws, c.sr).SFBPerWin; got != c.wantBands {
			t.Errorf("sr %d ws %d: %d bands, want %d", c.sr, c.ws, got, c.wantBands)
		}
	}
}

func TestSampleRateRoundTrip(t *testing.T) {
	for sr := uint8(0); sr < 12; sr++ {
		rate := SampleRate(sr)
		if rate == 0 {
			t.Fatalf("index %d: zero rate", sr)
		}
		if got := SRIndex(rate); got != sr {
			t.Errorf("SRIndex(%d): got %d, want %d", rate, got, sr)
		}
	}
	if SampleRate(13) != 0 {
		t.Error("reserved index returned a rate")
	}
}
