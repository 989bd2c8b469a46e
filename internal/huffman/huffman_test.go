package huffman

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/go-aacfxp/internal/bits"
)

// writeCodeword appends symbol's codeword from a packed table to w.
func writeCodeword(t *testing.T, w *bitio.Writer, codes []uint32, sym int) {
	t.Helper()
	c := codes[sym]
	require.NoError(t, w.WriteBits(uint64(c>>5), uint8(c&31)))
}

func packedTables() map[int][]uint32 {
	return map[int][]uint32{
		1: huffCodes1[:], 2: huffCodes2[:], 3: huffCodes3[:], 4: huffCodes4[:],
		5: huffCodes5[:], 6: huffCodes6[:], 7: huffCodes7[:], 8: huffCodes8[:],
		9: huffCodes9[:], 10: huffCodes10[:], 11: huffCodes11[:],
	}
}

// TestRoundTrip_AllSpectralBooks encodes every codeword of every spectral
// book and checks the decoder returns the original symbol index and
// consumes exactly the codeword's length.
func TestRoundTrip_AllSpectralBooks(t *testing.T) {
	for book, codes := range packedTables() {
		for sym := range codes {
			var buf bytes.Buffer
			w := bitio.NewWriter(&buf)
			writeCodeword(t, w, codes, sym)
			require.NoError(t, w.Close())

			r := bits.NewReader(buf.Bytes())
			packed := DecodeCW(book, r)
			require.Equal(t, sym, packed>>16, "book %d symbol %d", book, sym)
			require.Equal(t, uint32(codes[sym]&31), uint32(packed&0xffff),
				"book %d symbol %d consumed bits", book, sym)
			require.Equal(t, uint32(codes[sym]&31), r.UsedBits(),
				"book %d symbol %d cursor", book, sym)
		}
	}
}

func TestRoundTrip_ScaleFactorBook(t *testing.T) {
	for sym := range huffCodesSF {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		writeCodeword(t, w, huffCodesSF[:], sym)
		require.NoError(t, w.Close())

		r := bits.NewReader(buf.Bytes())
		require.Equal(t, sym-60, DecodeScaleFactor(r), "symbol %d", sym)
		require.Equal(t, uint32(huffCodesSF[sym]&31), r.UsedBits())
	}
}

// TestTables_PrefixFreeAndComplete walks each packed table's codewords
// sorted by left-justified value: consecutive ranges must tile the whole
// peek space with no gap or overlap.
func TestTables_PrefixFreeAndComplete(t *testing.T) {
	check := func(name string, codes []uint32) {
		var maxLen uint
		for _, c := range codes {
			if n := uint(c & 31); n > maxLen {
				maxLen = n
			}
		}
		cb := buildCodebook(codes, 1, 0, false)
		require.Equal(t, maxLen, cb.maxLen, name)
		var end uint64
		for i := range cb.first {
			require.Equal(t, end, uint64(cb.first[i]), "%s: gap/overlap at entry %d", name, i)
			end += uint64(1) << (maxLen - uint(cb.nbits[i]))
		}
		require.Equal(t, uint64(1)<<maxLen, end, "%s: code not complete", name)
	}
	for book, codes := range packedTables() {
		check(spectralBookName(book), codes)
	}
	check("sf", huffCodesSF[:])
}

func spectralBookName(book int) string {
	return string(rune('0'+book/10)) + string(rune('0'+book%10))
}

func TestDecodeSpectrum_SignedQuad(t *testing.T) {
	// Book 1, symbol for (w,x,y,z) = (1,-1,0,1): digits 2,0,1,2 base 3.
	sym := ((2*3+0)*3+1)*3 + 2
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeCodeword(t, w, huffCodes1[:], sym)
	require.NoError(t, w.Close())

	var out [4]int32
	r := bits.NewReader(buf.Bytes())
	require.NoError(t, DecodeSpectrum(1, r, out[:]))
	require.Equal(t, [4]int32{1, -1, 0, 1}, out)
}

func TestDecodeSpectrum_UnsignedPairSigns(t *testing.T) {
	// Book 7, magnitudes (3, 2): sign bits follow the codeword, one per
	// non-zero value, 1 meaning negative.
	sym := 3*8 + 2
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeCodeword(t, w, huffCodes7[:], sym)
	require.NoError(t, w.WriteBits(0b10, 2)) // -3, +2
	require.NoError(t, w.Close())

	var out [2]int32
	r := bits.NewReader(buf.Bytes())
	require.NoError(t, DecodeSpectrum(7, r, out[:]))
	require.Equal(t, [2]int32{-3, 2}, out)
}

func TestDecodeSpectrum_ZeroMagnitudeHasNoSignBit(t *testing.T) {
	// Book 7, magnitudes (0, 1): only the non-zero value gets a sign bit.
	sym := 0*8 + 1
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeCodeword(t, w, huffCodes7[:], sym)
	require.NoError(t, w.WriteBits(1, 1))
	require.NoError(t, w.Close())

	var out [2]int32
	r := bits.NewReader(buf.Bytes())
	require.NoError(t, DecodeSpectrum(7, r, out[:]))
	require.Equal(t, [2]int32{0, -1}, out)
	codewordLen := uint32(huffCodes7[sym] & 31)
	require.Equal(t, codewordLen+1, r.UsedBits(), "exactly one sign bit consumed")
}

func TestDecodeSpectrum_Escape(t *testing.T) {
	// Book 11, magnitudes (16, 1): 16 marks an escape. After the codeword
	// and both sign bits, the escape tail is N-4 ones, a zero, then N
	// magnitude bits; here N=6 for the value (1<<6)|17 = 81.
	sym := 16*17 + 1
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeCodeword(t, w, huffCodes11[:], sym)
	require.NoError(t, w.WriteBits(0b01, 2)) // +escape, -1
	require.NoError(t, w.WriteBits(0b110, 3))
	require.NoError(t, w.WriteBits(17, 6))
	require.NoError(t, w.Close())

	var out [2]int32
	r := bits.NewReader(buf.Bytes())
	require.NoError(t, DecodeSpectrum(11, r, out[:]))
	require.Equal(t, [2]int32{81, -1}, out)
}

func TestDecodeSpectrum_EscapeOverflow(t *testing.T) {
	// Twelve or more leading ones would put the magnitude width at 16+;
	// the decoder must reject it rather than shift out of range.
	sym := 16*17 + 16
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeCodeword(t, w, huffCodes11[:], sym)
	require.NoError(t, w.WriteBits(0, 2))
	require.NoError(t, w.WriteBits(0xFFFF, 16))
	require.NoError(t, w.Close())

	var out [2]int32
	r := bits.NewReader(buf.Bytes())
	require.ErrorIs(t, DecodeSpectrum(11, r, out[:]), ErrEscapeSequence)
}

// TestKnownCodewords checks codewords against the values printed in the
// ISO/IEC 14496-3 codebook tables. Unsigned books append one sign bit
// per non-zero magnitude.
func TestKnownCodewords(t *testing.T) {
	cases := []struct {
		book  int
		data  []byte
		nbits uint32
		want  []int32
	}{
		{1, []byte{0x00}, 1, []int32{0, 0, 0, 0}},
		{6, []byte{0x00}, 4, []int32{0, 0}},
		// Book 8 favors (1,1) over (0,0): 000 plus two sign bits is
		// (+1,+1), while (0,0) sits at the five-bit codeword 01110.
		{8, []byte{0x00}, 5, []int32{1, 1}},
		{8, []byte{0x70}, 5, []int32{0, 0}},
	}
	for _, c := range cases {
		r := bits.NewReader(c.data)
		out := make([]int32, len(c.want))
		require.NoError(t, DecodeSpectrum(c.book, r, out))
		require.Equal(t, c.want, out, "book %d", c.book)
		require.Equal(t, c.nbits, r.UsedBits(), "book %d bits", c.book)
	}
}

// TestScaleFactor_KnownCodewords pins the short end of the scalefactor
// book: 0 is delta 0, 100 is delta -1, 1010 is delta +1.
func TestScaleFactor_KnownCodewords(t *testing.T) {
	cases := []struct {
		data  []byte
		nbits uint32
		delta int
	}{
		{[]byte{0x00}, 1, 0},
		{[]byte{0x80}, 3, -1},
		{[]byte{0xa0}, 4, 1},
		{[]byte{0xb0}, 4, -2},
		{[]byte{0xc0}, 4, 2},
	}
	for _, c := range cases {
		r := bits.NewReader(c.data)
		require.Equal(t, c.delta, DecodeScaleFactor(r), "delta %d", c.delta)
		require.Equal(t, c.nbits, r.UsedBits(), "delta %d bits", c.delta)
	}
}
