// Package huffman implements the entropy decoders for spectral
// coefficients and scalefactors.
//
// Each codebook is a flattened binary-search structure: the decoder peeks
// the table's maximum codeword length, locates the matching codeword by
// binary search over the left-justified codeword boundaries, rewinds the
// bits the codeword did not consume and returns the decoded index packed
// with the consumed length. One search helper serves all twelve tables.
//
// Ported from: decode_huff_cw_tab1..tab11 and decode_huff_scl in
// aacdec/pv_huffman.cpp, restructured over the per-symbol codeword
// arrays in tables_data.go.
package huffman

import (
	"errors"

	"github.com/llehouerou/go-aacfxp/internal/bits"
)

// Codebook indices as they appear in section data.
// Ported from: aacdec/e_huffman_const.h
const (
	ZeroHCB       = 0
	FirstPairHCB  = 5
	EscHCB        = 11
	ReservedHCB   = 12
	NoiseHCB      = 13
	IntensityHCB2 = 14
	IntensityHCB  = 15
)

// ErrEscapeSequence indicates a malformed escape tail after a codebook-11
// codeword.
var ErrEscapeSequence = errors.New("huffman: invalid escape sequence")

// codebook is the decode-side view of one Huffman table. first/nbits/syms
// are parallel arrays sorted by left-justified codeword value, so a
// binary search over first locates the codeword containing any peeked
// maxLen-bit value.
type codebook struct {
	maxLen uint  // widest codeword, also the peek width
	dim    int   // values per codeword (4, 2, or 1)
	mod    int32 // per-dimension radix when unpacking packed indices
	lav    int32 // largest absolute value (signed books)
	signed bool  // false: magnitudes with separate sign bits

	first []uint32 // left-justified first value of each codeword
	nbits []uint8
	syms  []uint16
}

// buildCodebook expands a packed per-symbol codeword array into the
// sorted search arrays. Runs once at package init; the decode path does
// not allocate.
func buildCodebook(codes []uint32, dim int, lav int32, signed bool) *codebook {
	cb := &codebook{dim: dim, lav: lav, signed: signed}
	if signed {
		cb.mod = 2*lav + 1
	} else {
		cb.mod = lav + 1
	}
	for _, c := range codes {
		if n := uint(c & 31); n > cb.maxLen {
			cb.maxLen = n
		}
	}
	n := len(codes)
	cb.first = make([]uint32, n)
	cb.nbits = make([]uint8, n)
	cb.syms = make([]uint16, n)

	type entry struct {
		first uint32
		bits  uint8
		sym   uint16
	}
	entries := make([]entry, n)
	for sym, c := range codes {
		bits := uint(c & 31)
		entries[sym] = entry{
			first: (c >> 5) << (cb.maxLen - bits),
			bits:  uint8(bits),
			sym:   uint16(sym),
		}
	}
	// Insertion sort by left-justified value; tables are small and this
	// runs once.
	for i := 1; i < n; i++ {
		e := entries[i]
		j := i - 1
		for j >= 0 && entries[j].first > e.first {
			entries[j+1] = entries[j]
			j--
		}
		entries[j+1] = e
	}
	for i, e := range entries {
		cb.first[i] = e.first
		cb.nbits[i] = e.bits
		cb.syms[i] = e.sym
	}
	return cb
}

// spectralBooks[1..11] are the spectral codebooks; index 0 stays nil
// (ZERO_HCB has no codewords).
var spectralBooks [12]*codebook

// scaleBook is the scalefactor codebook (also used for intensity
// positions and noise energy deltas).
var scaleBook *codebook

func init() {
	spectralBooks[1] = buildCodebook(huffCodes1[:], 4, 1, true)
	spectralBooks[2] = buildCodebook(huffCodes2[:], 4, 1, true)
	spectralBooks[3] = buildCodebook(huffCodes3[:], 4, 2, false)
	spectralBooks[4] = buildCodebook(huffCodes4[:], 4, 2, false)
	spectralBooks[5] = buildCodebook(huffCodes5[:], 2, 4, true)
	spectralBooks[6] = buildCodebook(huffCodes6[:], 2, 4, true)
	spectralBooks[7] = buildCodebook(huffCodes7[:], 2, 7, false)
	spectralBooks[8] = buildCodebook(huffCodes8[:], 2, 7, false)
	spectralBooks[9] = buildCodebook(huffCodes9[:], 2, 12, false)
	spectralBooks[10] = buildCodebook(huffCodes10[:], 2, 12, false)
	spectralBooks[11] = buildCodebook(huffCodes11[:], 2, 16, false)
	scaleBook = buildCodebook(huffCodesSF[:], 1, 0, false)
}

// decodeCW peeks cb.maxLen bits, binary-searches the codeword containing
// the peeked value and rewinds the unconsumed tail. The return value is
// (symbol << 16) | consumedBits, matching the packed convention of the
// reference decoders.
func decodeCW(cb *codebook, r *bits.Reader) int {
	peek := r.GetBits(cb.maxLen)

	lo, hi := 0, len(cb.first)-1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if cb.first[mid] <= peek {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	consumed := uint(cb.nbits[lo])
	r.Rewind(cb.maxLen - consumed)
	return int(cb.syms[lo])<<16 | int(consumed)
}

// DecodeCW decodes one codeword of spectral book 1-11 and returns the
// packed (index << 16) | bits value.
func DecodeCW(book int, r *bits.Reader) int {
	return decodeCW(spectralBooks[book], r)
}

// DecodeScaleFactor decodes one scalefactor codeword and returns the
// DPCM delta in -60..60.
//
// Ported from: decode_huff_scl in aacdec/pv_huffman.cpp
func DecodeScaleFactor(r *bits.Reader) int {
	return (decodeCW(scaleBook, r) >> 16) - 60
}

// Dim returns the dimensionality (values per codeword) of a spectral
// book: 4 below FirstPairHCB, 2 from there up.
func Dim(book int) int {
	if book < FirstPairHCB {
		return 4
	}
	return 2
}

// DecodeSpectrum decodes one codeword of spectral book 1-11 into
// out[0:Dim(book)]. For unsigned books it reads one sign bit per
// non-zero value; for the escape book it then resolves escape-coded
// magnitudes.
//
// Ported from: the per-codebook branches of huffspec_fxp in
// aacdec/huffspec_fxp.cpp
func DecodeSpectrum(book int, r *bits.Reader, out []int32) error {
	cb := spectralBooks[book]
	idx := int32(decodeCW(cb, r) >> 16)

	// Unpack the packed index, most significant digit first.
	div := int32(1)
	for i := 1; i < cb.dim; i++ {
		div *= cb.mod
	}
	for i := 0; i < cb.dim; i++ {
		digit := (idx / div) % cb.mod
		if cb.signed {
			digit -= cb.lav
		}
		out[i] = digit
		div /= cb.mod
	}

	if !cb.signed {
		for i := 0; i < cb.dim; i++ {
			if out[i] != 0 && r.Get1Bit() != 0 {
				out[i] = -out[i]
			}
		}
	}

	if book == EscHCB {
		for i := 0; i < cb.dim; i++ {
			if out[i] == 16 || out[i] == -16 {
				v, err := getEscape(r)
				if err != nil {
					return err
				}
				if out[i] < 0 {
					v = -v
				}
				out[i] = v
			}
		}
	}
	return nil
}

// getEscape reads an escape-coded magnitude: N-4 one bits, a zero, then
// N magnitude bits; the value is (1 << N) | magnitude.
//
// Ported from: the ESC_WORD handling in huffspec_fxp
func getEscape(r *bits.Reader) (int32, error) {
	n := uint(4)
	for r.Get1Bit() != 0 {
		n++
		if n >= 16 {
			return 0, ErrEscapeSequence
		}
	}
	return int32(1)<<n | int32(r.GetBits(n)), nil
}
