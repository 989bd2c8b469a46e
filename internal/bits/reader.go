// Package bits implements the bitstream cursor used by the AAC decoder.
package bits

// MaxGetBits is the widest single read the decoder performs.
// Ported from: MAX_GETBITS in aacdec/ibstream.h
const MaxGetBits = 25

// Reader is a cursor over a byte buffer. Reads are MSB-first and advance
// a monotonic used-bit counter.
//
// The reader never fails a read: fields past the end of the buffer decode
// as zero bits and the counter keeps advancing. Callers detect over-reads
// after the fact by checking UsedBits() > Available(), once per syntactic
// element rather than per read. This is the reference's throughput
// trade-off: a caller-side clamp discards the frame on overrun.
//
// Ported from: BITS struct in aacdec/s_bits.h and getbits() in
// aacdec/ibstream.h
type Reader struct {
	buf       []byte
	usedBits  uint32 // bits consumed so far
	available uint32 // bits the caller handed us
}

// NewReader creates a Reader over data, with all of data available.
func NewReader(data []byte) *Reader {
	return NewReaderBits(data, uint32(len(data))*8)
}

// NewReaderBits creates a Reader over data with an explicit bit budget.
// availableBits may be less than the buffer length in bits when the last
// byte is only partially valid.
func NewReaderBits(data []byte, availableBits uint32) *Reader {
	if max := uint32(len(data)) * 8; availableBits > max {
		availableBits = max
	}
	return &Reader{buf: data, available: availableBits}
}

// GetBits reads and returns the next n bits (0-32), MSB-first.
// Reads beyond the buffer return zero bits; see the type comment for the
// overrun contract.
//
// Ported from: getbits() in aacdec/ibstream.h
func (r *Reader) GetBits(n uint) uint32 {
	v := r.peek(r.usedBits, n)
	r.usedBits += uint32(n)
	return v
}

// Get1Bit reads a single bit.
//
// Ported from: get1bits() in aacdec/ibstream.h
func (r *Reader) Get1Bit() uint32 {
	v := r.peek(r.usedBits, 1)
	r.usedBits++
	return v
}

// ShowBits returns the next n bits without consuming them.
func (r *Reader) ShowBits(n uint) uint32 {
	return r.peek(r.usedBits, n)
}

// Rewind moves the cursor back n bits. The Huffman decoders peek the
// maximum codeword length and give back what the matched codeword did
// not consume.
//
// Ported from: the "pInputStream->usedBits -= (max_length - cw_len)"
// idiom in aacdec/pv_aac_dec.cpp callers
func (r *Reader) Rewind(n uint) {
	r.usedBits -= uint32(n)
}

// ByteAlign rounds the cursor up to the next byte boundary and returns
// the number of bits skipped.
//
// Ported from: byte_align() in aacdec/ibstream.h
func (r *Reader) ByteAlign() uint32 {
	skip := (8 - (r.usedBits & 7)) & 7
	r.usedBits += skip
	return skip
}

// UsedBits returns the number of bits consumed so far.
func (r *Reader) UsedBits() uint32 { return r.usedBits }

// SetUsedBits overwrites the consumed-bit counter. The frame decode uses
// it to clamp the cursor to the available budget after an overrun.
func (r *Reader) SetUsedBits(n uint32) { r.usedBits = n }

// Available returns the bit budget this reader was created with.
func (r *Reader) Available() uint32 { return r.available }

// Overrun reports whether more bits were consumed than were available.
// The per-frame decode checks this once per syntactic element.
func (r *Reader) Overrun() bool { return r.usedBits > r.available }

// peek extracts n bits starting at bit offset off. Up to 39 bits are
// gathered into a 64-bit window (offset remainder 7 + read width 32),
// zero-padded past the end of the buffer.
func (r *Reader) peek(off uint32, n uint) uint32 {
	if n == 0 {
		return 0
	}
	byteOff := int(off >> 3)
	var w uint64
	for i := byteOff; i < byteOff+5; i++ {
		w <<= 8
		if i < len(r.buf) {
			w |= uint64(r.buf[i])
		}
	}
	shift := 40 - uint(off&7) - n
	return uint32((w >> shift) & ((1 << n) - 1))
}
