// internal/syntax/errors.go
package syntax

import "errors"

// Bitstream-syntax errors. Each aborts the current frame only; the frame
// decode maps them to the per-call status.
var (
	ErrReservedBit       = errors.New("syntax: ics_info reserved bit set")
	ErrMaxSFB            = errors.New("syntax: max_sfb exceeds bands for this layout")
	ErrBadGrouping       = errors.New("syntax: short window group lengths do not sum to 8")
	ErrSectionBoundary   = errors.New("syntax: section boundaries do not cover all bands")
	ErrReservedCodebook  = errors.New("syntax: reserved huffman codebook 12 in section data")
	ErrScaleFactorRange  = errors.New("syntax: scalefactor out of range")
	ErrMaskPresent       = errors.New("syntax: mask_present value out of range")
	ErrPulseInShort      = errors.New("syntax: pulse data in an eight-short frame")
	ErrPulseBand         = errors.New("syntax: pulse start band out of range")
	ErrTNSOrder          = errors.New("syntax: tns filter order exceeds profile limit")
	ErrLTPLag            = errors.New("syntax: ltp lag out of range")
	ErrPredictorData     = errors.New("syntax: predictor data for unsupported object type")
	ErrPCEPosition       = errors.New("syntax: program config element after the first frames")
	ErrProgramConfig     = errors.New("syntax: malformed program config element")
	ErrADTSSync          = errors.New("syntax: adts syncword not found")
	ErrADIFMagic         = errors.New("syntax: adif magic not found")
	ErrSampleRateIndex   = errors.New("syntax: reserved sampling frequency index")
	ErrChannelConfig     = errors.New("syntax: unsupported channel configuration")
	ErrUnsupportedObject = errors.New("syntax: unsupported audio object type")
)
