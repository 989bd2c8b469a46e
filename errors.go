// errors.go
package aacfxp

import (
	"errors"

	"github.com/llehouerou/go-aacfxp/internal/syntax"
)

// Error is a decoder status code. The zero value means success; every
// failing call returns one of the non-zero codes below, and FrameInfo
// carries the same code for callers that prefer polling a status field.
type Error int

// Decoder status codes.
const (
	ErrNone Error = iota // no error

	// Per-frame statuses. A frame failing with one of these aborts that
	// frame only; the decoder instance stays usable for the next frame.
	ErrInvalidFrame    // malformed bitstream syntax in the frame
	ErrIncompleteFrame // frame needs more bits than the input buffer holds
	ErrLostFrameSync   // ADTS syncword not found in the input buffer

	// Initialization errors.
	ErrNilBuffer             // input buffer is nil
	ErrBufferTooSmall        // input buffer too small to hold a header
	ErrInvalidSampleRate     // reserved or unsupported sampling frequency
	ErrUnsupportedObjectType // audio object type other than LC or LTP
	ErrInvalidChannelConfig  // channel configuration other than mono/stereo
	ErrUnsupportedFrameLen   // 960-sample framing (frameLengthFlag set)

	// Usage errors.
	ErrNotInitialized       // Decode called before Init/Init2
	ErrOutputBufferTooSmall // pcm buffer cannot hold one decoded frame
)

var errMessages = [...]string{
	ErrNone:                  "no error",
	ErrInvalidFrame:          "invalid frame",
	ErrIncompleteFrame:       "incomplete frame",
	ErrLostFrameSync:         "lost frame sync",
	ErrNilBuffer:             "nil input buffer",
	ErrBufferTooSmall:        "input buffer too small",
	ErrInvalidSampleRate:     "invalid sample rate",
	ErrUnsupportedObjectType: "unsupported audio object type",
	ErrInvalidChannelConfig:  "unsupported channel configuration",
	ErrUnsupportedFrameLen:   "960-sample frames not supported",
	ErrNotInitialized:        "decoder not initialized",
	ErrOutputBufferTooSmall:  "output buffer too small",
}

func (e Error) Error() string {
	if e < 0 || int(e) >= len(errMessages) {
		return "unknown error"
	}
	return errMessages[e]
}

// frameStatus maps an internal parse or reconstruction error to the
// per-frame status exposed to the caller. All bitstream-syntax errors
// collapse to ErrInvalidFrame; sync loss keeps its own code so the
// caller can distinguish "rescan for a header" from "skip this frame".
func frameStatus(err error) Error {
	switch {
	case err == nil:
		return ErrNone
	case errors.Is(err, syntax.ErrADTSSync):
		return ErrLostFrameSync
	default:
		return ErrInvalidFrame
	}
}

// initStatus maps header-parse errors at initialization time, where
// the specific stream parameter at fault matters to the caller.
func initStatus(err error) Error {
	switch {
	case err == nil:
		return ErrNone
	case errors.Is(err, syntax.ErrSampleRateIndex):
		return ErrInvalidSampleRate
	case errors.Is(err, syntax.ErrChannelConfig):
		return ErrInvalidChannelConfig
	case errors.Is(err, syntax.ErrUnsupportedObject):
		return ErrUnsupportedObjectType
	default:
		return ErrInvalidFrame
	}
}
