// Package aacfxp decodes AAC-LC and AAC-LTP bitstreams to 16-bit PCM
// using fixed-point arithmetic only. No floating point touches the
// per-frame path: spectra are kept as int32 mantissas with per-band
// Q-format exponents, and the filterbank runs on integer FFT kernels
// whose twiddle and window tables are built once at package init.
//
// # Basic Usage
//
//	dec := aacfxp.NewDecoder()
//	res, err := dec.Init(data) // detects ADTS/ADIF, reads stream params
//	if err != nil {
//		return err
//	}
//	data = data[res.BytesRead:]
//
//	pcm := make([]int16, 2*aacfxp.FrameLength)
//	for len(data) > 0 {
//		info, err := dec.Decode(data, pcm)
//		if err != nil {
//			return err
//		}
//		play(pcm[:info.Samples], info.Channels, info.SampleRate)
//		data = data[info.BytesConsumed:]
//	}
//
// Each Decode call consumes exactly one frame's syntactic elements and
// writes one frame (1024 samples per channel) into the caller's pcm
// buffer. FrameInfo.BytesConsumed advances the caller's cursor; for
// MP4/M4A input, initialize with Init2 from the track's
// AudioSpecificConfig and feed one sample (access unit) per call.
//
// # Supported Formats
//
// ADTS, ADIF and raw streams carrying AAC-LC or AAC-LTP, mono or
// stereo, 1024-sample framing, at the twelve standard sampling rates
// (8000–96000 Hz). SSR, Main-profile prediction, coupling channels,
// LFE channels, 960-sample framing and multichannel programs are
// rejected. SBR/PS extension payloads are consumed and skipped.
//
// # Error Handling
//
// Every failure is a returned Error code; nothing panics. A frame
// failing with ErrInvalidFrame, ErrIncompleteFrame or ErrLostFrameSync
// aborts that frame only — cross-frame state (LTP histories, the noise
// seed, overlap buffers) keeps whatever the frame advanced before the
// error, so audio resumes with at most a brief discontinuity.
//
// # Thread Safety
//
// A Decoder is not safe for concurrent use: at most one Decode may be
// in flight per instance. Independent instances share nothing mutable
// and may run in parallel.
package aacfxp
