// aacfxp.go
package aacfxp

// ObjectType is an MPEG-4 audio object type. Only AAC-LC and AAC-LTP
// are decodable; the others are listed so headers naming them can be
// reported rather than misparsed.
type ObjectType uint8

// Audio object types.
const (
	ObjectTypeMain ObjectType = 1
	ObjectTypeLC   ObjectType = 2 // low complexity, the common case
	ObjectTypeSSR  ObjectType = 3 // scalable sample rate, not supported
	ObjectTypeLTP  ObjectType = 4 // long term prediction
)

// HeaderType identifies the transport framing detected by Init.
type HeaderType uint8

// Header types.
const (
	HeaderTypeRaw  HeaderType = iota // raw_data_block frames, no headers
	HeaderTypeADIF                   // one header at stream start
	HeaderTypeADTS                   // header before every frame
)

// OutputFormat selects the PCM layout Decode writes for stereo output.
type OutputFormat uint8

// Output layouts. Grouped output puts each channel's 1024 samples in
// one contiguous run; interleaved output alternates left and right.
const (
	OutputGrouped OutputFormat = iota
	OutputInterleaved
)

// FrameLength is the number of PCM samples one frame decodes to per
// channel. Streams using 960-sample framing are rejected at init.
const FrameLength = 1024

// MinStreamSize is the input bytes per channel a caller should keep
// available so one frame can always be parsed without refilling.
const MinStreamSize = 768 // 6144 bits per channel

// Config carries the decoder options. Set it with SetConfiguration
// before Init; the zero value decodes LC at 44100 Hz defaults with
// grouped output and no remixing.
type Config struct {
	// DefObjectType and DefSampleRate seed the stream parameters when
	// the input carries no ADTS or ADIF header and no AudioSpecificConfig
	// was given. Zero values mean LC at 44100 Hz.
	DefObjectType ObjectType
	DefSampleRate uint32

	// OutputFormat selects grouped or interleaved PCM for stereo.
	OutputFormat OutputFormat

	// DesiredChannels remixes the decoded channel count on output:
	// 0 keeps the stream's count, 1 averages stereo down to mono,
	// 2 duplicates mono up to stereo.
	DesiredChannels int

	// AACPlusEnabled is reserved for an SBR extension stage. No SBR
	// decoder ships with this module; fill-element payloads are always
	// consumed and discarded regardless of this flag.
	AACPlusEnabled bool
}

// FrameInfo describes the outcome of one Decode call.
type FrameInfo struct {
	// Channels and SampleRate describe the PCM written this call.
	// Channels reflects DesiredChannels remixing, not the stream.
	Channels   int
	SampleRate uint32

	// Samples is the total int16 count written across channels.
	Samples int

	ObjectType ObjectType
	HeaderType HeaderType

	// BytesConsumed and RemainderBits report the input cursor: the
	// frame used BytesConsumed bytes, of which the last byte has
	// RemainderBits bits of padding past the frame's end. ADTS frames
	// always end byte aligned, so RemainderBits is nonzero only for
	// raw streams whose frames the caller splits on bit boundaries.
	BytesConsumed uint32
	RemainderBits uint32

	// Error mirrors the error return as a status code.
	Error Error
}

// InitResult reports the stream parameters discovered by Init or Init2.
type InitResult struct {
	SampleRate uint32
	Channels   int
	ObjectType ObjectType
	HeaderType HeaderType

	// BytesRead is the input consumed by header parsing. Nonzero only
	// for ADIF, whose header the caller must skip before the first
	// Decode; ADTS headers are re-parsed per frame and cost nothing
	// at init.
	BytesRead uint32
}
