// decoder.go
package aacfxp

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/filterbank"
	"github.com/llehouerou/go-aacfxp/internal/spectrum"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

const maxDecodeChannels = 2

// initialNoiseSeed is the PNS generator seed. Nonzero so the first
// noise bands already look random.
const initialNoiseSeed = 0x2bb431ea

// Decoder decodes one AAC stream. All working buffers live in the
// struct, sized for the stereo worst case, so the per-frame path
// allocates nothing.
//
// Ported from: tDec_Int_File in aacdec/s_tdec_int_file.h (the shared
// scratch overlay inside the spectral buffers is replaced by plain
// fields)
type Decoder struct {
	config      Config
	initialized bool

	adtsPresent bool
	adifPresent bool

	srIndex       uint8
	objectType    int
	channelConfig int

	frame  uint32
	pceSet bool
	pce    syntax.ProgramConfig

	// noiseSeed is the PNS generator state, one per instance so
	// independent streams decode deterministically.
	noiseSeed uint32

	// Per-channel frame state.
	cs      [maxDecodeChannels]syntax.ChannelStream
	coef    [maxDecodeChannels][tables.LongWindow]int32
	qf      [maxDecodeChannels][tables.MaxBands]int
	out     [maxDecodeChannels][tables.LongWindow]int32
	pcm     [maxDecodeChannels][tables.LongWindow]int16
	mask    [tables.MaxBands]bool
	cpeMask int // mask_present of the frame's CPE

	// Cross-frame state.
	overlap   [maxDecodeChannels][tables.LongWindow]int32
	prevShape [maxDecodeChannels]uint8
	ltpHist   [maxDecodeChannels][spectrum.LTPHistorySize]int16

	// Transform scratch, shared across channels within a frame.
	predTime [2 * tables.LongWindow]int32
	predSpec [tables.LongWindow]int32
	reorder  [tables.LongWindow]int32
	fb       filterbank.Scratch
}

// NewDecoder returns a decoder with default configuration. Call
// SetConfiguration before Init to change options.
//
// Ported from: PVMP4AudioDecoderInitLibrary() in
// aacdec/pvmp4audiodecoderinitlibrary.cpp
func NewDecoder() *Decoder {
	d := &Decoder{
		config: Config{
			DefObjectType: ObjectTypeLC,
			DefSampleRate: 44100,
		},
		noiseSeed: initialNoiseSeed,
	}
	for ch := range d.prevShape {
		d.prevShape[ch] = filterbank.ShapeSine
	}
	return d
}

// Config returns the current configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// SetConfiguration replaces the decoder options. Takes effect on the
// next Init; zero defaults are filled in.
func (d *Decoder) SetConfiguration(cfg Config) {
	if cfg.DefObjectType == 0 {
		cfg.DefObjectType = ObjectTypeLC
	}
	if cfg.DefSampleRate == 0 {
		cfg.DefSampleRate = 44100
	}
	d.config = cfg
}

// Init detects the stream format from the first bytes and extracts the
// stream parameters. ADIF headers are consumed (skip BytesRead before
// the first Decode); ADTS headers are only probed here and re-parsed
// by every Decode; anything else is treated as raw frames using the
// configured defaults.
//
// Ported from: the format probe in aacdec/pvmp4audiodecoderframe.cpp
func (d *Decoder) Init(data []byte) (InitResult, error) {
	if data == nil {
		return InitResult{}, ErrNilBuffer
	}
	if len(data) < 2 {
		return InitResult{}, ErrBufferTooSmall
	}

	d.reset()
	d.srIndex = srIndexFor(d.config.DefSampleRate)
	d.objectType = int(d.config.DefObjectType)
	d.channelConfig = 1

	if len(data) >= 4 && data[0] == 'A' && data[1] == 'D' && data[2] == 'I' && data[3] == 'F' {
		return d.initADIF(data)
	}

	r := bits.NewReader(data)
	if err := syntax.FindADTSSync(r); err == nil {
		var h syntax.ADTSHeader
		if err := syntax.ParseADTSHeader(r, &h); err != nil {
			return InitResult{}, initStatus(err)
		}
		return d.initADTS(&h)
	}

	// Raw stream: keep the configured defaults.
	if tables.SampleRate(d.srIndex) == 0 {
		return InitResult{}, ErrInvalidSampleRate
	}
	if d.objectType != syntax.ObjectTypeLC && d.objectType != syntax.ObjectTypeLTP {
		return InitResult{}, ErrUnsupportedObjectType
	}
	d.initialized = true
	return InitResult{
		SampleRate: tables.SampleRate(d.srIndex),
		Channels:   d.channelConfig,
		ObjectType: ObjectType(d.objectType),
		HeaderType: HeaderTypeRaw,
	}, nil
}

func (d *Decoder) initADIF(data []byte) (InitResult, error) {
	r := bits.NewReader(data)
	var h syntax.ADIFHeader
	if err := syntax.ParseADIFHeader(r, &h); err != nil {
		return InitResult{}, initStatus(err)
	}
	chans, err := h.PCE.Channels()
	if err != nil {
		return InitResult{}, ErrInvalidChannelConfig
	}
	if h.PCE.ObjectType != syntax.ObjectTypeLC && h.PCE.ObjectType != syntax.ObjectTypeLTP {
		return InitResult{}, ErrUnsupportedObjectType
	}
	if tables.SampleRate(h.PCE.SRIndex) == 0 {
		return InitResult{}, ErrInvalidSampleRate
	}

	d.adifPresent = true
	d.srIndex = h.PCE.SRIndex
	d.objectType = h.PCE.ObjectType
	d.channelConfig = chans
	d.pce = h.PCE
	d.pceSet = true
	d.initialized = true

	return InitResult{
		SampleRate: tables.SampleRate(d.srIndex),
		Channels:   chans,
		ObjectType: ObjectType(d.objectType),
		HeaderType: HeaderTypeADIF,
		BytesRead:  (r.UsedBits() + 7) / 8,
	}, nil
}

func (d *Decoder) initADTS(h *syntax.ADTSHeader) (InitResult, error) {
	d.adtsPresent = true
	d.srIndex = h.SRIndex
	d.objectType = h.ObjectType
	d.channelConfig = h.ChannelConfig
	if d.channelConfig == 0 {
		// Channel config 0 defers to an in-band PCE; assume mono until
		// the first frame's PCE arrives.
		d.channelConfig = 1
	}
	d.initialized = true

	return InitResult{
		SampleRate: tables.SampleRate(d.srIndex),
		Channels:   d.channelConfig,
		ObjectType: ObjectType(d.objectType),
		HeaderType: HeaderTypeADTS,
	}, nil
}

// Init2 initializes the decoder from an MP4 AudioSpecificConfig, as
// carried in the esds box of an M4A file. The stream is then raw: feed
// one access unit per Decode call.
//
// Ported from: get_audio_specific_config() in
// aacdec/get_audio_specific_config.cpp and get_ga_specific_config() in
// aacdec/get_ga_specific_config.cpp
func (d *Decoder) Init2(asc []byte) (InitResult, error) {
	if asc == nil {
		return InitResult{}, ErrNilBuffer
	}
	if len(asc) < 2 {
		return InitResult{}, ErrBufferTooSmall
	}

	d.reset()
	r := bits.NewReader(asc)

	objectType := int(r.GetBits(5))
	srIndex := uint8(r.GetBits(4))
	sampleRate := uint32(0)
	if srIndex == 0x0F {
		sampleRate = r.GetBits(24)
		srIndex = srIndexFor(sampleRate)
	} else {
		sampleRate = tables.SampleRate(srIndex)
	}
	chanConfig := int(r.GetBits(4))

	if objectType != syntax.ObjectTypeLC && objectType != syntax.ObjectTypeLTP {
		return InitResult{}, ErrUnsupportedObjectType
	}
	if sampleRate == 0 {
		return InitResult{}, ErrInvalidSampleRate
	}
	if chanConfig < 1 || chanConfig > 2 {
		return InitResult{}, ErrInvalidChannelConfig
	}

	// GASpecificConfig
	if r.Get1Bit() != 0 { // frameLengthFlag: 960-sample framing
		return InitResult{}, ErrUnsupportedFrameLen
	}
	if r.Get1Bit() != 0 { // dependsOnCoreCoder
		r.GetBits(14) // coreCoderDelay
	}
	r.Get1Bit() // extensionFlag
	if r.Overrun() {
		return InitResult{}, ErrBufferTooSmall
	}

	d.srIndex = srIndex
	d.objectType = objectType
	d.channelConfig = chanConfig
	d.initialized = true

	return InitResult{
		SampleRate: sampleRate,
		Channels:   chanConfig,
		ObjectType: ObjectType(objectType),
		HeaderType: HeaderTypeRaw,
	}, nil
}

// SampleRate returns the stream's sampling rate in Hz, 0 before init.
func (d *Decoder) SampleRate() uint32 {
	return tables.SampleRate(d.srIndex)
}

// Channels returns the stream's decoded channel count before
// DesiredChannels remixing.
func (d *Decoder) Channels() int {
	return d.channelConfig
}

// ObjectType returns the stream's audio object type.
func (d *Decoder) ObjectType() ObjectType {
	return ObjectType(d.objectType)
}

// reset clears the cross-frame state so a decoder can be re-initialized
// on a new stream.
func (d *Decoder) reset() {
	d.initialized = false
	d.adtsPresent = false
	d.adifPresent = false
	d.frame = 0
	d.pceSet = false
	d.noiseSeed = initialNoiseSeed
	for ch := 0; ch < maxDecodeChannels; ch++ {
		for i := range d.overlap[ch] {
			d.overlap[ch][i] = 0
		}
		for i := range d.ltpHist[ch] {
			d.ltpHist[ch][i] = 0
		}
		d.prevShape[ch] = filterbank.ShapeSine
	}
}

// srIndexFor returns the sampling frequency index whose nominal rate
// is nearest the given rate, using the threshold midpoints between
// adjacent table entries (ISO/IEC 14496-3 table 1.16).
func srIndexFor(rate uint32) uint8 {
	thresholds := [...]uint32{
		92017, 75132, 55426, 46009, 37566, 27713,
		23004, 18783, 13856, 11502, 9391,
	}
	for i, th := range thresholds {
		if rate >= th {
			return uint8(i)
		}
	}
	return 11
}
