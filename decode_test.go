package aacfxp

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

// writeZeroICS writes one individual_channel_stream with max_sfb == 0:
// every band sits in the synthetic zero section, so no scalefactor or
// spectral payload follows.
func writeZeroICS(w *bitio.Writer, withInfo bool) {
	w.WriteBits(100, 8) // global_gain
	if withInfo {
		w.WriteBits(0, 1) // ics_reserved_bit
		w.WriteBits(0, 2) // window_sequence: only long
		w.WriteBits(0, 1) // window_shape: sine
		w.WriteBits(0, 6) // max_sfb
		w.WriteBits(0, 1) // predictor_data_present
	}
	w.WriteBits(0, 1) // pulse_data_present
	w.WriteBits(0, 1) // tns_data_present
	w.WriteBits(0, 1) // gain_control_data_present
}

// zeroSCEFrame builds a raw frame holding one silent SCE.
func zeroSCEFrame(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	w := bitio.NewWriter(&b)
	w.WriteBits(0, 3) // ID_SCE
	w.WriteBits(0, 4) // element_instance_tag
	writeZeroICS(w, true)
	w.WriteBits(7, 3) // ID_END
	require.NoError(t, w.Close())
	return b.Bytes()
}

// zeroCPEFrame builds a raw frame holding one silent CPE with a common
// window and the given ms_mask_present value.
func zeroCPEFrame(t *testing.T, maskPresent uint64) []byte {
	t.Helper()
	var b bytes.Buffer
	w := bitio.NewWriter(&b)
	w.WriteBits(1, 3) // ID_CPE
	w.WriteBits(0, 4) // element_instance_tag
	w.WriteBits(1, 1) // common_window
	w.WriteBits(0, 1) // ics_reserved_bit
	w.WriteBits(0, 2) // window_sequence: only long
	w.WriteBits(0, 1) // window_shape
	w.WriteBits(0, 6) // max_sfb
	w.WriteBits(0, 1) // predictor_data_present
	w.WriteBits(maskPresent, 2)
	writeZeroICS(w, false)
	writeZeroICS(w, false)
	w.WriteBits(7, 3) // ID_END
	require.NoError(t, w.Close())
	return b.Bytes()
}

func initRaw(t *testing.T, d *Decoder, frame []byte) {
	t.Helper()
	res, err := d.Init(frame)
	require.NoError(t, err)
	require.Equal(t, HeaderTypeRaw, res.HeaderType)
}

func TestDecodeZeroSCE(t *testing.T) {
	frame := zeroSCEFrame(t)
	d := NewDecoder()
	initRaw(t, d, frame)

	pcm := make([]int16, FrameLength)
	info, err := d.Decode(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, ErrNone, info.Error)
	require.Equal(t, 1, info.Channels)
	require.Equal(t, FrameLength, info.Samples)
	require.Equal(t, uint32(len(frame)), info.BytesConsumed)
	require.Equal(t, uint32(44100), info.SampleRate)
	for i, s := range pcm {
		require.Zerof(t, s, "sample %d", i)
	}
}

func TestDecodeZeroSCESequence(t *testing.T) {
	// The second frame exercises the overlap state left by the first;
	// silence must stay silence.
	frame := zeroSCEFrame(t)
	d := NewDecoder()
	initRaw(t, d, frame)

	pcm := make([]int16, FrameLength)
	for n := 0; n < 3; n++ {
		info, err := d.Decode(frame, pcm)
		require.NoError(t, err)
		require.Equal(t, FrameLength, info.Samples)
		for _, s := range pcm {
			require.Zero(t, s)
		}
	}
}

func TestDecodeZeroCPEMaskAll(t *testing.T) {
	frame := zeroCPEFrame(t, 2)
	d := NewDecoder()
	initRaw(t, d, frame)

	pcm := make([]int16, 2*FrameLength)
	info, err := d.Decode(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, 2, info.Channels)
	require.Equal(t, 2*FrameLength, info.Samples)
	for _, s := range pcm {
		require.Zero(t, s)
	}
}

func TestDecodeStereoDownmix(t *testing.T) {
	frame := zeroCPEFrame(t, 0)
	d := NewDecoder()
	d.SetConfiguration(Config{DesiredChannels: 1})
	initRaw(t, d, frame)

	pcm := make([]int16, FrameLength)
	info, err := d.Decode(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, 1, info.Channels)
	require.Equal(t, FrameLength, info.Samples)
}

func TestDecodeMonoUpmixInterleaved(t *testing.T) {
	frame := zeroSCEFrame(t)
	d := NewDecoder()
	d.SetConfiguration(Config{DesiredChannels: 2, OutputFormat: OutputInterleaved})
	initRaw(t, d, frame)

	pcm := make([]int16, 2*FrameLength)
	info, err := d.Decode(frame, pcm)
	require.NoError(t, err)
	require.Equal(t, 2, info.Channels)
	require.Equal(t, 2*FrameLength, info.Samples)
	for i := 0; i < FrameLength; i++ {
		require.Equal(t, pcm[2*i], pcm[2*i+1])
	}
}

func TestDecodeEmptyFrame(t *testing.T) {
	d := NewDecoder()
	initRaw(t, d, zeroSCEFrame(t))

	// A frame carrying only the terminator produces no audio but is
	// not an error.
	info, err := d.Decode([]byte{0xE0, 0x00}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, info.Channels)
	require.Equal(t, 0, info.Samples)
	require.Equal(t, uint32(1), info.BytesConsumed)
}

func TestDecodeNotInitialized(t *testing.T) {
	d := NewDecoder()
	_, err := d.Decode(zeroSCEFrame(t), make([]int16, FrameLength))
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestDecodeOutputBufferTooSmall(t *testing.T) {
	frame := zeroSCEFrame(t)
	d := NewDecoder()
	initRaw(t, d, frame)

	info, err := d.Decode(frame, make([]int16, 16))
	require.ErrorIs(t, err, ErrOutputBufferTooSmall)
	require.Equal(t, ErrOutputBufferTooSmall, info.Error)
}

func TestDecodeTruncatedFrame(t *testing.T) {
	frame := zeroSCEFrame(t)
	d := NewDecoder()
	initRaw(t, d, frame)

	info, err := d.Decode(frame[:2], make([]int16, FrameLength))
	require.ErrorIs(t, err, ErrIncompleteFrame)
	require.Equal(t, ErrIncompleteFrame, info.Error)
	// The cursor never reports more than the buffer held.
	require.LessOrEqual(t, info.BytesConsumed, uint32(2))
}

func TestDecodeUnsupportedElement(t *testing.T) {
	d := NewDecoder()
	initRaw(t, d, zeroSCEFrame(t))

	// ID_LFE as the first element.
	var b bytes.Buffer
	w := bitio.NewWriter(&b)
	w.WriteBits(3, 3)
	w.WriteBits(0, 4)
	w.WriteBits(7, 3)
	require.NoError(t, w.Close())

	_, err := d.Decode(b.Bytes(), make([]int16, FrameLength))
	require.ErrorIs(t, err, ErrInvalidFrame)
}

// adtsZeroSCEStream builds one complete ADTS frame around a silent SCE,
// padded with one stuffing byte counted by the header's frame length.
func adtsZeroSCEStream(t *testing.T) []byte {
	t.Helper()
	payload := zeroSCEFrame(t)
	total := 7 + len(payload) + 1

	var b bytes.Buffer
	w := bitio.NewWriter(&b)
	w.WriteBits(0xFFF, 12)         // syncword
	w.WriteBits(0, 1)              // ID
	w.WriteBits(0, 2)              // layer
	w.WriteBits(1, 1)              // protection_absent
	w.WriteBits(1, 2)              // profile: LC
	w.WriteBits(4, 4)              // 44.1 kHz
	w.WriteBits(0, 1)              // private
	w.WriteBits(1, 3)              // channel_configuration
	w.WriteBits(0, 1)              // original
	w.WriteBits(0, 1)              // home
	w.WriteBits(0, 1)              // copyright_identification_bit
	w.WriteBits(0, 1)              // copyright_identification_start
	w.WriteBits(uint64(total), 13) // aac_frame_length
	w.WriteBits(0x7FF, 11)         // buffer fullness
	w.WriteBits(0, 2)              // raw data blocks
	for _, c := range payload {
		w.WriteBits(uint64(c), 8)
	}
	w.WriteBits(0, 8) // stuffing
	require.NoError(t, w.Close())
	require.Equal(t, total, b.Len())
	return b.Bytes()
}

func TestDecodeADTSFrame(t *testing.T) {
	stream := adtsZeroSCEStream(t)
	d := NewDecoder()
	res, err := d.Init(stream)
	require.NoError(t, err)
	require.Equal(t, HeaderTypeADTS, res.HeaderType)
	require.Equal(t, uint32(44100), res.SampleRate)
	require.Equal(t, 1, res.Channels)

	pcm := make([]int16, FrameLength)
	info, err := d.Decode(stream, pcm)
	require.NoError(t, err)
	require.Equal(t, HeaderTypeADTS, info.HeaderType)
	require.Equal(t, FrameLength, info.Samples)
	// The stuffing byte belongs to the frame.
	require.Equal(t, uint32(len(stream)), info.BytesConsumed)
	for _, s := range pcm {
		require.Zero(t, s)
	}
}

func TestDecodeLostFrameSync(t *testing.T) {
	d := NewDecoder()
	_, err := d.Init(adtsZeroSCEStream(t))
	require.NoError(t, err)

	garbage := bytes.Repeat([]byte{0x55}, 64)
	info, derr := d.Decode(garbage, make([]int16, FrameLength))
	require.ErrorIs(t, derr, ErrLostFrameSync)
	require.Equal(t, ErrLostFrameSync, info.Error)
}
