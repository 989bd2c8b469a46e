package aacfxp

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestInit2LCStereo(t *testing.T) {
	// The canonical 44.1 kHz stereo LC AudioSpecificConfig.
	d := NewDecoder()
	res, err := d.Init2([]byte{0x12, 0x10})
	require.NoError(t, err)
	require.Equal(t, uint32(44100), res.SampleRate)
	require.Equal(t, 2, res.Channels)
	require.Equal(t, ObjectTypeLC, res.ObjectType)
	require.Equal(t, HeaderTypeRaw, res.HeaderType)
	require.Equal(t, uint32(44100), d.SampleRate())
	require.Equal(t, 2, d.Channels())
}

func TestInit2ReseedsNoise(t *testing.T) {
	// Re-initializing on a new stream must restore the noise generator
	// seed so two decodes of the same data produce identical PNS bands.
	d := NewDecoder()
	_, err := d.Init2([]byte{0x12, 0x10})
	require.NoError(t, err)
	d.noiseSeed = 0xdeadbeef // as if frames had been decoded
	_, err = d.Init2([]byte{0x12, 0x10})
	require.NoError(t, err)
	require.Equal(t, uint32(initialNoiseSeed), d.noiseSeed)
}

func TestInit2Rejects960Framing(t *testing.T) {
	var b bytes.Buffer
	w := bitio.NewWriter(&b)
	w.WriteBits(2, 5) // audioObjectType: LC
	w.WriteBits(4, 4) // samplingFrequencyIndex: 44.1 kHz
	w.WriteBits(2, 4) // channelConfiguration
	w.WriteBits(1, 1) // frameLengthFlag: 960 samples
	w.WriteBits(0, 1)
	w.WriteBits(0, 1)
	require.NoError(t, w.Close())

	d := NewDecoder()
	_, err := d.Init2(b.Bytes())
	require.ErrorIs(t, err, ErrUnsupportedFrameLen)
}

func TestInit2RejectsSSR(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.WriteBits(3, 5) // audioObjectType: SSR
	w.WriteBits(4, 4)
	w.WriteBits(2, 4)
	w.WriteBits(0, 3)
	require.NoError(t, w.Close())

	d := NewDecoder()
	_, err := d.Init2(buf.Bytes())
	require.ErrorIs(t, err, ErrUnsupportedObjectType)
}

func TestInit2ExplicitSampleRate(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.WriteBits(2, 5)   // LC
	w.WriteBits(0xF, 4) // escape: explicit rate follows
	w.WriteBits(48000, 24)
	w.WriteBits(1, 4) // mono
	w.WriteBits(0, 3) // GASpecificConfig
	require.NoError(t, w.Close())

	d := NewDecoder()
	res, err := d.Init2(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint32(48000), res.SampleRate)
	require.Equal(t, uint8(3), d.srIndex)
}

func TestInitNilAndShort(t *testing.T) {
	d := NewDecoder()
	_, err := d.Init(nil)
	require.ErrorIs(t, err, ErrNilBuffer)
	_, err = d.Init([]byte{0xFF})
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestInitRawDefaults(t *testing.T) {
	d := NewDecoder()
	d.SetConfiguration(Config{DefObjectType: ObjectTypeLTP, DefSampleRate: 8000})
	res, err := d.Init(make([]byte, 8)) // no header anywhere
	require.NoError(t, err)
	require.Equal(t, HeaderTypeRaw, res.HeaderType)
	require.Equal(t, uint32(8000), res.SampleRate)
	require.Equal(t, ObjectTypeLTP, res.ObjectType)
}

func TestInitADIF(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, c := range []byte("ADIF") {
		w.WriteBits(uint64(c), 8)
	}
	w.WriteBits(0, 1)       // copyright_id_present
	w.WriteBits(0, 1)       // original_copy
	w.WriteBits(0, 1)       // home
	w.WriteBits(1, 1)       // bitstream_type: variable rate
	w.WriteBits(128000, 23) // bitrate
	w.WriteBits(0, 4)       // num_program_config_elements - 1

	// program_config_element: one front SCE, 48 kHz, LC.
	w.WriteBits(0, 4) // element_instance_tag
	w.WriteBits(1, 2) // object_type
	w.WriteBits(3, 4) // sampling_frequency_index
	w.WriteBits(1, 4) // num_front_channel_elements
	w.WriteBits(0, 4)
	w.WriteBits(0, 4)
	w.WriteBits(0, 2)
	w.WriteBits(0, 3)
	w.WriteBits(0, 4)
	w.WriteBits(0, 1) // mono_mixdown_present
	w.WriteBits(0, 1) // stereo_mixdown_present
	w.WriteBits(0, 1) // matrix_mixdown_idx_present
	w.WriteBits(0, 1) // front: is_cpe
	w.WriteBits(0, 4) // front: tag
	w.WriteBits(0, 2) // byte align pad before the comment field
	w.WriteBits(0, 8) // comment_field_bytes
	require.NoError(t, w.Close())

	d := NewDecoder()
	res, err := d.Init(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, HeaderTypeADIF, res.HeaderType)
	require.Equal(t, uint32(48000), res.SampleRate)
	require.Equal(t, 1, res.Channels)
	require.Equal(t, ObjectTypeLC, res.ObjectType)
	require.Equal(t, uint32(buf.Len()), res.BytesRead)
}

func TestSRIndexFor(t *testing.T) {
	cases := []struct {
		rate uint32
		idx  uint8
	}{
		{96000, 0}, {88200, 1}, {64000, 2}, {48000, 3},
		{44100, 4}, {32000, 5}, {24000, 6}, {22050, 7},
		{16000, 8}, {12000, 9}, {11025, 10}, {8000, 11},
	}
	for _, c := range cases {
		require.Equalf(t, c.idx, srIndexFor(c.rate), "rate %d", c.rate)
	}
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "no error", ErrNone.Error())
	require.Equal(t, "lost frame sync", ErrLostFrameSync.Error())
	require.Equal(t, "unknown error", Error(99).Error())
}
