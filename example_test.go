package aacfxp_test

import (
	"fmt"

	aacfxp "github.com/llehouerou/go-aacfxp"
)

func Example() {
	dec := aacfxp.NewDecoder()

	// AudioSpecificConfig for AAC-LC, 44.1 kHz, stereo (the two-byte
	// payload found in an MP4 esds box or an RTP fmtp line).
	asc := []byte{0x12, 0x10}

	result, err := dec.Init2(asc)
	if err != nil {
		fmt.Printf("init error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", result.SampleRate)
	fmt.Printf("Channels: %d\n", result.Channels)

	// Output:
	// Sample rate: 44100 Hz
	// Channels: 2
}

func ExampleDecoder_Decode() {
	dec := aacfxp.NewDecoder()

	// Decoding before Init/Init2 is a usage error; the decoder reports
	// it both as the returned error and in FrameInfo.Error.
	pcm := make([]int16, 2*aacfxp.FrameLength)
	info, err := dec.Decode([]byte{0x00}, pcm)
	fmt.Println(err)
	fmt.Println(info.Error == aacfxp.ErrNotInitialized)

	// Output:
	// decoder not initialized
	// true
}
