// decode.go
package aacfxp

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/filterbank"
	"github.com/llehouerou/go-aacfxp/internal/spectrum"
	"github.com/llehouerou/go-aacfxp/internal/syntax"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Decode decodes one frame from data into pcm and reports what it
// wrote and consumed. pcm must hold FrameLength samples per output
// channel. On a non-nil error the pcm contents are undefined, the
// returned FrameInfo still carries the input cursor, and the decoder
// stays usable for the next frame.
//
// Ported from: PVMP4AudioDecodeFrame() in
// aacdec/pvmp4audiodecodeframe.cpp
func (d *Decoder) Decode(data []byte, pcm []int16) (FrameInfo, error) {
	if !d.initialized {
		return FrameInfo{Error: ErrNotInitialized}, ErrNotInitialized
	}
	if data == nil {
		return FrameInfo{Error: ErrNilBuffer}, ErrNilBuffer
	}
	if len(data) == 0 {
		return FrameInfo{Error: ErrBufferTooSmall}, ErrBufferTooSmall
	}

	info := FrameInfo{
		SampleRate: tables.SampleRate(d.srIndex),
		ObjectType: ObjectType(d.objectType),
		HeaderType: HeaderTypeRaw,
	}
	r := bits.NewReader(data)

	adtsEnd := uint32(0)
	if d.adtsPresent {
		info.HeaderType = HeaderTypeADTS
		if err := syntax.FindADTSSync(r); err != nil {
			return d.fail(&info, r, err)
		}
		var h syntax.ADTSHeader
		syncByte := r.UsedBits() / 8
		if err := syntax.ParseADTSHeader(r, &h); err != nil {
			return d.fail(&info, r, err)
		}
		// The header's frame length counts from the syncword and
		// covers stuffing past the raw data block.
		adtsEnd = syncByte + uint32(h.FrameLength)
	} else if d.adifPresent {
		info.HeaderType = HeaderTypeADIF
	}

	chans, err := d.parseRawDataBlock(r)
	if err != nil {
		return d.fail(&info, r, err)
	}
	r.ByteAlign()
	if r.Overrun() {
		return d.fail(&info, r, syntax.ErrSectionBoundary)
	}

	if chans > 0 {
		maskPresent := 0
		if chans == 2 {
			maskPresent = d.cpeMask
		}
		d.reconstruct(chans, maskPresent)
	}

	outChans, samples, serr := d.stage(pcm, chans)
	if serr != ErrNone {
		info.Error = serr
		return info, serr
	}

	used := r.UsedBits()
	info.BytesConsumed = (used + 7) / 8
	info.RemainderBits = info.BytesConsumed*8 - used
	if adtsEnd >= info.BytesConsumed && adtsEnd <= uint32(len(data)) {
		info.BytesConsumed = adtsEnd
		info.RemainderBits = 0
	}
	info.Channels = outChans
	info.Samples = samples
	d.frame++
	return info, nil
}

// fail finalizes a frame error: the input cursor is clamped to the
// available bits and the status reflects buffer exhaustion when the
// reader ran dry, since values parsed past the end are garbage.
func (d *Decoder) fail(info *FrameInfo, r *bits.Reader, err error) (FrameInfo, error) {
	st := frameStatus(err)
	used := r.UsedBits()
	if r.Overrun() {
		used = r.Available()
		if st == ErrInvalidFrame {
			st = ErrIncompleteFrame
		}
	}
	info.BytesConsumed = (used + 7) / 8
	info.RemainderBits = info.BytesConsumed*8 - used
	info.Error = st
	return *info, st
}

// parseRawDataBlock walks one raw_data_block(): syntactic elements up
// to the terminator. It returns the number of audio channels filled
// (0 for a frame carrying only non-audio elements).
//
// Ported from: huffdecode() in aacdec/huffdecode.cpp
func (d *Decoder) parseRawDataBlock(r *bits.Reader) (int, error) {
	chans := 0
	for {
		if r.Overrun() {
			return 0, syntax.ErrSectionBoundary
		}
		id := syntax.ElementID(r.GetBits(syntax.LenSEID))
		if id == syntax.IDEND {
			return chans, nil
		}

		switch id {
		case syntax.IDSCE:
			if chans != 0 {
				return 0, syntax.ErrChannelConfig
			}
			if _, err := syntax.ParseSCE(r, &d.cs[0], d.coef[0][:], d.srIndex, d.objectType); err != nil {
				return 0, err
			}
			chans = 1

		case syntax.IDCPE:
			if chans != 0 {
				return 0, syntax.ErrChannelConfig
			}
			mp, err := syntax.ParseCPE(r, &d.cs[0], &d.cs[1],
				d.coef[0][:], d.coef[1][:], &d.mask, d.srIndex, d.objectType)
			if err != nil {
				return 0, err
			}
			d.cpeMask = mp
			chans = 2

		case syntax.IDCCE, syntax.IDLFE:
			return 0, syntax.ErrChannelConfig

		case syntax.IDDSE:
			syntax.SkipDataStreamElement(r)

		case syntax.IDPCE:
			// A program config may only arrive while the stream
			// parameters are still settling.
			if d.frame > 1 {
				return 0, syntax.ErrPCEPosition
			}
			var pce syntax.ProgramConfig
			if err := syntax.ParseProgramConfig(r, &pce); err != nil {
				return 0, err
			}
			n, err := pce.Channels()
			if err != nil {
				return 0, err
			}
			d.pce = pce
			d.pceSet = true
			d.channelConfig = n
			if tables.SampleRate(pce.SRIndex) != 0 {
				d.srIndex = pce.SRIndex
			}

		case syntax.IDFIL:
			// Extension payloads (SBR among them) are consumed and
			// dropped; an external SBR stage would tap them here.
			syntax.SkipFillElement(r)
		}
	}
}

// reconstruct runs the spectral pipeline for the parsed channels:
// inverse quantization, noise substitution, stereo tools, Q-format
// normalization, prediction, temporal shaping and the synthesis
// filterbank, ending in 16-bit PCM per channel.
//
// Ported from: the per-channel sequence in
// aacdec/pvmp4audiodecodeframe.cpp
func (d *Decoder) reconstruct(chans int, maskPresent int) {
	if chans == 2 {
		spectrum.Dequant(&d.cs[0], d.coef[0][:], d.qf[0][:])
		spectrum.Dequant(&d.cs[1], d.coef[1][:], d.qf[1][:])
		spectrum.GenerateNoisePair(&d.noiseSeed, &d.cs[0], &d.cs[1],
			&d.mask, d.coef[0][:], d.coef[1][:], d.qf[0][:], d.qf[1][:])
		if maskPresent != syntax.MaskNotPresent {
			spectrum.ApplyMS(&d.cs[1], &d.mask,
				d.coef[0][:], d.coef[1][:], d.qf[0][:], d.qf[1][:])
		}
		spectrum.ApplyIntensity(&d.cs[1], &d.mask,
			d.coef[0][:], d.coef[1][:], d.qf[0][:], d.qf[1][:])
	} else {
		spectrum.Dequant(&d.cs[0], d.coef[0][:], d.qf[0][:])
		spectrum.GenerateNoise(&d.noiseSeed, &d.cs[0], d.coef[0][:], d.qf[0][:])
	}

	for ch := 0; ch < chans; ch++ {
		cs := &d.cs[ch]
		q := spectrum.QNormalize(&cs.Info, d.coef[ch][:], d.qf[ch][:])
		spectrum.Deinterleave(&cs.Info, d.coef[ch][:], d.reorder[:])

		if d.objectType == syntax.ObjectTypeLTP {
			spectrum.ApplyLTP(cs, d.srIndex, d.prevShape[ch], d.ltpHist[ch][:],
				d.coef[ch][:], q, d.predTime[:], d.predSpec[:], &d.fb)
		}
		spectrum.ApplyTNS(cs, d.srIndex, d.coef[ch][:])

		filterbank.Inverse(cs.Info.WindowSequence, cs.Info.WindowShape,
			d.prevShape[ch], d.coef[ch][:], q, d.overlap[ch][:], d.out[ch][:], &d.fb)

		for i := range d.pcm[ch] {
			d.pcm[ch][i] = pcmRound(d.out[ch][i])
		}
		if d.objectType == syntax.ObjectTypeLTP {
			spectrum.UpdateLTPHistory(d.ltpHist[ch][:], d.pcm[ch][:], d.overlap[ch][:])
		}
		d.prevShape[ch] = cs.Info.WindowShape
	}
}

// stage writes the decoded channels into the caller's buffer, applying
// the DesiredChannels remix and the configured layout.
func (d *Decoder) stage(pcm []int16, chans int) (outChans, samples int, st Error) {
	if chans == 0 {
		return 0, 0, ErrNone
	}
	outChans = chans
	switch d.config.DesiredChannels {
	case 1, 2:
		outChans = d.config.DesiredChannels
	}
	samples = outChans * FrameLength
	if len(pcm) < samples {
		return 0, 0, ErrOutputBufferTooSmall
	}

	switch {
	case outChans == 1 && chans == 1:
		copy(pcm, d.pcm[0][:])

	case outChans == 1 && chans == 2:
		for i := 0; i < FrameLength; i++ {
			pcm[i] = int16((int32(d.pcm[0][i]) + int32(d.pcm[1][i])) >> 1)
		}

	case chans == 1: // mono stream duplicated to stereo
		if d.config.OutputFormat == OutputInterleaved {
			for i := 0; i < FrameLength; i++ {
				pcm[2*i] = d.pcm[0][i]
				pcm[2*i+1] = d.pcm[0][i]
			}
		} else {
			copy(pcm[:FrameLength], d.pcm[0][:])
			copy(pcm[FrameLength:], d.pcm[0][:])
		}

	default: // stereo to stereo
		if d.config.OutputFormat == OutputInterleaved {
			for i := 0; i < FrameLength; i++ {
				pcm[2*i] = d.pcm[0][i]
				pcm[2*i+1] = d.pcm[1][i]
			}
		} else {
			copy(pcm[:FrameLength], d.pcm[0][:])
			copy(pcm[FrameLength:], d.pcm[1][:])
		}
	}
	return outChans, samples, ErrNone
}

// pcmRound converts a TimeQ time sample to int16 with rounding and
// saturation.
func pcmRound(v int32) int16 {
	v = (v + (1 << (filterbank.TimeQ - 1))) >> filterbank.TimeQ
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
