// internal/syntax/pce.go
package syntax

import (
	"github.com/llehouerou/go-aacfxp/internal/bits"
	"github.com/llehouerou/go-aacfxp/internal/tables"
)

// Program config element limits.
// Ported from: e_progconfig_const.h in aacdec
const (
	maxFrontElements = 15
	maxSideElements  = 15
	maxBackElements  = 15
	maxLFEElements   = 3
	maxAssocData     = 7
	maxValidCC       = 15
	maxCommentBytes  = 255
)

// pceTaggedElement is one channel element reference inside a program
// config: its instance tag plus whether it is a pair.
type pceTaggedElement struct {
	IsCPE bool
	Tag   uint8
}

// ProgramConfig is a decoded program_config_element(). Only the fields
// needed to derive the channel layout are retained after validation.
type ProgramConfig struct {
	InstanceTag uint8
	ObjectType  int
	SRIndex     uint8

	NumFront int
	NumSide  int
	NumBack  int
	NumLFE   int

	MonoMixdown    int // -1 when absent
	StereoMixdown  int
	MatrixMixdown  int
	PseudoSurround bool

	Front [maxFrontElements]pceTaggedElement
	Side  [maxSideElements]pceTaggedElement
	Back  [maxBackElements]pceTaggedElement
	LFE   [maxLFEElements]uint8
}

// ParseProgramConfig decodes program_config_element(). The comment
// field is consumed and discarded.
//
// Ported from: get_prog_config() in aacdec/get_prog_config.cpp
func ParseProgramConfig(r *bits.Reader, pce *ProgramConfig) error {
	pce.InstanceTag = uint8(r.GetBits(4))
	pce.ObjectType = int(r.GetBits(2)) + 1
	pce.SRIndex = uint8(r.GetBits(4))
	if tables.SampleRate(pce.SRIndex) == 0 {
		return ErrSampleRateIndex
	}

	pce.NumFront = int(r.GetBits(4))
	pce.NumSide = int(r.GetBits(4))
	pce.NumBack = int(r.GetBits(4))
	pce.NumLFE = int(r.GetBits(2))
	numAssoc := int(r.GetBits(3))
	numCC := int(r.GetBits(4))

	pce.MonoMixdown = -1
	if r.Get1Bit() != 0 {
		pce.MonoMixdown = int(r.GetBits(4))
	}
	pce.StereoMixdown = -1
	if r.Get1Bit() != 0 {
		pce.StereoMixdown = int(r.GetBits(4))
	}
	pce.MatrixMixdown = -1
	if r.Get1Bit() != 0 {
		pce.MatrixMixdown = int(r.GetBits(2))
		pce.PseudoSurround = r.Get1Bit() != 0
	}

	for i := 0; i < pce.NumFront; i++ {
		pce.Front[i].IsCPE = r.Get1Bit() != 0
		pce.Front[i].Tag = uint8(r.GetBits(4))
	}
	for i := 0; i < pce.NumSide; i++ {
		pce.Side[i].IsCPE = r.Get1Bit() != 0
		pce.Side[i].Tag = uint8(r.GetBits(4))
	}
	for i := 0; i < pce.NumBack; i++ {
		pce.Back[i].IsCPE = r.Get1Bit() != 0
		pce.Back[i].Tag = uint8(r.GetBits(4))
	}
	for i := 0; i < pce.NumLFE; i++ {
		pce.LFE[i] = uint8(r.GetBits(4))
	}
	for i := 0; i < numAssoc; i++ {
		r.GetBits(4)
	}
	for i := 0; i < numCC; i++ {
		r.Get1Bit()
		r.GetBits(4)
	}

	r.ByteAlign()
	commentBytes := int(r.GetBits(8))
	for i := 0; i < commentBytes; i++ {
		r.GetBits(8)
	}
	if r.Overrun() {
		return ErrProgramConfig
	}
	return nil
}

// Channels reports the channel count a program config describes, or an
// error when the layout is outside the mono/stereo programs this
// decoder accepts: exactly one front SCE or one front CPE, no side,
// back or LFE elements.
//
// Ported from: the front-channel checks in aacdec/get_prog_config.cpp
func (pce *ProgramConfig) Channels() (int, error) {
	if pce.NumFront != 1 || pce.NumSide != 0 || pce.NumBack != 0 || pce.NumLFE != 0 {
		return 0, ErrProgramConfig
	}
	if pce.Front[0].IsCPE {
		return 2, nil
	}
	return 1, nil
}
