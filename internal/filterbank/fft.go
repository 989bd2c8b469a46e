// Package filterbank implements the fixed-point analysis and synthesis
// filterbanks: IMDCT with window overlap-add for decoding, and the
// forward MDCT the long-term predictor feeds. Transforms run on int32
// mantissas; all twiddle and window tables are built once at init.
package filterbank

import (
	"math"
	mathbits "math/bits"
)

// fftPlan is a radix-2 in-place complex FFT with the e^(-j2*pi*rq/n)
// kernel. Every butterfly stage halves the data, so the output carries
// an implicit 1/n factor and stays inside int32 regardless of input.
type fftPlan struct {
	n    int
	rev  []int
	twRe []int32 // Q30
	twIm []int32 // Q30
}

func newFFTPlan(n int) *fftPlan {
	p := &fftPlan{
		n:    n,
		rev:  make([]int, n),
		twRe: make([]int32, n/2),
		twIm: make([]int32, n/2),
	}
	shift := uint(64 - mathbits.Len(uint(n-1)))
	for i := range p.rev {
		p.rev[i] = int(mathbits.Reverse64(uint64(i)) >> shift)
	}
	for i := 0; i < n/2; i++ {
		a := -2 * math.Pi * float64(i) / float64(n)
		p.twRe[i] = int32(math.Round(math.Cos(a) * (1 << 30)))
		p.twIm[i] = int32(math.Round(math.Sin(a) * (1 << 30)))
	}
	return p
}

// transform runs the FFT in place. re and im must each hold n values.
func (p *fftPlan) transform(re, im []int32) {
	for i, j := range p.rev {
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for span := 1; span < p.n; span <<= 1 {
		step := p.n / (2 * span)
		for base := 0; base < p.n; base += 2 * span {
			for k := 0; k < span; k++ {
				wr := int64(p.twRe[k*step])
				wi := int64(p.twIm[k*step])
				i := base + k
				j := i + span

				tr := int32((int64(re[j])*wr - int64(im[j])*wi) >> 30)
				ti := int32((int64(re[j])*wi + int64(im[j])*wr) >> 30)

				// >>1 per stage keeps every value inside int32.
				re[j] = (re[i] - tr) >> 1
				im[j] = (im[i] - ti) >> 1
				re[i] = (re[i] + tr) >> 1
				im[i] = (im[i] + ti) >> 1
			}
		}
	}
}
