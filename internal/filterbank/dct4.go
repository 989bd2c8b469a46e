// internal/filterbank/dct4.go
package filterbank

import "math"

// dct4Plan computes an M-point DCT-IV through an M/2-point complex
// FFT: pre-twiddle pairs of inputs, transform, post-twiddle. With the
// FFT's built-in 1/(M/2) factor the output is DCT4(x)*2/M.
type dct4Plan struct {
	m     int
	fft   *fftPlan
	preRe []int32 // Q30, e^(-j*pi*(r+1/4)/M)
	preIm []int32
	pstRe []int32 // Q30, e^(-j*pi*q/M)
	pstIm []int32
}

func newDCT4Plan(m int) *dct4Plan {
	l := m / 2
	p := &dct4Plan{
		m:     m,
		fft:   newFFTPlan(l),
		preRe: make([]int32, l),
		preIm: make([]int32, l),
		pstRe: make([]int32, l),
		pstIm: make([]int32, l),
	}
	for r := 0; r < l; r++ {
		a := -math.Pi * (float64(r) + 0.25) / float64(m)
		p.preRe[r] = int32(math.Round(math.Cos(a) * (1 << 30)))
		p.preIm[r] = int32(math.Round(math.Sin(a) * (1 << 30)))

		b := -math.Pi * float64(r) / float64(m)
		p.pstRe[r] = int32(math.Round(math.Cos(b) * (1 << 30)))
		p.pstIm[r] = int32(math.Round(math.Sin(b) * (1 << 30)))
	}
	return p
}

// transform computes the scaled DCT-IV of x in place. re and im are
// caller scratch of M/2 values each.
func (p *dct4Plan) transform(x, re, im []int32) {
	l := p.m / 2

	for r := 0; r < l; r++ {
		tr := int64(x[2*r])
		ti := int64(x[p.m-1-2*r])
		wr := int64(p.preRe[r])
		wi := int64(p.preIm[r])
		re[r] = int32((tr*wr - ti*wi) >> 30)
		im[r] = int32((tr*wi + ti*wr) >> 30)
	}

	p.fft.transform(re, im)

	for q := 0; q < l; q++ {
		wr := int64(p.pstRe[q])
		wi := int64(p.pstIm[q])
		yr := (int64(re[q])*wr - int64(im[q])*wi) >> 30
		yi := (int64(re[q])*wi + int64(im[q])*wr) >> 30
		x[2*q] = int32(yr)
		x[p.m-1-2*q] = int32(-yi)
	}
}
