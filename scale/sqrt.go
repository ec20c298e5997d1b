package scale

import "math"

// Sqrt is a power scale with exponent 0.5: the area of a circle sized by it grows linearly with the value.
type Sqrt struct {
	Domain [2]float64
	Range  [2]float64
}

func NewSqrt(domain, rng [2]float64) Sqrt {
	return Sqrt{Domain: domain, Range: rng}
}

func (s Sqrt) Apply(x float64) float64 {
	d := [2]float64{signedSqrt(s.Domain[0]), signedSqrt(s.Domain[1])}
	return interpolate(s.Range, normalise(d, signedSqrt(x)))
}

// Invert maps a range value back to the domain.
func (s Sqrt) Invert(px float64) float64 {
	d := [2]float64{signedSqrt(s.Domain[0]), signedSqrt(s.Domain[1])}
	v := interpolate(d, normalise(s.Range, px))
	if v < 0 {
		return -v * v
	}
	return v * v
}

// signedSqrt keeps the sign so negative domains still scale symmetrically.
func signedSqrt(x float64) float64 {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}
