// Package scale maps data domains onto pixel ranges.
package scale

import "math"

// Linear maps Domain onto Range with a straight line. Values outside the domain extrapolate, nothing is clamped.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

func NewLinear(domain, rng [2]float64) Linear {
	return Linear{Domain: domain, Range: rng}
}

// Apply maps a domain value to the range. A degenerate domain sends every value to the middle of the range.
func (s Linear) Apply(x float64) float64 {
	return interpolate(s.Range, normalise(s.Domain, x))
}

// Invert maps a range value back to the domain.
func (s Linear) Invert(px float64) float64 {
	return interpolate(s.Domain, normalise(s.Range, px))
}

// normalise returns where x sits between d[0] (0) and d[1] (1).
func normalise(d [2]float64, x float64) float64 {
	span := d[1] - d[0]
	switch {
	case math.IsNaN(span):
		return math.NaN()
	case span == 0:
		return 0.5
	}
	return (x - d[0]) / span
}

func interpolate(r [2]float64, t float64) float64 {
	return r[0]*(1-t) + r[1]*t
}
