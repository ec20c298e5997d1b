package scale

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extent returns [min, max] of values, skipping NaN. Empty or all-NaN input gives [NaN, NaN].
func Extent(values []float64) [2]float64 {
	if len(values) == 0 {
		return [2]float64{math.NaN(), math.NaN()}
	}
	return [2]float64{floats.Min(values), floats.Max(values)}
}

// Pad grows an extent by frac of its span on each side. A zero span stays as it is.
func Pad(extent [2]float64, frac float64) [2]float64 {
	pad := (extent[1] - extent[0]) * frac
	return [2]float64{extent[0] - pad, extent[1] + pad}
}
