package scale

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/plot"

	"brushplot/models"
)

// Ticks returns at most count labelled ticks for the domain, positioned by place. An unusable domain (NaN, infinite)
// has no ticks, a zero-width domain has the one.
func Ticks(domain [2]float64, count int, place func(float64) float64) []models.Tick {
	lo0, hi := math.Min(domain[0], domain[1]), math.Max(domain[0], domain[1])
	if count <= 0 || math.IsNaN(lo0) || math.IsNaN(hi) || math.IsInf(lo0, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo0 == hi {
		return []models.Tick{{Pos: place(lo0), Label: models.FormatNumber(lo0)}}
	}

	majors := lo.Filter(plot.DefaultTicks{}.Ticks(lo0, hi), func(t plot.Tick, _ int) bool {
		return !t.IsMinor()
	})

	// Thin evenly rather than truncating so the ticks still span the axis
	if len(majors) > count {
		step := int(math.Ceil(float64(len(majors)) / float64(count)))
		majors = lo.Filter(majors, func(_ plot.Tick, i int) bool {
			return i%step == 0
		})
	}

	return lo.Map(majors, func(t plot.Tick, _ int) models.Tick {
		return models.Tick{Pos: place(t.Value), Label: t.Label}
	})
}
