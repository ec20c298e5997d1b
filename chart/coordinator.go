package chart

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"brushplot/models"
	"brushplot/state"
)

// Coordinator is the registry of every chart on one page. Legend toggles and brushes in any chart are applied to
// all of them through it.
type Coordinator struct {
	mu     sync.Mutex
	ui     *state.UIState
	log    zerolog.Logger
	charts []*Chart
}

func NewCoordinator(ui *state.UIState, log zerolog.Logger) *Coordinator {
	if ui == nil {
		ui = state.New("", nil)
	}
	return &Coordinator{
		ui:  ui,
		log: log,
	}
}

func (co *Coordinator) State() *state.UIState {
	return co.ui
}

// Charts lists the registered charts in the order they were first rendered.
func (co *Coordinator) Charts() []*Chart {
	co.mu.Lock()
	defer co.mu.Unlock()
	return append([]*Chart(nil), co.charts...)
}

func (co *Coordinator) Chart(key string) (*Chart, error) {
	co.mu.Lock()
	defer co.mu.Unlock()
	c, ok := lo.Find(co.charts, func(c *Chart) bool {
		return c.key == key
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, key)
	}
	return c, nil
}

func (co *Coordinator) register(c *Chart) {
	co.mu.Lock()
	defer co.mu.Unlock()
	_, i, ok := lo.FindIndexOf(co.charts, func(existing *Chart) bool {
		return existing.key == c.key
	})
	if ok {
		co.charts[i] = c
		return
	}
	co.charts = append(co.charts, c)
}

// ToggleCategory toggles a category from the legend of the chart with the given key.
func (co *Coordinator) ToggleCategory(key, category string) (bool, error) {
	c, err := co.Chart(key)
	if err != nil {
		return false, err
	}
	return c.ToggleCategory(category), nil
}

func (co *Coordinator) toggleCategory(from *Chart, category string) bool {
	co.mu.Lock()
	defer co.mu.Unlock()

	nowActive := co.ui.Toggle(from.key, category)

	for _, c := range co.charts {
		for i := range c.markers {
			if c.markers[i].Category == category {
				c.markers[i].Opacity = markerOpacity(nowActive)
			}
		}
		// Legends are matched on their text, a chart may list a category it has no data for
		for i := range c.legend {
			if c.legend[i].Label == category {
				c.legend[i].Opacity = legendOpacity(nowActive)
			}
		}
	}

	from.log.Debug().Str("category", category).Bool("active", nowActive).Msg("toggled category")
	return nowActive
}

func (co *Coordinator) brushStart(from *Chart) {
	co.mu.Lock()
	defer co.mu.Unlock()

	for _, c := range co.charts {
		for i := range c.markers {
			c.markers[i].Selected = false
		}
	}
	co.ui.ClearSelection(from.key)
}

func (co *Coordinator) brush(from *Chart, selection *models.Rect) []string {
	if selection == nil {
		return nil
	}

	r := selection.Normalise().Clamp(from.brush)

	// Pixel y grows downwards, so the bottom edge is the low data value
	x0 := from.xScale.Invert(r.X0)
	x1 := from.xScale.Invert(r.X1)
	y0 := from.yScale.Invert(r.Y1)
	y1 := from.yScale.Invert(r.Y0)

	return co.selectData(from, x0, x1, y0, y1)
}

func (co *Coordinator) selectData(from *Chart, x0, x1, y0, y1 float64) []string {
	co.mu.Lock()
	defer co.mu.Unlock()

	x0, x1 = math.Min(x0, x1), math.Max(x0, x1)
	y0, y1 = math.Min(y0, y1), math.Max(y0, y1)

	xEps := tolerance(from.xScale.Domain, x0, x1)
	yEps := tolerance(from.yScale.Domain, y0, y1)

	var keys, results []string
	for _, m := range from.markers {
		x := m.Record.Number(from.fields.X)
		y := m.Record.Number(from.fields.Y)
		if within(x, x0, x1, xEps) && within(y, y0, y1, yEps) {
			keys = append(keys, m.Key)
			results = append(results, m.Key+" - "+m.Record.Label(from.fields.Label))
		}
	}

	for _, c := range co.charts {
		for i := range c.markers {
			c.markers[i].Selected = lo.Contains(keys, c.markers[i].Key)
		}
	}
	co.ui.SetSelection(from.key, keys, results)

	from.log.Debug().
		Float64("x0", x0).Float64("x1", x1).Float64("y0", y0).Float64("y1", y1).
		Int("selected", len(keys)).
		Msg("brushed")
	return results
}

// tolerance is how far outside [low, high] a value may sit and still count as inside. Bounds inverted from pixels
// carry rounding error proportional to the scale's domain, not to the brushed range.
func tolerance(domain [2]float64, low, high float64) float64 {
	magnitude := 1.0
	for _, v := range []float64{domain[0], domain[1], domain[1] - domain[0], low, high} {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			magnitude = math.Max(magnitude, math.Abs(v))
		}
	}
	return 1e-9 * magnitude
}

// within is an inclusive range test.
func within(v, low, high, eps float64) bool {
	return v >= low-eps && v <= high+eps
}
