package chart

import (
	"fmt"
	"strings"
	"unicode"

	"brushplot/events"
	"brushplot/models"
	"brushplot/scale"
)

// Render draws data as a scatter plot into target and registers it with the coordinator, replacing any chart
// previously rendered into the same target. Only the field names are validated: records with missing or
// non-numeric values still render, as markers at NaN that nothing will show.
func (co *Coordinator) Render(data []models.Record, target string, fields Fields, opts ...Option) (*Chart, error) {
	key := strings.TrimPrefix(strings.TrimSpace(target), "#")
	if key == "" {
		return nil, ErrMissingTarget
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}
	fields = fields.withDefaults()

	s := &settings{
		margin: DEFAULT_MARGIN,
		size:   DEFAULT_SIZE,
		log:    co.log,
	}
	for _, opt := range opts {
		opt(s)
	}

	X := models.Numbers(data, fields.X)
	Y := models.Numbers(data, fields.Y)
	R := models.Numbers(data, fields.Radius)

	categories := models.Categories(data, fields.Color)
	if co.ui.InitCategories(categories) {
		s.log.Debug().Strs("categories", categories).Msg("initialised active categories")
	}

	c := &Chart{
		coord:      co,
		log:        s.log.With().Str("chart", key).Logger(),
		key:        key,
		title:      s.title,
		fields:     fields,
		margin:     s.margin,
		size:       s.size,
		data:       data,
		categories: categories,
		colors:     scale.NewOrdinal(categories, scale.Tableau10),
	}

	xDomain := scale.Pad(scale.Extent(X), DOMAIN_PAD)
	yDomain := scale.Pad(scale.Extent(Y), DOMAIN_PAD)
	c.xScale = scale.NewLinear(xDomain, [2]float64{s.margin, s.size - s.margin})
	c.yScale = scale.NewLinear(yDomain, [2]float64{s.size - s.margin, s.margin})
	c.rScale = scale.NewSqrt(scale.Extent(R), [2]float64{MIN_RADIUS, MAX_RADIUS})

	c.markers = make([]models.Marker, len(data))
	for i, record := range data {
		category := record.Label(fields.Color)
		c.markers[i] = models.Marker{
			Index:     i,
			Record:    record,
			ID:        fmt.Sprintf("%s-marker-%d", key, i),
			Key:       record.Label(fields.ID),
			CX:        c.xScale.Apply(X[i]),
			CY:        c.yScale.Apply(Y[i]),
			R:         c.rScale.Apply(R[i]),
			Fill:      c.colors.Color(category),
			Category:  category,
			ClassName: ClassName(category),
			Opacity:   markerOpacity(co.ui.IsActive(category)),
		}
	}

	c.axes = []models.Axis{
		{
			Orientation: models.Bottom,
			Label:       fields.X,
			Translate:   s.size - s.margin,
			Start:       s.margin,
			End:         s.size - s.margin,
			Ticks:       scale.Ticks(xDomain, TICK_COUNT, c.xScale.Apply),
		},
		{
			Orientation: models.Left,
			Label:       fields.Y,
			Translate:   s.margin,
			Start:       s.margin,
			End:         s.size - s.margin,
			Ticks:       scale.Ticks(yDomain, TICK_COUNT, c.yScale.Apply),
		},
	}

	c.legend = make([]models.LegendEntry, len(s.legend))
	for i, category := range s.legend {
		c.legend[i] = models.LegendEntry{
			Label:   category,
			Fill:    c.colors.Color(category),
			Opacity: models.LEGEND_ACTIVE_OPACITY,
			Y:       float64(i * LEGEND_STEP),
		}
	}

	c.brush = models.Rect{X0: s.margin, Y0: s.margin, X1: s.size - s.margin, Y1: s.size - s.margin}

	co.register(c)
	co.ui.Notify(events.ChartRendered, key)
	c.log.Debug().Int("markers", len(c.markers)).Int("legend", len(c.legend)).Msg("rendered chart")

	return c, nil
}

// LegendX is where the legend's left edge sits.
func (c *Chart) LegendX() float64 {
	return c.size - LEGEND_INSET
}

// ClassName replaces every whitespace character of a category so it can be used as a CSS class.
func ClassName(category string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, category)
}

func markerOpacity(active bool) float64 {
	if active {
		return models.ACTIVE_OPACITY
	}
	return models.INACTIVE_OPACITY
}

func legendOpacity(active bool) float64 {
	if active {
		return models.LEGEND_ACTIVE_OPACITY
	}
	return models.LEGEND_INACTIVE_OPACITY
}
