// Package chart turns records into a scatter plot scene and keeps the scenes of every chart on a page in step:
// legend toggles dim categories everywhere and a brush in one chart selects the same records in all of them.
package chart

import (
	"github.com/rs/zerolog"

	"brushplot/models"
	"brushplot/scale"
)

// Chart is one rendered scatter plot. Its scene (markers, legend) is mutated by the coordinator it was rendered
// through, the accessors return copies taken under the coordinator's lock.
type Chart struct {
	coord *Coordinator
	log   zerolog.Logger

	key    string
	title  string
	fields Fields
	margin float64
	size   float64

	data       []models.Record
	categories []string
	colors     *scale.Ordinal

	xScale scale.Linear
	yScale scale.Linear
	rScale scale.Sqrt

	markers []models.Marker
	legend  []models.LegendEntry
	axes    []models.Axis
	brush   models.Rect
}

func (c *Chart) Key() string {
	return c.key
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) Fields() Fields {
	return c.fields
}

func (c *Chart) Margin() float64 {
	return c.margin
}

// Size is the side of the square drawing area.
func (c *Chart) Size() float64 {
	return c.size
}

// Categories are the distinct values of the colour field in first-seen order.
func (c *Chart) Categories() []string {
	return c.categories
}

func (c *Chart) XScale() scale.Linear {
	return c.xScale
}

func (c *Chart) YScale() scale.Linear {
	return c.yScale
}

func (c *Chart) RScale() scale.Sqrt {
	return c.rScale
}

// Color returns the palette colour of a category.
func (c *Chart) Color(category string) string {
	c.coord.mu.Lock()
	defer c.coord.mu.Unlock()
	return c.colors.Color(category)
}

// BrushExtent is the area a brush can cover: the plot minus its margins.
func (c *Chart) BrushExtent() models.Rect {
	return c.brush
}

func (c *Chart) Axes() []models.Axis {
	return c.axes
}

func (c *Chart) Markers() []models.Marker {
	c.coord.mu.Lock()
	defer c.coord.mu.Unlock()
	return append([]models.Marker(nil), c.markers...)
}

func (c *Chart) Legend() []models.LegendEntry {
	c.coord.mu.Lock()
	defer c.coord.mu.Unlock()
	return append([]models.LegendEntry(nil), c.legend...)
}

// ToggleCategory is what a click on a legend swatch or label does.
func (c *Chart) ToggleCategory(category string) bool {
	return c.coord.toggleCategory(c, category)
}

// BrushStart clears the selection on every chart of the page.
func (c *Chart) BrushStart() {
	c.coord.brushStart(c)
}

// Brush selects the records under a pixel rectangle and syncs the selection to every chart of the page. It returns
// the results list. A nil selection (a click without a drag) does nothing.
func (c *Chart) Brush(selection *models.Rect) []string {
	return c.coord.brush(c, selection)
}

// SelectData is Brush with the rectangle already in data space.
func (c *Chart) SelectData(x0, x1, y0, y1 float64) []string {
	return c.coord.selectData(c, x0, x1, y0, y1)
}
