package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brushplot/models"
	"brushplot/scale"
	"brushplot/state"
)

var fields = Fields{X: "x", Y: "y", Radius: "r", Color: "cat"}

func example() []models.Record {
	return []models.Record{
		{"x": 1, "y": 1, "r": 2, "cat": "A", "Model": "m1", "Type": "t1"},
		{"x": 10, "y": 10, "r": 4, "cat": "B", "Model": "m2", "Type": "t2"},
	}
}

func newCoordinator() *Coordinator {
	return NewCoordinator(state.New("test", nil), zerolog.Nop())
}

func render(t *testing.T, co *Coordinator, data []models.Record, target string, opts ...Option) *Chart {
	t.Helper()
	c, err := co.Render(data, target, fields, opts...)
	require.NoError(t, err)
	return c
}

func selectedKeys(c *Chart) []string {
	var keys []string
	for _, m := range c.Markers() {
		if m.Selected {
			keys = append(keys, m.Key)
		}
	}
	return keys
}

func TestRender_OneMarkerPerRecord(t *testing.T) {
	data := []models.Record{
		{"x": 3, "y": 40, "r": 1, "cat": "A", "Model": "a"},
		{"x": 7, "y": 10, "r": 9, "cat": "B", "Model": "b"},
		{"x": 5, "y": 25, "r": 4, "cat": "A", "Model": "c"},
		{"x": 1, "y": 30, "r": 2, "cat": "C", "Model": "d"},
	}
	c := render(t, newCoordinator(), data, "#scatter")

	markers := c.Markers()
	require.Len(t, markers, len(data))
	for i, m := range markers {
		assert.Equal(t, i, m.Index)
		assert.GreaterOrEqual(t, m.CX, 50.0)
		assert.LessOrEqual(t, m.CX, 950.0)
		assert.GreaterOrEqual(t, m.CY, 50.0)
		assert.LessOrEqual(t, m.CY, 950.0)
		assert.GreaterOrEqual(t, m.R, float64(MIN_RADIUS))
		assert.LessOrEqual(t, m.R, float64(MAX_RADIUS))
		assert.Equal(t, models.ACTIVE_OPACITY, m.Opacity)
	}

	assert.Equal(t, "scatter", c.Key())
	assert.Equal(t, "scatter-marker-0", markers[0].ID)
	assert.Equal(t, []string{"A", "B", "C"}, c.Categories())
	assert.Equal(t, scale.Tableau10[0], markers[0].Fill)
	assert.Equal(t, scale.Tableau10[1], markers[1].Fill)
	assert.Equal(t, scale.Tableau10[0], markers[2].Fill)
	assert.Equal(t, scale.Tableau10[2], markers[3].Fill)

	// Highest y sits at the top of the plot
	assert.Less(t, markers[0].CY, markers[1].CY)
}

func TestRender_PaddedDomains(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter", WithMargin(20))

	x := c.XScale()
	assert.InDelta(t, 0.55, x.Domain[0], 1e-9)
	assert.InDelta(t, 10.45, x.Domain[1], 1e-9)
	assert.Equal(t, [2]float64{20, 980}, x.Range)
	assert.Equal(t, [2]float64{980, 20}, c.YScale().Range)
	assert.Equal(t, [2]float64{2, 4}, c.RScale().Domain)
	assert.Equal(t, models.Rect{X0: 20, Y0: 20, X1: 980, Y1: 980}, c.BrushExtent())
}

func TestRender_Axes(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter", WithTitle("Example"))

	assert.Equal(t, "Example", c.Title())
	axes := c.Axes()
	require.Len(t, axes, 2)
	assert.Equal(t, models.Bottom, axes[0].Orientation)
	assert.Equal(t, "x", axes[0].Label)
	assert.Equal(t, 950.0, axes[0].Translate)
	assert.Equal(t, models.Left, axes[1].Orientation)
	assert.Equal(t, "y", axes[1].Label)
	assert.Equal(t, 50.0, axes[1].Translate)
	for _, axis := range axes {
		assert.NotEmpty(t, axis.Ticks)
		assert.LessOrEqual(t, len(axis.Ticks), TICK_COUNT)
	}
}

func TestRender_ValidatesFieldNames(t *testing.T) {
	co := newCoordinator()

	_, err := co.Render(example(), "#scatter", Fields{Y: "y", Radius: "r", Color: "cat"})
	require.ErrorIs(t, err, ErrMissingField)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "x", fieldErr.Field)

	_, err = co.Render(example(), "#scatter", Fields{X: "x", Y: "y", Radius: "r"})
	require.ErrorIs(t, err, ErrMissingField)

	_, err = co.Render(example(), " # ", fields)
	require.ErrorIs(t, err, ErrMissingTarget)

	assert.Empty(t, co.Charts())
}

func TestRender_DefaultIdentifyingFields(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter")
	assert.Equal(t, DEFAULT_ID_FIELD, c.Fields().ID)
	assert.Equal(t, DEFAULT_LABEL_FIELD, c.Fields().Label)
	assert.Equal(t, "m1", c.Markers()[0].Key)
}

func TestRender_ColorsAreDeterministic(t *testing.T) {
	a := render(t, newCoordinator(), example(), "#a")
	b := render(t, newCoordinator(), example(), "#a")
	for i, m := range a.Markers() {
		assert.Equal(t, m.Fill, b.Markers()[i].Fill)
	}
}

func TestRender_ClassNameReplacesWhitespace(t *testing.T) {
	data := []models.Record{{"x": 1, "y": 1, "r": 1, "cat": "Sports Car\tCoupe"}}
	c := render(t, newCoordinator(), data, "#scatter")
	assert.Equal(t, "Sports_Car_Coupe", c.Markers()[0].ClassName)
	assert.Equal(t, "Sports Car\tCoupe", c.Markers()[0].Category)
}

func TestRender_ReplacesSameTarget(t *testing.T) {
	co := newCoordinator()
	render(t, co, example(), "#scatter")
	second := render(t, co, example()[:1], "scatter")

	require.Len(t, co.Charts(), 1)
	got, err := co.Chart("scatter")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRender_FirstRenderInitialisesActiveCategories(t *testing.T) {
	co := newCoordinator()
	render(t, co, example(), "#a")
	co.State().Toggle("a", "A")

	other := []models.Record{
		{"x": 1, "y": 1, "r": 1, "cat": "A", "Model": "m1"},
		{"x": 2, "y": 2, "r": 1, "cat": "C", "Model": "m3"},
	}
	b := render(t, co, other, "#b")

	// The active set is not re-initialised, so A stays dimmed and C, never seen by the first render, starts dimmed
	markers := b.Markers()
	assert.Equal(t, models.INACTIVE_OPACITY, markers[0].Opacity)
	assert.Equal(t, models.INACTIVE_OPACITY, markers[1].Opacity)
	assert.Equal(t, []string{"B"}, co.State().ActiveCategories())
}

func TestRender_DegradedInput(t *testing.T) {
	data := []models.Record{
		{"x": "fast", "y": 2, "r": 1, "cat": "A"},
		{"y": 3, "r": "big", "cat": "A"},
		{"x": "4", "y": "5", "r": 2},
	}
	c := render(t, newCoordinator(), data, "#scatter")

	markers := c.Markers()
	require.Len(t, markers, 3)
	assert.True(t, math.IsNaN(markers[0].CX))
	assert.True(t, math.IsNaN(markers[1].CX))
	assert.True(t, math.IsNaN(markers[1].R))
	assert.Equal(t, "undefined", markers[2].Category)
	assert.Equal(t, "undefined", markers[2].Key)

	// Only one usable x, so the x domain collapses onto it
	assert.Equal(t, 500.0, markers[2].CX)

	results := c.SelectData(3, 5, 4, 6)
	assert.Equal(t, []string{"undefined - undefined"}, results)
}

func TestRender_EmptyData(t *testing.T) {
	c := render(t, newCoordinator(), nil, "#scatter", WithLegend("A"))
	assert.Empty(t, c.Markers())
	for _, axis := range c.Axes() {
		assert.Empty(t, axis.Ticks)
	}
	require.Len(t, c.Legend(), 1)
	assert.Empty(t, c.SelectData(0, 10, 0, 10))
}

func TestLegend(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter", WithLegend("B", "A", "Z"))

	legend := c.Legend()
	require.Len(t, legend, 3)
	assert.Equal(t, "B", legend[0].Label)
	assert.Equal(t, scale.Tableau10[1], legend[0].Fill)
	assert.Equal(t, scale.Tableau10[0], legend[1].Fill)
	// Z has no data, it takes the next colour after the data's categories
	assert.Equal(t, scale.Tableau10[2], legend[2].Fill)
	for i, entry := range legend {
		assert.Equal(t, float64(i*LEGEND_STEP), entry.Y)
		assert.Equal(t, models.LEGEND_ACTIVE_OPACITY, entry.Opacity)
	}
	assert.Equal(t, 800.0, c.LegendX())
}

func TestSelectData_Example(t *testing.T) {
	co := newCoordinator()
	c := render(t, co, example(), "#scatter")

	c.BrushStart()
	results := c.SelectData(0, 5, 0, 5)

	assert.Equal(t, []string{"m1 - t1"}, results)
	assert.Equal(t, []string{"m1 - t1"}, co.State().Results())
	assert.Equal(t, []string{"m1"}, selectedKeys(c))
}

func TestBrush_PixelRectangle(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter")

	x, y := c.XScale(), c.YScale()
	rect := &models.Rect{X0: x.Apply(0), Y0: y.Apply(5), X1: x.Apply(5), Y1: y.Apply(0)}

	c.BrushStart()
	assert.Equal(t, []string{"m1 - t1"}, c.Brush(rect))
	assert.Equal(t, []string{"m1"}, selectedKeys(c))
}

func TestBrush_InclusiveEdges(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter")
	markers := c.Markers()

	// The rectangle's corners sit exactly on the two markers
	rect := &models.Rect{X0: markers[0].CX, Y0: markers[1].CY, X1: markers[1].CX, Y1: markers[0].CY}
	assert.Equal(t, []string{"m1 - t1", "m2 - t2"}, c.Brush(rect))

	assert.Equal(t, []string{"m1 - t1"}, c.SelectData(1, 1, 1, 1))
}

func TestBrush_NilSelection(t *testing.T) {
	c := render(t, newCoordinator(), example(), "#scatter")
	c.SelectData(0, 20, 0, 20)
	require.Len(t, selectedKeys(c), 2)

	c.BrushStart()
	assert.Nil(t, c.Brush(nil))
	assert.Empty(t, selectedKeys(c))
}

func TestBrush_ComparesRawFields(t *testing.T) {
	data := []models.Record{
		{"x": "2", "y": "2", "r": 1, "cat": "A", "Model": "text", "Type": "t"},
		{"x": "two", "y": 2, "r": 1, "cat": "A", "Model": "word", "Type": "t"},
		{"x": 8, "y": 8, "r": 1, "cat": "A", "Model": "far", "Type": "t"},
	}
	c := render(t, newCoordinator(), data, "#scatter")
	assert.Equal(t, []string{"text - t"}, c.SelectData(0, 5, 0, 5))
}

func TestBrush_SyncsAcrossCharts(t *testing.T) {
	co := newCoordinator()
	a := render(t, co, example(), "#a")

	other := []models.Record{
		{"w": 100, "h": 5, "s": 1, "kind": "B", "Model": "m2", "Type": "t2"},
		{"w": 300, "h": 1, "s": 1, "kind": "A", "Model": "m1", "Type": "t1"},
		{"w": 200, "h": 3, "s": 1, "kind": "A", "Model": "m9", "Type": "t9"},
	}
	b, err := co.Render(other, "#b", Fields{X: "w", Y: "h", Radius: "s", Color: "kind"})
	require.NoError(t, err)

	a.BrushStart()
	results := a.SelectData(0, 5, 0, 5)

	assert.Equal(t, []string{"m1 - t1"}, results)
	assert.Equal(t, []string{"m1"}, selectedKeys(a))
	assert.Equal(t, []string{"m1"}, selectedKeys(b), "b follows a's selection without being brushed")

	b.BrushStart()
	assert.Empty(t, selectedKeys(a))
	assert.Empty(t, selectedKeys(b))
	assert.Empty(t, co.State().Results())
}

func TestToggleCategory_DoubleToggleRestores(t *testing.T) {
	co := newCoordinator()
	c := render(t, co, example(), "#scatter", WithLegend("A", "B"))
	before := c.Markers()

	assert.False(t, c.ToggleCategory("A"))
	markers := c.Markers()
	assert.Equal(t, models.INACTIVE_OPACITY, markers[0].Opacity)
	assert.Equal(t, models.ACTIVE_OPACITY, markers[1].Opacity)
	assert.Equal(t, models.LEGEND_INACTIVE_OPACITY, c.Legend()[0].Opacity)
	assert.Equal(t, models.LEGEND_ACTIVE_OPACITY, c.Legend()[1].Opacity)

	assert.True(t, c.ToggleCategory("A"))
	assert.Equal(t, before, c.Markers())
	assert.Equal(t, models.LEGEND_ACTIVE_OPACITY, c.Legend()[0].Opacity)
}

func TestToggleCategory_SyncsAcrossCharts(t *testing.T) {
	co := newCoordinator()
	a := render(t, co, example(), "#a", WithLegend("A", "B"))

	other := []models.Record{{"x": 1, "y": 1, "r": 1, "cat": "A"}}
	b := render(t, co, other, "#b", WithLegend("B", "A"))

	active, err := co.ToggleCategory("b", "A")
	require.NoError(t, err)
	assert.False(t, active)

	assert.Equal(t, models.INACTIVE_OPACITY, a.Markers()[0].Opacity)
	assert.Equal(t, models.INACTIVE_OPACITY, b.Markers()[0].Opacity)
	assert.Equal(t, models.LEGEND_INACTIVE_OPACITY, a.Legend()[0].Opacity)
	assert.Equal(t, models.LEGEND_INACTIVE_OPACITY, b.Legend()[1].Opacity)
	assert.Equal(t, models.LEGEND_ACTIVE_OPACITY, b.Legend()[0].Opacity)
}

func TestToggleCategory_UnknownChart(t *testing.T) {
	co := newCoordinator()
	_, err := co.ToggleCategory("missing", "A")
	require.ErrorIs(t, err, ErrUnknownChart)
}

func TestBrush_PointOnMarkerOverWideDomain(t *testing.T) {
	data := []models.Record{
		{"x": 0.1, "y": 0.1, "r": 1, "cat": "A", "Model": "small"},
		{"x": 0.3, "y": 0.3, "r": 1, "cat": "A", "Model": "close"},
		{"x": 1e9, "y": 1e9, "r": 1, "cat": "A", "Model": "huge"},
	}
	c := render(t, newCoordinator(), data, "#scatter")

	for _, m := range c.Markers() {
		c.BrushStart()
		c.Brush(&models.Rect{X0: m.CX, Y0: m.CY, X1: m.CX, Y1: m.CY})
		assert.Contains(t, selectedKeys(c), m.Key, "a zero-width brush on %s selects it", m.Key)
	}

	c.BrushStart()
	c.Brush(&models.Rect{X0: 50, Y0: 50, X1: 950, Y1: 950})
	assert.Equal(t, []string{"small", "close", "huge"}, selectedKeys(c))
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, 1e-9, tolerance([2]float64{0, 1}, 0.2, 0.4))
	assert.InDelta(t, 1.1, tolerance([2]float64{-5e7, 1.05e9}, 0.1, 0.1), 1e-6)
	assert.Equal(t, 1e-9, tolerance([2]float64{math.NaN(), math.NaN()}, math.NaN(), math.NaN()))
	assert.True(t, within(1, 0, 1, 0))
	assert.False(t, within(1.1, 0, 1, 0))
}
