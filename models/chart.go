package models

// ChartDefinition is the static configuration of one scatter plot on the page.
type ChartDefinition struct {
	// key is the identifier and the chart's element id.
	key string
	// title is drawn bold above the plot.
	title string
	// xField, yField and radiusField name the numeric fields for position and size.
	xField      string
	yField      string
	radiusField string
	// colorField names the category field, used for colour and legend grouping.
	colorField string
	// legend lists the categories to show in the legend, in display order. It doesn't have to match the data.
	legend []string
	// margin insets the plot area from every edge of the drawing area.
	margin float64
	// layoutPriority determines what order in the ui this chart should be shown
	layoutPriority uint8
}

func NewChartDefinition(
	key,
	title,
	xField,
	yField,
	radiusField,
	colorField string,
	legend []string,
	margin float64,
	layoutPriority uint8,
) *ChartDefinition {
	return &ChartDefinition{
		key,
		title,
		xField,
		yField,
		radiusField,
		colorField,
		legend,
		margin,
		layoutPriority,
	}
}

func (c *ChartDefinition) Key() string {
	return c.key
}

func (c *ChartDefinition) Title() string {
	return c.title
}

func (c *ChartDefinition) XField() string {
	return c.xField
}

func (c *ChartDefinition) YField() string {
	return c.yField
}

func (c *ChartDefinition) RadiusField() string {
	return c.radiusField
}

func (c *ChartDefinition) ColorField() string {
	return c.colorField
}

func (c *ChartDefinition) Legend() []string {
	return c.legend
}

func (c *ChartDefinition) Margin() float64 {
	return c.margin
}

func (c *ChartDefinition) LayoutPriority() uint8 {
	return c.layoutPriority
}
