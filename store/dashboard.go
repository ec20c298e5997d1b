package store

import (
	"maps"
	"slices"
	"sort"
	"sync"

	"brushplot/chart"
	"brushplot/models"
)

const (
	PERFORMANCE_CHART = "Performance"
	ECONOMY_CHART     = "Economy"
)

const (
	MODEL_FIELD      = "Model"
	TYPE_FIELD       = "Type"
	HORSEPOWER_FIELD = "Horsepower"
	MPG_FIELD        = "MPG"
	WEIGHT_FIELD     = "Weight"
	PRICE_FIELD      = "Price"
	CYLINDERS_FIELD  = "Cylinders"
)

// LegendCategories is the legend shown on every chart, in display order.
var LegendCategories = []string{"Sedan", "SUV", "Sports Car", "Wagon", "Minivan", "Pickup"}

var Cars = []models.Record{
	{MODEL_FIELD: "Accord", TYPE_FIELD: "Sedan", HORSEPOWER_FIELD: 192, MPG_FIELD: 32, WEIGHT_FIELD: 3131, PRICE_FIELD: 27295, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Camry", TYPE_FIELD: "Sedan", HORSEPOWER_FIELD: 203, MPG_FIELD: 32, WEIGHT_FIELD: 3310, PRICE_FIELD: 26420, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Civic", TYPE_FIELD: "Sedan", HORSEPOWER_FIELD: 158, MPG_FIELD: 36, WEIGHT_FIELD: 2906, PRICE_FIELD: 23950, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Charger", TYPE_FIELD: "Sedan", HORSEPOWER_FIELD: 292, MPG_FIELD: 23, WEIGHT_FIELD: 3934, PRICE_FIELD: 33125, CYLINDERS_FIELD: 6},
	{MODEL_FIELD: "RAV4", TYPE_FIELD: "SUV", HORSEPOWER_FIELD: 203, MPG_FIELD: 30, WEIGHT_FIELD: 3370, PRICE_FIELD: 28475, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Explorer", TYPE_FIELD: "SUV", HORSEPOWER_FIELD: 300, MPG_FIELD: 24, WEIGHT_FIELD: 4345, PRICE_FIELD: 36760, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Tahoe", TYPE_FIELD: "SUV", HORSEPOWER_FIELD: 355, MPG_FIELD: 17, WEIGHT_FIELD: 5602, PRICE_FIELD: 56200, CYLINDERS_FIELD: 8},
	{MODEL_FIELD: "CR-V", TYPE_FIELD: "SUV", HORSEPOWER_FIELD: 190, MPG_FIELD: 30, WEIGHT_FIELD: 3337, PRICE_FIELD: 29500, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Mustang", TYPE_FIELD: "Sports Car", HORSEPOWER_FIELD: 450, MPG_FIELD: 19, WEIGHT_FIELD: 3832, PRICE_FIELD: 42495, CYLINDERS_FIELD: 8},
	{MODEL_FIELD: "Corvette", TYPE_FIELD: "Sports Car", HORSEPOWER_FIELD: 490, MPG_FIELD: 19, WEIGHT_FIELD: 3535, PRICE_FIELD: 64500, CYLINDERS_FIELD: 8},
	{MODEL_FIELD: "MX-5", TYPE_FIELD: "Sports Car", HORSEPOWER_FIELD: 181, MPG_FIELD: 30, WEIGHT_FIELD: 2341, PRICE_FIELD: 29115, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "911", TYPE_FIELD: "Sports Car", HORSEPOWER_FIELD: 379, MPG_FIELD: 20, WEIGHT_FIELD: 3354, PRICE_FIELD: 114400, CYLINDERS_FIELD: 6},
	{MODEL_FIELD: "Outback", TYPE_FIELD: "Wagon", HORSEPOWER_FIELD: 182, MPG_FIELD: 29, WEIGHT_FIELD: 3634, PRICE_FIELD: 28895, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "V60", TYPE_FIELD: "Wagon", HORSEPOWER_FIELD: 247, MPG_FIELD: 28, WEIGHT_FIELD: 3947, PRICE_FIELD: 45000, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Odyssey", TYPE_FIELD: "Minivan", HORSEPOWER_FIELD: 280, MPG_FIELD: 22, WEIGHT_FIELD: 4398, PRICE_FIELD: 38510, CYLINDERS_FIELD: 6},
	{MODEL_FIELD: "Sienna", TYPE_FIELD: "Minivan", HORSEPOWER_FIELD: 245, MPG_FIELD: 36, WEIGHT_FIELD: 4610, PRICE_FIELD: 39185, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "F-150", TYPE_FIELD: "Pickup", HORSEPOWER_FIELD: 325, MPG_FIELD: 20, WEIGHT_FIELD: 4705, PRICE_FIELD: 36965, CYLINDERS_FIELD: 6},
	{MODEL_FIELD: "Tacoma", TYPE_FIELD: "Pickup", HORSEPOWER_FIELD: 278, MPG_FIELD: 21, WEIGHT_FIELD: 4445, PRICE_FIELD: 31500, CYLINDERS_FIELD: 4},
	{MODEL_FIELD: "Silverado", TYPE_FIELD: "Pickup", HORSEPOWER_FIELD: 355, MPG_FIELD: 18, WEIGHT_FIELD: 5215, PRICE_FIELD: 38200, CYLINDERS_FIELD: 8},
}

var DashboardCharts = map[string]*models.ChartDefinition{
	PERFORMANCE_CHART: models.NewChartDefinition(
		PERFORMANCE_CHART,
		"Power vs Efficiency",
		HORSEPOWER_FIELD, MPG_FIELD, WEIGHT_FIELD, TYPE_FIELD,
		LegendCategories,
		chart.DEFAULT_MARGIN,
		1,
	),
	ECONOMY_CHART: models.NewChartDefinition(
		ECONOMY_CHART,
		"Weight vs Price",
		WEIGHT_FIELD, PRICE_FIELD, CYLINDERS_FIELD, TYPE_FIELD,
		LegendCategories,
		chart.DEFAULT_MARGIN,
		2,
	),
}

var (
	orderedCharts     []*models.ChartDefinition
	orderedChartsOnce sync.Once
)

// OrderedCharts lists the dashboard charts by layout priority. Sessions are created concurrently, so it is built once.
func OrderedCharts() []*models.ChartDefinition {
	orderedChartsOnce.Do(func() {
		orderedCharts = slices.Collect(maps.Values(DashboardCharts))
		sort.Slice(orderedCharts, func(i, j int) bool {
			return orderedCharts[i].LayoutPriority() < orderedCharts[j].LayoutPriority()
		})
	})
	return orderedCharts
}

// RenderAll renders every dashboard chart of data through co, in layout order.
func RenderAll(co *chart.Coordinator, data []models.Record) error {
	for _, def := range OrderedCharts() {
		if _, err := Render(co, def, data); err != nil {
			return err
		}
	}
	return nil
}

// Render renders one chart definition over data.
func Render(co *chart.Coordinator, def *models.ChartDefinition, data []models.Record) (*chart.Chart, error) {
	return co.Render(
		data,
		def.Key(),
		chart.Fields{
			X:      def.XField(),
			Y:      def.YField(),
			Radius: def.RadiusField(),
			Color:  def.ColorField(),
			ID:     MODEL_FIELD,
			Label:  TYPE_FIELD,
		},
		chart.WithTitle(def.Title()),
		chart.WithLegend(def.Legend()...),
		chart.WithMargin(def.Margin()),
	)
}
