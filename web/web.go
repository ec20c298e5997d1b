// Package web holds the page templates and client script, and turns charts into the views they render.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/evanw/esbuild/pkg/api"

	"brushplot/chart"
	"brushplot/models"
	"brushplot/utils"
)

//go:embed static
var Static embed.FS

//go:embed templates
var templateFiles embed.FS

const CLIENT_SCRIPT = "static/interactions.js"

// X_LABEL_INSET is how far above the bottom edge the x axis title sits.
const X_LABEL_INSET = 10

// NewTemplates parses the page, chart and results templates.
func NewTemplates() (*template.Template, error) {
	templates := template.New("").Funcs(template.FuncMap{
		"coord": utils.FormatCoord,
	})
	return templates.ParseFS(templateFiles, "templates/*.gohtml")
}

// ChartView is a snapshot of a chart for the templates.
type ChartView struct {
	Key     string
	Title   string
	Size    float64
	Margin  float64
	Center  float64
	XLabel  string
	XLabelY float64
	YLabel  string
	LegendX float64
	Brush   models.Rect
	Markers []models.Marker
	Legend  []models.LegendEntry
	Axes    []models.Axis
}

func NewChartView(c *chart.Chart) ChartView {
	return ChartView{
		Key:     c.Key(),
		Title:   c.Title(),
		Size:    c.Size(),
		Margin:  c.Margin(),
		Center:  c.Size() / 2,
		XLabel:  c.Fields().X,
		XLabelY: c.Size() - X_LABEL_INSET,
		YLabel:  c.Fields().Y,
		LegendX: c.LegendX(),
		Brush:   c.BrushExtent(),
		Markers: c.Markers(),
		Legend:  c.Legend(),
		Axes:    c.Axes(),
	}
}

// RenderChart writes a chart as a standalone svg document.
func RenderChart(w io.Writer, templates *template.Template, c *chart.Chart) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	if err := templates.ExecuteTemplate(w, "chart", NewChartView(c)); err != nil {
		return fmt.Errorf("couldn't execute chart template: %w", err)
	}
	return nil
}

// ClientScript returns the brush/legend script, minified unless debug is set.
func ClientScript(debug bool) (string, error) {
	src, err := Static.ReadFile(CLIENT_SCRIPT)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", CLIENT_SCRIPT, err)
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !debug,
		MinifyIdentifiers: !debug,
		MinifyWhitespace:  !debug,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("client script failed with: %v", result.Errors)
	}

	return string(result.Code), nil
}
