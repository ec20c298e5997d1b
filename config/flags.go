package config

import (
	"github.com/spf13/pflag"

	"brushplot/logger"
)

const (
	DEFAULT_ADDR    = ":8080"
	DEFAULT_OUT_DIR = ""
)

type Flags struct {
	LogLevel string
	Pretty   bool
	// Data is a JSON file of records to chart in place of the built in cars.
	Data string
}

type ServeFlags struct {
	Addr string
	// Debug serves the client script unminified.
	Debug bool
}

type RenderFlags struct {
	Chart  string
	OutDir string
}

type SelectFlags struct {
	Chart string
	X0    float64
	X1    float64
	Y0    float64
	Y1    float64
}

// BindFlags registers the flags every command shares.
func BindFlags(fs *pflag.FlagSet) *Flags {
	flags := &Flags{}
	fs.StringVar(&flags.LogLevel, "log-level", logger.DEFAULT_LEVEL, "log level (trace, debug, info, warn, error, disabled)")
	fs.BoolVar(&flags.Pretty, "pretty", true, "human readable log output")
	fs.StringVarP(&flags.Data, "data", "d", "", "JSON array of records to chart")
	return flags
}

func BindServeFlags(fs *pflag.FlagSet) *ServeFlags {
	serve := &ServeFlags{}
	fs.StringVar(&serve.Addr, "addr", DEFAULT_ADDR, "http listen address")
	fs.BoolVar(&serve.Debug, "debug", false, "serve client script unminified")
	return serve
}

func BindRenderFlags(fs *pflag.FlagSet) *RenderFlags {
	render := &RenderFlags{}
	fs.StringVarP(&render.Chart, "chart", "c", "", "key of the chart to render")
	fs.StringVarP(&render.OutDir, "out-dir", "o", DEFAULT_OUT_DIR, "write to the next free file in this directory instead of stdout")
	return render
}

func BindSelectFlags(fs *pflag.FlagSet) *SelectFlags {
	sel := &SelectFlags{}
	fs.StringVarP(&sel.Chart, "chart", "c", "", "key of the chart to brush")
	fs.Float64Var(&sel.X0, "x0", 0, "low x of the data rectangle")
	fs.Float64Var(&sel.X1, "x1", 0, "high x of the data rectangle")
	fs.Float64Var(&sel.Y0, "y0", 0, "low y of the data rectangle")
	fs.Float64Var(&sel.Y1, "y1", 0, "high y of the data rectangle")
	return sel
}
