package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"brushplot/chart"
	"brushplot/config"
	"brushplot/state"
	"brushplot/store"
	"brushplot/utils"
	"brushplot/web"
)

func buildRenderCmd(flags *config.Flags) *cobra.Command {
	var renderFlags *config.RenderFlags

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write a chart as an svg document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), log, flags, renderFlags)
		},
	}
	renderFlags = config.BindRenderFlags(renderCmd.Flags())
	_ = renderCmd.MarkFlagRequired("chart")

	return renderCmd
}

func runRender(stdout io.Writer, log zerolog.Logger, flags *config.Flags, renderFlags *config.RenderFlags) error {
	data, err := store.LoadRecords(flags.Data, log)
	if err != nil {
		return err
	}

	co := chart.NewCoordinator(state.New("", nil), log)
	if err := store.RenderAll(co, data); err != nil {
		return err
	}

	c, err := co.Chart(renderFlags.Chart)
	if err != nil {
		return err
	}

	templates, err := web.NewTemplates()
	if err != nil {
		return err
	}

	if renderFlags.OutDir == "" {
		return web.RenderChart(stdout, templates, c)
	}

	if err := os.MkdirAll(renderFlags.OutDir, 0o755); err != nil {
		return fmt.Errorf("couldn't create output dir: %w", err)
	}
	path := utils.NextAvailableFilename(renderFlags.OutDir, strings.ToLower(c.Key()), ".svg")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}
	if err := renderAndClose(f, templates, c); err != nil {
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("wrote chart")

	return nil
}

// renderAndClose writes c to w and closes it. A failed close is an error: buffered output may not have been written.
func renderAndClose(w io.WriteCloser, templates *template.Template, c *chart.Chart) (err error) {
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return web.RenderChart(w, templates, c)
}
