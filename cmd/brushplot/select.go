package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"brushplot/chart"
	"brushplot/config"
	"brushplot/state"
	"brushplot/store"
)

func buildSelectCmd(flags *config.Flags) *cobra.Command {
	var selectFlags *config.SelectFlags

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Brush a data rectangle on one chart and print what every chart selects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}
			return runSelect(cmd.OutOrStdout(), log, flags, selectFlags)
		},
	}
	selectFlags = config.BindSelectFlags(selectCmd.Flags())
	_ = selectCmd.MarkFlagRequired("chart")

	return selectCmd
}

func runSelect(stdout io.Writer, log zerolog.Logger, flags *config.Flags, selectFlags *config.SelectFlags) error {
	data, err := store.LoadRecords(flags.Data, log)
	if err != nil {
		return err
	}

	co := chart.NewCoordinator(state.New("", nil), log)
	if err := store.RenderAll(co, data); err != nil {
		return err
	}

	c, err := co.Chart(selectFlags.Chart)
	if err != nil {
		return err
	}

	c.BrushStart()
	results := c.SelectData(selectFlags.X0, selectFlags.X1, selectFlags.Y0, selectFlags.Y1)

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"Chart", "Selected", "Models"})
	for _, other := range co.Charts() {
		var keys []string
		for _, m := range other.Markers() {
			if m.Selected {
				keys = append(keys, m.Key)
			}
		}
		table.Append([]string{other.Key(), strconv.Itoa(len(keys)), strings.Join(keys, ", ")})
	}
	table.Render()

	for _, line := range results {
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
	}

	return nil
}
