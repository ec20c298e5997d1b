package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"brushplot/config"
	"brushplot/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "brushplot",
		Short:         "Linked scatter plots with legend toggling and brushing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		buildServeCmd(flags),
		buildRenderCmd(flags),
		buildSelectCmd(flags),
	)

	return rootCmd
}

func newLogger(flags *config.Flags) (zerolog.Logger, error) {
	return logger.New(os.Stderr, flags.LogLevel, flags.Pretty)
}
