package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"proj1/picture"
	"proj1/scheduler"
)

const usage = "editor data_dir [mode] [number of threads]"

const long = `Applies the effects listed in the effects file to the images of the data directories.

data_dir            = The data directories to use to load the images, joined by '+' (e.g. "small+big").
mode                = (s) run sequentially, (parfiles) process multiple files in parallel,
                      (parslices) process slices of each image in parallel. Defaults to s.
number of threads   = Runs the parallel version of the program with the specified number of threads.`

func newRootCmd() *cobra.Command {
	config := scheduler.DefaultConfig()
	var logLevel string

	cmd := &cobra.Command{
		Use:           usage,
		Short:         "Apply picture effects to a batch of images",
		Long:          long,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.DataDirs = args[0]
			if len(args) > 1 {
				config.Mode = args[1]
			}
			if len(args) > 2 {
				threads, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("number of threads: %w", err)
				}
				config.ThreadCount = threads
			}

			start := time.Now()
			if err := scheduler.Schedule(config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", time.Since(start).Seconds())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&config.EffectsPath, "effects", config.EffectsPath, "effects file")
	cmd.Flags().StringVar(&config.InDir, "in", config.InDir, "root of the data directories")
	cmd.Flags().StringVar(&config.OutDir, "out", config.OutDir, "output directory")
	cmd.Flags().StringVar(&config.GlyphDir, "glyphs", config.GlyphDir, "directory of the ascii glyph bitmaps")
	cmd.Flags().StringVar(&config.ResultsPath, "results", config.ResultsPath, "file timing results are appended to")

	cmd.AddCommand(newDescribeCmd())
	return cmd
}

// describe prints the file name and dimensions of pictures.
func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe image...",
		Short: "Print the dimensions of images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				p, err := picture.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func setupLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("editor failed", "error", err)
		os.Exit(1)
	}
}
