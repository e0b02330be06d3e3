// Command parahull computes the convex hull of a set of 2D points using
// parallel divide-and-conquer quickhull (spec.md §6's CLI surface).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/parahull/internal/config"
	"github.com/ajroetker/parahull/internal/geomsimd"
	"github.com/ajroetker/parahull/internal/logx"
	"github.com/ajroetker/parahull/internal/orchestrator"
	"github.com/ajroetker/parahull/internal/pointio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file    string
		out     string
		threads int
		loglvl  string
		split   int
	)

	cmd := &cobra.Command{
		Use:   "parahull",
		Short: "Compute the convex hull of a 2D point set in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLogLevel(loglvl)
			if err != nil {
				return err
			}
			log := logx.New(os.Stderr, level)

			cfg := config.Config{
				InputFile:      file,
				OutputFile:     out,
				Threads:        threads,
				SplitThreshold: split,
				LogLevel:       level,
			}

			log.Debug().
				Str("level", geomsimd.CurrentLevel().String()).
				Int("width_bytes", geomsimd.CurrentWidth()).
				Int("max_f64_lanes", geomsimd.MaxLanes[float64]()).
				Bool("no_simd_env", geomsimd.NoSimdEnv()).
				Msg("geomsimd dispatch")

			log.Info().Str("file", cfg.InputFile).Int("threads", cfg.Threads).Msg("loading points")
			pts, err := pointio.ReadFile(cfg.InputFile)
			if err != nil {
				return fmt.Errorf("loading %s: %w", cfg.InputFile, err)
			}
			log.Debug().Int("n", pts.Len()).Msg("points loaded")

			hull, err := orchestrator.Run(cfg, pts)
			if err != nil {
				return fmt.Errorf("computing hull: %w", err)
			}
			log.Info().Int("vertices", len(hull)).Msg("hull computed")

			if cfg.OutputFile != "" {
				if err := pointio.WriteHullFile(cfg.OutputFile, hull); err != nil {
					return fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
				}
				log.Info().Str("out", cfg.OutputFile).Msg("hull written")
				return nil
			}
			return pointio.WriteHull(os.Stdout, hull)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&file, "file", "", "path to the binary point file (required)")
	flags.IntVar(&threads, "threads", 1, "number of worker threads")
	flags.StringVar(&loglvl, "loglvl", "info", "minimum log level: error|critical|warning|notice|info|debug|trace")
	flags.StringVar(&out, "out", "", "path to write the hull as text (default: stdout)")
	flags.IntVar(&split, "split", 0, "per-worker sub-partition size (0 derives a default)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
