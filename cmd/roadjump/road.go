package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadjump/internal/road"
)

var flagCheck string

var roadCmd = &cobra.Command{
	Use:   "road",
	Short: "Print a generated road",
	Long: `Generate a road and print it, '#' for solid tiles and '_' for gaps.
With --check, validate the given road instead.

Examples:
  roadjump road
  roadjump road --length 40 --seed 42
  roadjump road --check "#_##_#"`,
	Args: cobra.NoArgs,
	RunE: runRoad,
}

func init() {
	roadCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this road instead of generating one")
}

func runRoad(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagCheck != "" {
		r, err := road.Parse(flagCheck)
		if err != nil {
			return err
		}
		if err := r.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(out, "ok: %d tiles\n", r.Len())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		if seed, err = road.RandomSeed(); err != nil {
			return err
		}
	}

	r, err := road.Generate(cfg.Road.Length, road.NewSource(seed))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, r)
	fmt.Fprintf(out, "length %d, seed %d\n", r.Len(), seed)
	return nil
}
