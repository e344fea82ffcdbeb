package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadjump/internal/road"
	"github.com/vovakirdan/roadjump/internal/sim"
)

var (
	flagRuns    int
	flagPolicy  string
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play runs headlessly with a bot",
	Long: `Play a batch of runs without a terminal UI. A bot policy chooses each
jump:

  random    - jump 1 or 2 tiles at random
  cautious  - jump 2 tiles when the next tile is a gap

Examples:
  roadjump sim
  roadjump sim --runs 500 --policy cautious
  roadjump sim --seed 7 --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 0, "Number of runs (0 = use config)")
	simCmd.Flags().StringVar(&flagPolicy, "policy", "", "Bot policy: random, cautious (default from config)")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every run")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		if seed, err = road.RandomSeed(); err != nil {
			return err
		}
	}

	runs := cfg.Sim.Runs
	if flagRuns > 0 {
		runs = flagRuns
	}
	policyName := cfg.Sim.Policy
	if flagPolicy != "" {
		policyName = flagPolicy
	}
	policy, err := sim.PolicyByName(policyName, seed)
	if err != nil {
		return err
	}

	logger.Debug("simulating", "runs", runs, "policy", policy.Name(), "seed", seed)
	report, err := sim.Run(cfg, seed, runs, policy, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Road Jump simulation - %d runs, length %d, policy %s, seed %d\n",
		len(report.Results), report.Length, report.Policy, report.Seed)
	fmt.Fprintln(out)

	if flagVerbose {
		fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Run", "Outcome", "Steps", "Jumps", "Road")
		fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "---", "-------", "-----", "-----", "----")
		for i, res := range report.Results {
			fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-5d  %s\n", i+1, res.Outcome, res.Steps, res.Jumps, res.Road)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Crossed: %d\n", report.Crossed)
	fmt.Fprintf(out, "Fell:    %d\n", report.Fell)
	fmt.Fprintf(out, "Best:    %d steps\n", report.BestSteps)
	fmt.Fprintf(out, "Average: %.2f steps\n", report.AvgSteps)
	return nil
}
