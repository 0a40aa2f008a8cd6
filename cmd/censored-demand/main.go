package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Ready4theCrush/censored-demand/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		periods         = flag.Int("periods", 12, "Time periods per day")
		peaks           = flag.String("peaks", "3", "Comma-separated peak hours in [0,12)")
		peakStd         = flag.Float64("peak-std", 0, "Gaussian spread of each peak in hours (0 = default)")
		days            = flag.Int("days", 100, "Number of days to simulate")
		demandMean      = flag.Float64("demand-mean", 100, "Mean of daily total demand")
		demandStd       = flag.Float64("demand-std", 5, "Standard deviation of daily total demand")
		productionMean  = flag.Float64("production-mean", 100, "Mean of daily production")
		productionStd   = flag.Float64("production-std", 5, "Standard deviation of daily production")
		fixedProduction = flag.Bool("fixed-production", false, "Pin production to its mean every day")
		seed            = flag.Uint64("seed", 1, "Random seed for reproducible runs")
		skipMissing     = flag.Bool("skip-missing", false, "Skip untrained models instead of failing")
		format          = flag.String("format", "text", "Output format: text, json, csv")
		outputDir       = flag.String("output", "", "Output directory for exported files (optional)")
		verbose         = flag.Bool("verbose", false, "Enable verbose output")
		help            = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		TimePeriods:     *periods,
		Peaks:           *peaks,
		PeakStdDev:      *peakStd,
		Days:            *days,
		DemandMean:      *demandMean,
		DemandStd:       *demandStd,
		ProductionMean:  *productionMean,
		ProductionStd:   *productionStd,
		FixedProduction: *fixedProduction,
		Seed:            *seed,
		SkipMissing:     *skipMissing,
		Format:          *format,
		OutputDir:       *outputDir,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewSimulateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
