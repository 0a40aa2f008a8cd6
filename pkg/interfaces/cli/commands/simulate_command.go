package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Ready4theCrush/censored-demand/pkg/application/services/pipeline"
	"github.com/Ready4theCrush/censored-demand/pkg/application/services/prediction"
	"github.com/Ready4theCrush/censored-demand/pkg/application/services/simulation"
	"github.com/Ready4theCrush/censored-demand/pkg/infrastructure/events"
	"github.com/Ready4theCrush/censored-demand/pkg/interfaces/cli/output"
)

// Config holds configuration for the simulate command
type Config struct {
	TimePeriods     int
	Peaks           string
	PeakStdDev      float64
	Days            int
	DemandMean      float64
	DemandStd       float64
	ProductionMean  float64
	ProductionStd   float64
	FixedProduction bool
	Seed            uint64
	SkipMissing     bool
	Format          string
	OutputDir       string
	Verbose         bool
	Help            bool
}

// SimulateCommand runs the full simulate-train-predict pipeline from the CLI
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	peaks, err := parsePeaks(c.config.Peaks)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.OutputDir != "" {
		if err := os.MkdirAll(c.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	policy := prediction.FailOnInsufficient
	if c.config.SkipMissing {
		policy = prediction.SkipMissing
	}

	eventStore := events.NewStore()
	service := pipeline.NewServiceWithEvents(eventStore)
	runID := fmt.Sprintf("simulate-%d", c.config.Seed)

	result, err := service.Run(ctx, pipeline.Config{
		Curve: simulation.CurveConfig{
			TimePeriods: c.config.TimePeriods,
			Peaks:       peaks,
			PeakStdDev:  c.config.PeakStdDev,
		},
		Simulation: simulation.Config{
			Days:            c.config.Days,
			DemandMean:      c.config.DemandMean,
			DemandStd:       c.config.DemandStd,
			ProductionMean:  c.config.ProductionMean,
			ProductionStd:   c.config.ProductionStd,
			FixedProduction: c.config.FixedProduction,
			Seed:            c.config.Seed,
		},
		Policy: policy,
		RunID:  runID,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if err := output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}); err != nil {
		return fmt.Errorf("failed to generate output: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("\n🗒  Run Log:\n")
		for _, event := range eventStore.ForRun(runID) {
			fmt.Printf("  %3d %-22s %+v\n", event.Seq, event.Type, event.Data)
		}
	}
	return nil
}

// parsePeaks parses a comma-separated list of peak hours
func parsePeaks(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("at least one peak hour is required")
	}
	parts := strings.Split(s, ",")
	peaks := make([]float64, 0, len(parts))
	for _, part := range parts {
		peak, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid peak hour %q: %w", part, err)
		}
		peaks = append(peaks, peak)
	}
	return peaks, nil
}

func (c *SimulateCommand) showHelp() {
	fmt.Println(`censored-demand - simulate censored sales data and predict stockout-day demand

Usage:
  censored-demand [flags]

Flags:
  -periods int          Time periods per day (default 12)
  -peaks string         Comma-separated peak hours in [0,12), e.g. "3" or "3,9"
  -peak-std float       Gaussian spread of each peak in hours (default 3)
  -days int             Number of days to simulate (default 100)
  -demand-mean float    Mean of daily total demand (default 100)
  -demand-std float     Std of daily total demand (default 5)
  -production-mean float  Mean of daily production (default 100)
  -production-std float   Std of daily production (default 5)
  -fixed-production     Pin production to its mean every day
  -seed uint            Random seed for reproducible runs
  -skip-missing         Skip untrained models instead of failing
  -format string        Output format: text, json, csv (default "text")
  -output string        Directory for exported files (optional)
  -verbose              Print curve, run log
  -help                 Show this help

Examples:
  censored-demand -days 200 -peaks 3,9 -seed 42
  censored-demand -days 50 -production-mean 90 -fixed-production -format csv -output ./out`)
}
