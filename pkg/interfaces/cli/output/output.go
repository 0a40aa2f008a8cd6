package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/Ready4theCrush/censored-demand/pkg/application/dto"
	csvstore "github.com/Ready4theCrush/censored-demand/pkg/infrastructure/repositories/csv"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a pipeline result in the specified format
func Generate(result *dto.PipelineResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PipelineResult, config Config) error {
	fmt.Printf("📊 Censored Demand Results\n")
	fmt.Printf("==========================\n\n")

	fmt.Printf("Simulated Days: %d (%d periods each)\n", result.History.NumDays(), result.History.Periods)
	fmt.Printf("Known-Demand Days: %d\n", len(result.Partition.Known))
	fmt.Printf("Stockout Days: %d\n", len(result.Partition.Stockout))
	fmt.Printf("Trained Models: %d\n", len(result.Models))
	if len(result.MissingModels) > 0 {
		fmt.Printf("Missing Models (too little data): %v\n", result.MissingModels)
	}
	fmt.Printf("Elapsed: %v\n\n", result.Elapsed)

	if config.Verbose {
		fmt.Printf("Demand Curve:\n")
		for i, w := range result.Curve {
			fmt.Printf("  period %2d: %s\n", i+1, decimal.NewFromFloat(w).Round(4).String())
		}
		fmt.Println()
	}

	if len(result.Models) > 0 {
		fmt.Printf("📈 Model Bank:\n")
		fmt.Printf("%-14s %-12s %-12s %-10s %-8s\n",
			"Known Periods", "Intercept", "Slope", "R²", "Samples")
		fmt.Printf("%-14s %-12s %-12s %-10s %-8s\n",
			"--------------", "------------", "------------", "----------", "--------")
		for _, model := range result.Models {
			fmt.Printf("%-14d %-12s %-12s %-10s %-8d\n",
				model.Periods,
				decimal.NewFromFloat(model.Intercept).Round(3).String(),
				decimal.NewFromFloat(model.Slope).Round(3).String(),
				decimal.NewFromFloat(model.R2).Round(3).String(),
				model.Samples)
		}
		fmt.Println()
	}

	if len(result.Predictions) > 0 {
		fmt.Printf("🔮 Stockout Demand Predictions:\n")
		fmt.Printf("%-6s %-14s %-10s %-18s\n", "Day", "Known Periods", "Observed", "Predicted Demand")
		fmt.Printf("%-6s %-14s %-10s %-18s\n", "------", "--------------", "----------", "------------------")

		var predicted []float64
		for _, p := range result.Predictions {
			if p.Failed() {
				fmt.Printf("%-6d %-14d %-10d failed: %v\n", p.DayIndex, p.PeriodsKnown, p.ObservedSales, p.Err)
				continue
			}
			predicted = append(predicted, p.Demand)
			fmt.Printf("%-6d %-14d %-10d %-18s\n",
				p.DayIndex, p.PeriodsKnown, p.ObservedSales,
				decimal.NewFromFloat(p.Demand).Round(2).String())
		}
		fmt.Println()

		if len(predicted) > 0 {
			mean := stat.Mean(predicted, nil)
			fmt.Printf("Predicted demand mean: %s", decimal.NewFromFloat(mean).Round(2).String())
			if len(predicted) > 1 {
				fmt.Printf("  std: %s", decimal.NewFromFloat(stat.StdDev(predicted, nil)).Round(2).String())
			}
			fmt.Println()
		}
	}

	return nil
}

// jsonResult is the serialized shape of a pipeline run
type jsonResult struct {
	Days          int              `json:"days"`
	Periods       int              `json:"periods"`
	KnownDays     int              `json:"known_days"`
	StockoutDays  int              `json:"stockout_days"`
	Curve         []float64        `json:"curve"`
	Models        []jsonModel      `json:"models"`
	MissingModels []int            `json:"missing_models,omitempty"`
	Predictions   []jsonPrediction `json:"predictions"`
}

type jsonModel struct {
	Periods   int     `json:"periods"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	R2        float64 `json:"r2"`
	Samples   int     `json:"samples"`
}

type jsonPrediction struct {
	Day           int     `json:"day"`
	PeriodsKnown  int     `json:"periods_known"`
	ObservedSales int     `json:"observed_sales"`
	Demand        float64 `json:"predicted_demand,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// generateJSONOutput writes the result as JSON to stdout, and to
// results.json when an output directory is configured
func generateJSONOutput(result *dto.PipelineResult, config Config) error {
	out := jsonResult{
		Days:          result.History.NumDays(),
		Periods:       result.History.Periods,
		KnownDays:     len(result.Partition.Known),
		StockoutDays:  len(result.Partition.Stockout),
		Curve:         result.Curve,
		MissingModels: result.MissingModels,
	}
	for _, model := range result.Models {
		out.Models = append(out.Models, jsonModel{
			Periods:   model.Periods,
			Intercept: model.Intercept,
			Slope:     model.Slope,
			R2:        model.R2,
			Samples:   model.Samples,
		})
	}
	for _, p := range result.Predictions {
		jp := jsonPrediction{
			Day:           p.DayIndex,
			PeriodsKnown:  p.PeriodsKnown,
			ObservedSales: p.ObservedSales,
		}
		if p.Failed() {
			jp.Error = p.Err.Error()
		} else {
			jp.Demand = p.Demand
		}
		out.Predictions = append(out.Predictions, jp)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Println(string(data))

	if config.OutputDir != "" {
		path := filepath.Join(config.OutputDir, "results.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// generateCSVOutput writes sales.csv and predictions.csv to the output
// directory
func generateCSVOutput(result *dto.PipelineResult, config Config) error {
	dir := config.OutputDir
	if dir == "" {
		dir = "."
	}

	store := csvstore.NewStore()
	salesPath := filepath.Join(dir, "sales.csv")
	if err := store.SaveHistory(salesPath, result.History); err != nil {
		return err
	}
	predictionsPath := filepath.Join(dir, "predictions.csv")
	if err := store.SavePredictions(predictionsPath, result.Predictions); err != nil {
		return err
	}

	fmt.Printf("Wrote %s and %s\n", salesPath, predictionsPath)
	return nil
}
