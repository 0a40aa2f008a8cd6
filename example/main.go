package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Ready4theCrush/censored-demand/pkg/application/services/prediction"
	"github.com/Ready4theCrush/censored-demand/pkg/application/services/simulation"
	"github.com/Ready4theCrush/censored-demand/pkg/infrastructure/repositories/memory"
)

func main() {
	// A bakery sells out of croissants most afternoons. Simulate ninety days
	// of morning and evening rushes, then recover the demand the sold-out
	// days never got to show.
	curve, err := simulation.GenerateIntradayDemandCurve(12, []float64{3, 9})
	if err != nil {
		fmt.Printf("❌ curve generation failed: %v\n", err)
		return
	}

	simulator, err := simulation.NewSimulator(simulation.Config{
		Days:           90,
		DemandMean:     120,
		DemandStd:      15,
		ProductionMean: 110,
		ProductionStd:  10,
		Seed:           42,
	})
	if err != nil {
		fmt.Printf("❌ simulator setup failed: %v\n", err)
		return
	}

	fmt.Println("🥐 Simulating 90 days of croissant sales...")
	history, err := simulator.Run(curve)
	if err != nil {
		fmt.Printf("❌ simulation failed: %v\n", err)
		return
	}

	partition, err := prediction.SplitByStockout(history)
	if err != nil {
		fmt.Printf("❌ classification failed: %v\n", err)
		return
	}
	fmt.Printf("  %d days fully observed, %d days sold out\n",
		len(partition.Known), len(partition.Stockout))

	bank, err := prediction.TrainModelBank(partition.Known, curve.Periods(), prediction.SkipMissing)
	if err != nil {
		fmt.Printf("❌ training failed: %v\n", err)
		return
	}
	fmt.Printf("  trained %d models", len(bank.Models()))
	if missing := bank.Missing(); len(missing) > 0 {
		fmt.Printf(" (no data for counts %v)", missing)
	}
	fmt.Println()

	// Keep the fitted models around for later runs
	modelRepo := memory.NewModelRepository()
	for _, model := range bank.Models() {
		if err := modelRepo.SaveModel(model); err != nil {
			fmt.Printf("❌ failed to retain model: %v\n", err)
			return
		}
	}

	predictions, err := prediction.PredictStockoutDemand(partition.Stockout, bank)
	if err != nil {
		fmt.Printf("❌ prediction failed: %v\n", err)
		return
	}

	fmt.Println("\n🔮 Recovered demand on sold-out days:")
	shown := 0
	for i, p := range predictions {
		if p.Failed() {
			fmt.Printf("  day %3d: %v\n", p.DayIndex, p.Err)
			continue
		}
		fmt.Printf("  day %3d: sold %d in first %d periods, predicted demand %s\n",
			p.DayIndex, p.ObservedSales, p.PeriodsKnown,
			decimal.NewFromFloat(p.Demand).Round(1).String())
		shown++
		if shown == 10 {
			if rest := len(predictions) - i - 1; rest > 0 {
				fmt.Printf("  ... and %d more\n", rest)
			}
			break
		}
	}
}
