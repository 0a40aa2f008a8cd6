package simulation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// Config holds configuration for the daily sales simulator
type Config struct {
	// Days is the number of independent days to simulate
	Days int
	// DemandMean and DemandStd parameterize the Gaussian draw of each day's
	// total demand
	DemandMean float64
	DemandStd  float64
	// ProductionMean and ProductionStd parameterize the Gaussian draw of each
	// day's production. ProductionStd is ignored when FixedProduction is set.
	ProductionMean float64
	ProductionStd  float64
	// FixedProduction pins production to round(ProductionMean) every day
	FixedProduction bool
	// Seed seeds the random source built by NewSimulator
	Seed uint64
}

// Validate checks the simulation parameters before any day is generated
func (c Config) Validate() error {
	if c.Days < 1 {
		return entities.NewConfigurationError("days must be positive, got %d", c.Days)
	}
	if c.DemandMean < 0 {
		return entities.NewConfigurationError("demand mean cannot be negative, got %v", c.DemandMean)
	}
	if c.DemandStd < 0 {
		return entities.NewConfigurationError("demand std cannot be negative, got %v", c.DemandStd)
	}
	if c.ProductionMean < 0 {
		return entities.NewConfigurationError("production mean cannot be negative, got %v", c.ProductionMean)
	}
	if !c.FixedProduction && c.ProductionStd < 0 {
		return entities.NewConfigurationError("production std cannot be negative, got %v", c.ProductionStd)
	}
	return nil
}

// Simulator generates synthetic daily sales with censored demand. Each day
// draws a total demand and a production level, then consumes demand period by
// period as Poisson draws capped by remaining stock.
type Simulator struct {
	config Config
	src    rand.Source
}

// NewSimulator creates a simulator with a source seeded from config.Seed
func NewSimulator(config Config) (*Simulator, error) {
	return NewSimulatorWithSource(config, rand.NewSource(config.Seed))
}

// NewSimulatorWithSource creates a simulator drawing from the given source.
// Injecting the source keeps runs reproducible without any global random
// state.
func NewSimulatorWithSource(config Config, src rand.Source) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, entities.NewConfigurationError("random source cannot be nil")
	}
	return &Simulator{config: config, src: src}, nil
}

// Run simulates config.Days independent days of sales under the given curve
func (s *Simulator) Run(curve entities.DemandCurve) (*entities.SalesHistory, error) {
	if err := curve.Validate(); err != nil {
		return nil, err
	}

	history, err := entities.NewSalesHistory(curve.Periods())
	if err != nil {
		return nil, err
	}

	for day := 0; day < s.config.Days; day++ {
		record := s.simulateDay(curve)
		if err := history.Append(record); err != nil {
			return nil, err
		}
	}
	return history, nil
}

// simulateDay draws one day: total demand, production, then per-period sales
// in time order. Once remaining stock hits zero every later period records
// zero sales.
func (s *Simulator) simulateDay(curve entities.DemandCurve) entities.DayRecord {
	totalDemand := s.drawNormal(s.config.DemandMean, s.config.DemandStd)
	if totalDemand < 0 {
		totalDemand = 0
	}

	production := s.drawProduction()
	remaining := production

	periodSales := make([]int, curve.Periods())
	for i, fraction := range curve {
		if remaining == 0 {
			break
		}
		demand := s.drawPoisson(totalDemand * fraction)
		if demand > remaining {
			demand = remaining
		}
		periodSales[i] = demand
		remaining -= demand
	}

	return entities.DayRecord{
		PeriodSales: periodSales,
		Production:  production,
		Unsold:      remaining,
	}
}

func (s *Simulator) drawNormal(mean, std float64) float64 {
	if std == 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: std, Src: s.src}.Rand()
}

// drawProduction returns the day's whole-unit production, floored at zero
func (s *Simulator) drawProduction() int {
	if s.config.FixedProduction {
		return int(math.Round(s.config.ProductionMean))
	}
	produced := math.Round(s.drawNormal(s.config.ProductionMean, s.config.ProductionStd))
	if produced < 0 {
		produced = 0
	}
	return int(produced)
}

// drawPoisson returns a Poisson draw, short-circuiting a zero rate so a
// zero-demand period never reaches the sampler
func (s *Simulator) drawPoisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}
