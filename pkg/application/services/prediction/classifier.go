package prediction

import "github.com/Ready4theCrush/censored-demand/pkg/domain/entities"

// SplitByStockout partitions a sales history into known-demand days (stock
// was left over, so every unit of demand was observed) and stockout days
// (production was fully consumed, so true demand is censored). The partition
// is disjoint and exhaustive and preserves original day order.
//
// Each known-demand day carries its reconstructed total demand, which equals
// its total sales: leftover stock means no customer went unserved.
func SplitByStockout(history *entities.SalesHistory) (*entities.Partition, error) {
	if history == nil {
		return nil, entities.NewConfigurationError("sales history cannot be nil")
	}

	partition := &entities.Partition{Periods: history.Periods}
	for i := range history.Days {
		record := &history.Days[i]
		switch entities.Classify(record) {
		case entities.KnownDemand:
			partition.Known = append(partition.Known, entities.ObservedDay{
				DayIndex:    i,
				PeriodSales: record.PeriodSales,
				TotalDemand: record.TotalSales(),
				Unsold:      record.Unsold,
			})
		case entities.Stockout:
			partition.Stockout = append(partition.Stockout, entities.CensoredDay{
				DayIndex:    i,
				PeriodSales: record.PeriodSales,
			})
		}
	}
	return partition, nil
}
