package entities

// DayClass represents the classification of a simulated day
type DayClass int

const (
	// KnownDemand marks a day that ended with leftover stock, so every unit
	// of demand was observed as a sale.
	KnownDemand DayClass = iota
	// Stockout marks a day whose production was fully consumed, so true
	// demand is censored.
	Stockout
)

// String method for DayClass enum
func (c DayClass) String() string {
	switch c {
	case KnownDemand:
		return "KnownDemand"
	case Stockout:
		return "Stockout"
	default:
		return "Unknown"
	}
}

// Classify returns the classification for a day record: KnownDemand iff any
// stock was left unsold at close
func Classify(record *DayRecord) DayClass {
	if record.Unsold > 0 {
		return KnownDemand
	}
	return Stockout
}

// ObservedDay is a known-demand day together with its reconstructed total
// demand. Demand equals total sales because supply never ran out.
type ObservedDay struct {
	DayIndex    int
	PeriodSales []int
	TotalDemand int
	Unsold      int
}

// CensoredDay is a stockout day whose true total demand is unknown
type CensoredDay struct {
	DayIndex    int
	PeriodSales []int
}

// Partition is a disjoint, exhaustive split of a sales history into
// known-demand and stockout days, preserving original day order.
type Partition struct {
	Periods  int
	Known    []ObservedDay
	Stockout []CensoredDay
}

// NumDays returns the total number of days across both partitions
func (p *Partition) NumDays() int {
	return len(p.Known) + len(p.Stockout)
}
