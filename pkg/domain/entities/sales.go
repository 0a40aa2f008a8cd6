package entities

// DayRecord holds one simulated day's observed per-period sales, the units
// produced that morning, and the units left unsold at close.
type DayRecord struct {
	PeriodSales []int
	Production  int
	Unsold      int
}

// NewDayRecord creates a validated DayRecord
func NewDayRecord(periodSales []int, production, unsold int) (*DayRecord, error) {
	record := &DayRecord{
		PeriodSales: periodSales,
		Production:  production,
		Unsold:      unsold,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// Validate checks the per-day invariants: non-negative sales, non-negative
// unsold, and the accounting identity sales + unsold == production
func (r *DayRecord) Validate() error {
	if len(r.PeriodSales) < 1 {
		return NewConfigurationError("day record must have at least one period")
	}
	if r.Production < 0 {
		return NewConfigurationError("production cannot be negative, got %d", r.Production)
	}
	if r.Unsold < 0 {
		return NewConfigurationError("unsold units cannot be negative, got %d", r.Unsold)
	}
	total := 0
	for i, sales := range r.PeriodSales {
		if sales < 0 {
			return NewConfigurationError("period %d sales cannot be negative, got %d", i, sales)
		}
		total += sales
	}
	if total+r.Unsold != r.Production {
		return NewConfigurationError(
			"sales %d + unsold %d does not reconcile with production %d",
			total, r.Unsold, r.Production)
	}
	return nil
}

// TotalSales returns the sum of the day's per-period sales
func (r *DayRecord) TotalSales() int {
	total := 0
	for _, sales := range r.PeriodSales {
		total += sales
	}
	return total
}

// CumulativeSales returns the sum of sales over the first t periods
func (r *DayRecord) CumulativeSales(t int) int {
	if t > len(r.PeriodSales) {
		t = len(r.PeriodSales)
	}
	total := 0
	for _, sales := range r.PeriodSales[:t] {
		total += sales
	}
	return total
}

// SalesHistory is a table of simulated days, each with the same number of
// time periods.
type SalesHistory struct {
	Periods int
	Days    []DayRecord
}

// NewSalesHistory creates an empty history for the given period count
func NewSalesHistory(periods int) (*SalesHistory, error) {
	if periods < 1 {
		return nil, NewConfigurationError("history must have at least one period, got %d", periods)
	}
	return &SalesHistory{Periods: periods}, nil
}

// Append adds a day record after validating it against the history shape
func (h *SalesHistory) Append(record DayRecord) error {
	if len(record.PeriodSales) != h.Periods {
		return NewConfigurationError(
			"day record has %d periods, history expects %d",
			len(record.PeriodSales), h.Periods)
	}
	if err := record.Validate(); err != nil {
		return err
	}
	h.Days = append(h.Days, record)
	return nil
}

// NumDays returns the number of recorded days
func (h *SalesHistory) NumDays() int {
	return len(h.Days)
}
