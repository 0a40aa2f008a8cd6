package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Ready4theCrush/censored-demand/pkg/application/dto"
	"github.com/Ready4theCrush/censored-demand/pkg/domain/entities"
)

// Store handles saving and loading simulated sales data as CSV files
type Store struct{}

// NewStore creates a new CSV store
func NewStore() *Store {
	return &Store{}
}

// SaveHistory writes a sales history with header
// day,period_1..period_T,production,unsold
func (s *Store) SaveHistory(filename string, history *entities.SalesHistory) error {
	if history == nil {
		return entities.NewConfigurationError("history cannot be nil")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create sales file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(historyHeader(history.Periods)); err != nil {
		return fmt.Errorf("failed to write sales header: %w", err)
	}

	for i, day := range history.Days {
		row := make([]string, 0, history.Periods+3)
		row = append(row, strconv.Itoa(i))
		for _, sales := range day.PeriodSales {
			row = append(row, strconv.Itoa(sales))
		}
		row = append(row, strconv.Itoa(day.Production), strconv.Itoa(day.Unsold))
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write sales row %d: %w", i, err)
		}
	}
	return nil
}

// LoadHistory reads a sales history written by SaveHistory
func (s *Store) LoadHistory(filename string) (*entities.SalesHistory, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("sales CSV must have header and at least one data row")
	}

	header := records[0]
	periods := len(header) - 3
	if periods < 1 || !validateHeader(header, historyHeader(periods)) {
		return nil, fmt.Errorf("sales CSV header mismatch, got %v", header)
	}

	history, err := entities.NewSalesHistory(periods)
	if err != nil {
		return nil, err
	}
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf(
				"sales CSV row %d: expected %d columns, got %d", i+2, len(header), len(record))
		}
		day, err := parseDayRecord(record, periods)
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: %w", i+2, err)
		}
		if err := history.Append(*day); err != nil {
			return nil, fmt.Errorf("sales CSV row %d: %w", i+2, err)
		}
	}
	return history, nil
}

// SavePredictions writes per-day predictions with header
// day,periods_known,observed_sales,predicted_demand,error
func (s *Store) SavePredictions(filename string, predictions []dto.Prediction) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create predictions file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"day", "periods_known", "observed_sales", "predicted_demand", "error"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write predictions header: %w", err)
	}

	for _, p := range predictions {
		demand := ""
		failure := ""
		if p.Failed() {
			failure = p.Err.Error()
		} else {
			demand = decimal.NewFromFloat(p.Demand).Round(2).String()
		}
		row := []string{
			strconv.Itoa(p.DayIndex),
			strconv.Itoa(p.PeriodsKnown),
			strconv.Itoa(p.ObservedSales),
			demand,
			failure,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write prediction for day %d: %w", p.DayIndex, err)
		}
	}
	return nil
}

func historyHeader(periods int) []string {
	header := make([]string, 0, periods+3)
	header = append(header, "day")
	for i := 1; i <= periods; i++ {
		header = append(header, fmt.Sprintf("period_%d", i))
	}
	header = append(header, "production", "unsold")
	return header
}

func parseDayRecord(record []string, periods int) (*entities.DayRecord, error) {
	periodSales := make([]int, periods)
	for i := 0; i < periods; i++ {
		sales, err := strconv.Atoi(record[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid sales value %q: %w", record[i+1], err)
		}
		periodSales[i] = sales
	}
	production, err := strconv.Atoi(record[periods+1])
	if err != nil {
		return nil, fmt.Errorf("invalid production value %q: %w", record[periods+1], err)
	}
	unsold, err := strconv.Atoi(record[periods+2])
	if err != nil {
		return nil, fmt.Errorf("invalid unsold value %q: %w", record[periods+2], err)
	}
	return entities.NewDayRecord(periodSales, production, unsold)
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}
