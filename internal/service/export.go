package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jask/jasklabor/internal/database/repository"
)

// ExportService streams a stored panel as CSV for downstream estimation.
type ExportService struct {
	Observations *repository.ObservationRepo
}

// ExportCSV writes the panel of runID to w and returns the number of data
// rows written. The wage column is empty, not zero, for stay periods.
func (s *ExportService) ExportCSV(ctx context.Context, runID string, w io.Writer) (int, error) {
	obs, err := s.Observations.ListByRun(ctx, runID)
	if err != nil {
		return 0, fmt.Errorf("list run %s: %w", runID, err)
	}
	if len(obs) == 0 {
		return 0, fmt.Errorf("run %s has no observations", runID)
	}

	csvw := csv.NewWriter(w)
	if err := csvw.Write([]string{"agent", "period", "action", "state_index", "state_value", "wage"}); err != nil {
		return 0, err
	}
	for _, o := range obs {
		wage := ""
		if o.Wage != nil {
			wage = strconv.FormatFloat(*o.Wage, 'g', -1, 64)
		}
		rec := []string{
			strconv.Itoa(o.Agent),
			strconv.Itoa(o.Period),
			o.Action,
			strconv.Itoa(o.StateIndex),
			strconv.FormatFloat(o.StateValue, 'g', -1, 64),
			wage,
		}
		if err := csvw.Write(rec); err != nil {
			return 0, err
		}
	}
	csvw.Flush()
	return len(obs), csvw.Error()
}
