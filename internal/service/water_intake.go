package service

import (
	"context"
	"fmt"

	"github.com/daytrack/daytrack/internal/errs"
)

// WaterIntakeRecord is the client-facing shape of a daily water intake
// record. ID is a pointer so the zero-valued placeholder for a date
// never written renders as `"id": null`.
type WaterIntakeRecord struct {
	ID    *int64 `json:"id"`
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// WaterIntakeService implements the water intake operations: upsert by
// date, lookup by date, list all.
type WaterIntakeService struct {
	repo WaterIntakeRepository
}

// NewWaterIntakeService constructs a WaterIntakeService.
func NewWaterIntakeService(repo WaterIntakeRepository) *WaterIntakeService {
	return &WaterIntakeService{repo: repo}
}

// UpsertWaterIntake creates the record for date or overwrites its count
// in place. Whether a row was created or updated is not surfaced.
func (s *WaterIntakeService) UpsertWaterIntake(ctx context.Context, date string, count int64) error {
	day, err := ParseDate(date)
	if err != nil {
		return errs.NewInvalidDateFormatError(fmt.Sprintf("date %q is not a valid date", date))
	}

	return s.repo.Upsert(ctx, day, count)
}

// GetWaterIntake returns the record for date. A date never written is a
// valid zero-valued state, not a failure: the result is the synthetic
// placeholder {id: null, date, count: 0}.
func (s *WaterIntakeService) GetWaterIntake(ctx context.Context, date string) (*WaterIntakeRecord, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, errs.NewInvalidDateFormatError(fmt.Sprintf("date %q is not a valid date", date))
	}

	row, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	if row == nil {
		return &WaterIntakeRecord{
			ID:    nil,
			Date:  FormatDate(day),
			Count: 0,
		}, nil
	}

	id := row.ID
	return &WaterIntakeRecord{
		ID:    &id,
		Date:  FormatDate(row.Date),
		Count: row.Count,
	}, nil
}

// ListWaterIntake returns every record, newest id first.
func (s *WaterIntakeService) ListWaterIntake(ctx context.Context) ([]WaterIntakeRecord, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]WaterIntakeRecord, 0, len(rows))
	for _, row := range rows {
		id := row.ID
		records = append(records, WaterIntakeRecord{
			ID:    &id,
			Date:  FormatDate(row.Date),
			Count: row.Count,
		})
	}

	return records, nil
}
