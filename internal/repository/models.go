package repository

import "time"

// Task is a stored task row. Timestamps are persisted in the fixed
// wire format "YYYY-MM-DD HH:MM:SS" and round-trip as strings; the
// JSON tags expose the store's native column names.
type Task struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int64  `json:"duration"`
}

// WaterIntake is a stored daily water intake row. The date column is
// unique: at most one row exists per calendar date.
type WaterIntake struct {
	ID    int64
	Date  time.Time
	Count int64
}
