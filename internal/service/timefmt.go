package service

import (
	"time"
)

// Wire formats for values crossing the storage boundary. Timestamps are
// always converted to UTC before formatting so the ambient process
// timezone never leaks into stored data.
const (
	// StorageTimeLayout is the fixed textual encoding for absolute
	// timestamps: zero-padded, seconds precision, zone-naive.
	StorageTimeLayout = "2006-01-02 15:04:05"

	// StorageDateLayout is the fixed textual encoding for calendar dates.
	StorageDateLayout = "2006-01-02"
)

// timestampLayouts are the accepted input representations for an
// absolute timestamp, tried in order. RFC3339 covers the common
// ISO-8601 forms with zone info; the rest are zone-naive and are
// interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	StorageTimeLayout,
	StorageDateLayout,
}

// ParseTimestamp parses a client-supplied timestamp string into an
// absolute instant. Fractional seconds are truncated by the storage
// format later; zone-naive inputs are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// FormatTimestampForDB formats an instant in the storage wire format,
// truncated to whole seconds, in UTC.
func FormatTimestampForDB(t time.Time) string {
	return t.UTC().Format(StorageTimeLayout)
}

// ParseDate parses a client-supplied date string into a calendar date
// (midnight UTC). Full timestamps are accepted and truncated to their
// date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(StorageDateLayout, s)
	if err == nil {
		return t, nil
	}

	// Fall back to the timestamp layouts and truncate.
	t, tsErr := ParseTimestamp(s)
	if tsErr != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a calendar date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(StorageDateLayout)
}
