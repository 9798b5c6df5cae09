package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "should parse RFC3339 with zone",
			input:    "2025-03-21T10:30:00+02:00",
			expected: time.Date(2025, 3, 21, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "should parse RFC3339 UTC",
			input:    "2025-03-21T10:30:00Z",
			expected: time.Date(2025, 3, 21, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "should parse zone-naive ISO form as UTC",
			input:    "2025-03-21T10:30:05",
			expected: time.Date(2025, 3, 21, 10, 30, 5, 0, time.UTC),
		},
		{
			name:     "should parse space-separated storage form",
			input:    "2025-03-21 10:30:05",
			expected: time.Date(2025, 3, 21, 10, 30, 5, 0, time.UTC),
		},
		{
			name:     "should parse bare date as midnight",
			input:    "2025-03-21",
			expected: time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "should reject garbage",
			input:     "not-a-date",
			expectErr: true,
		},
		{
			name:      "should reject empty string",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.expected), "got %v, want %v", parsed, tt.expected)
		})
	}
}

func TestFormatTimestampForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "should format UTC instant",
			input:    time.Date(2025, 3, 21, 8, 30, 0, 0, time.UTC),
			expected: "2025-03-21 08:30:00",
		},
		{
			name:     "should convert zoned instant to UTC",
			input:    time.Date(2025, 3, 21, 10, 30, 0, 0, time.FixedZone("EET", 2*60*60)),
			expected: "2025-03-21 08:30:00",
		},
		{
			name:     "should truncate fractional seconds",
			input:    time.Date(2025, 3, 21, 8, 30, 0, 999_000_000, time.UTC),
			expected: "2025-03-21 08:30:00",
		},
		{
			name:     "should zero-pad all fields",
			input:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			expected: "2025-01-02 03:04:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestampForDB(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("should parse plain date", func(t *testing.T) {
		parsed, err := ParseDate("2025-03-21")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("should truncate full timestamp to its date", func(t *testing.T) {
		parsed, err := ParseDate("2025-03-21T23:59:59Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := ParseDate("tomorrow-ish")
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-03-21", FormatDate(time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-02", FormatDate(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestParseFormatRoundTrip(t *testing.T) {
	// Storage output must be re-parseable, so stored values can be
	// rendered back without a second format.
	original := time.Date(2025, 3, 21, 8, 30, 42, 0, time.UTC)

	formatted := FormatTimestampForDB(original)
	parsed, err := ParseTimestamp(formatted)

	require.NoError(t, err)
	assert.True(t, parsed.Equal(original))
}
