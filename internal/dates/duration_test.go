package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsBetween(t *testing.T) {
	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  string
		end    string
		want   int
		wantOK bool
	}{
		{"same year", "2025-04", "2025-12", 8, true},
		{"across years", "2025-02", "2026-01", 11, true},
		{"floored at zero", "2025-12", "2025-01", 0, true},
		{"ongoing resolves to now", "2024-01", "ongoing", 33, true},
		{"year only start", "2023", "2024-01", 0, false},
		{"year only end", "2023-01", "2024", 0, false},
		{"invalid month", "2023-13", "2024-01", 0, false},
		{"empty", "", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthsBetween(tt.start, tt.end, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationMonths_BothYearMonth(t *testing.T) {
	got := DurationMonths("2025-04", "2025-12")
	require.NotNil(t, got)
	assert.Equal(t, 8, *got)
}

func TestDurationMonths_UndefinedWithoutCanonicalPair(t *testing.T) {
	assert.Nil(t, DurationMonths("2023", "ongoing"))
	assert.Nil(t, DurationMonths("2024-01", "ongoing"))
	assert.Nil(t, DurationMonths("2024-01", ""))
	assert.Nil(t, DurationMonths("", "2024-01"))
}

func TestDurationMonths_NeverNegative(t *testing.T) {
	got := DurationMonths("2026-01", "2020-01")
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}
