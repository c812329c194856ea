package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyFromTime(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		instant time.Time
		loc     *time.Location
		want    domain.DateKey
	}{
		{
			name:    "plain UTC instant",
			instant: time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC),
			loc:     time.UTC,
			want:    "2024-03-15",
		},
		{
			name:    "zero padded month and day",
			instant: time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC),
			loc:     time.UTC,
			want:    "2024-01-02",
		},
		{
			name:    "late UTC evening is the previous day in New York",
			instant: time.Date(2024, time.March, 15, 2, 30, 0, 0, time.UTC),
			loc:     newYork,
			want:    "2024-03-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DateKeyFromTime(tt.instant, tt.loc)
			assert.Equal(t, tt.want, got)
			// Stable across repeated calls.
			assert.Equal(t, got, domain.DateKeyFromTime(tt.instant, tt.loc))
		})
	}
}

func TestDateKey_AddDays(t *testing.T) {
	tests := []struct {
		name  string
		key   domain.DateKey
		delta int
		want  domain.DateKey
	}{
		{name: "within month", key: "2024-05-10", delta: 5, want: "2024-05-15"},
		{name: "across month boundary", key: "2024-01-31", delta: 1, want: "2024-02-01"},
		{name: "across year boundary", key: "2023-12-31", delta: 1, want: "2024-01-01"},
		{name: "backwards across year boundary", key: "2024-01-01", delta: -1, want: "2023-12-31"},
		{name: "leap day exists in 2024", key: "2024-02-28", delta: 1, want: "2024-02-29"},
		{name: "no leap day in 2023", key: "2023-02-28", delta: 1, want: "2023-03-01"},
		{name: "whole leap year span", key: "2024-01-01", delta: 366, want: "2025-01-01"},
		{name: "negative across leap day", key: "2024-03-01", delta: -2, want: "2024-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.AddDays(tt.delta))
		})
	}
}

func TestDateKey_AddDaysRoundTrip(t *testing.T) {
	key := domain.DateKey("2024-02-29")
	for _, n := range []int{1, 28, 31, 365, 400} {
		assert.Equal(t, key, key.AddDays(n).AddDays(-n), "round trip with n=%d", n)
	}
}

func TestDateKey_Ordering(t *testing.T) {
	key := domain.DateKey("2024-06-15")
	assert.True(t, key.AddDays(1) > key)
	assert.True(t, key.AddDays(-1) < key)
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical form", input: "2024-03-05"},
		{name: "leap day", input: "2024-02-29"},
		{name: "unpadded month", input: "2024-3-05", wantErr: true},
		{name: "unpadded day", input: "2024-03-5", wantErr: true},
		{name: "nonexistent day", input: "2023-02-29", wantErr: true},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := domain.ParseDateKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DateKey(tt.input), key)
		})
	}
}

func TestDateKey_DateRoundTrip(t *testing.T) {
	key := domain.NewDateKey(2024, time.February, 29)
	year, month, day := key.Date()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)
	assert.Equal(t, 29, day)
	assert.Equal(t, key, domain.NewDateKey(year, month, day))
}

func TestDateKey_Time(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	midnight := domain.DateKey("2024-03-14").Time(newYork)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, newYork), midnight)
	// Deriving a key from the produced instant lands on the same day.
	assert.Equal(t, domain.DateKey("2024-03-14"), domain.DateKeyFromTime(midnight, newYork))
}
