package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

func TestParseCalendarDate(t *testing.T) {
	t.Run("Success: Parses to local midnight", func(t *testing.T) {
		parsed, err := domain.ParseCalendarDate("2024-03-15")

		assert.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
		assert.Equal(t, 0, parsed.Hour())
		assert.Equal(t, time.Local, parsed.Location())
	})

	t.Run("Round trip: format then parse is identity", func(t *testing.T) {
		day := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local)

		parsed, err := domain.ParseCalendarDate(domain.FormatCalendarDate(day))

		assert.NoError(t, err)
		assert.True(t, parsed.Equal(day))
	})

	t.Run("Fail: Rejects non-padded and malformed input", func(t *testing.T) {
		for _, text := range []string{
			"2024-1-2",
			"01-02-2024",
			"2024/01/02",
			"2024-01-02T00:00:00Z",
			"2024-13-01",
			"2024-02-30",
			"not-a-date",
			"",
		} {
			_, err := domain.ParseCalendarDate(text)
			assert.ErrorIs(t, err, domain.ErrInvalidDateFormat, "input %q", text)
		}
	})
}

func TestMidnight(t *testing.T) {
	t.Run("Truncates time-of-day and keeps the location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*3600)
		noisy := time.Date(2024, time.July, 4, 18, 45, 12, 999, loc)

		truncated := domain.Midnight(noisy)

		assert.Equal(t, time.Date(2024, time.July, 4, 0, 0, 0, 0, loc), truncated)
	})

	t.Run("Idempotent", func(t *testing.T) {
		day := domain.Midnight(time.Now())
		assert.Equal(t, day, domain.Midnight(day))
	})
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.May, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.SameCalendarDay(morning, evening))
	assert.False(t, domain.SameCalendarDay(evening, nextDay))
}
