package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/adapters/repository"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and fetch by ID and email", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		user, err := domain.NewUser("user-1", "intern@tracker.app")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, user))

		byID, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)

		byEmail, err := repo.GetByEmail(ctx, "intern@tracker.app")
		require.NoError(t, err)
		assert.Equal(t, "user-1", byEmail.ID)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		first, _ := domain.NewUser("user-1", "intern@tracker.app")
		second, _ := domain.NewUser("user-2", "intern@tracker.app")

		require.NoError(t, repo.Create(ctx, first))
		assert.ErrorIs(t, repo.Create(ctx, second), domain.ErrEmailAlreadyExists)
	})

	t.Run("Update unknown user fails", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		ghost, _ := domain.NewUser("ghost", "ghost@tracker.app")
		assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrUserNotFound)
	})
}

func TestInMemoryAttendanceRepository(t *testing.T) {
	ctx := context.Background()
	monday := day(2024, time.January, 1)

	t.Run("One record per user per day", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		first := domain.NewAttendanceRecord("user-1", monday, 8)
		require.NoError(t, repo.Create(ctx, first))

		// Second insert for the same day must be refused outright.
		second := domain.NewAttendanceRecord("user-1", monday, 4)
		assert.ErrorIs(t, repo.Create(ctx, second), domain.ErrDuplicateEntry)

		// Updating the existing record is the supported path, and the day
		// still holds exactly one record afterwards.
		first.HoursLogged = 6
		require.NoError(t, repo.Update(ctx, first))

		records, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 6.0, records[0].HoursLogged)

		// A different user may log the same calendar day.
		other := domain.NewAttendanceRecord("user-2", monday, 8)
		assert.NoError(t, repo.Create(ctx, other))
	})

	t.Run("Date-changing update frees the old day", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		record := domain.NewAttendanceRecord("user-1", monday, 8)
		require.NoError(t, repo.Create(ctx, record))

		tuesday := monday.AddDate(0, 0, 1)
		moved := *record
		moved.Date = tuesday
		require.NoError(t, repo.Update(ctx, &moved))

		found, err := repo.GetByUserAndDate(ctx, "user-1", tuesday)
		require.NoError(t, err)
		assert.Equal(t, record.ID, found.ID)

		// The old day no longer holds a record and accepts a fresh one.
		_, err = repo.GetByUserAndDate(ctx, "user-1", monday)
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		assert.NoError(t, repo.Create(ctx, domain.NewAttendanceRecord("user-1", monday, 4)))
	})

	t.Run("Moving onto an occupied day is refused", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		tuesday := monday.AddDate(0, 0, 1)
		require.NoError(t, repo.Create(ctx, domain.NewAttendanceRecord("user-1", monday, 8)))
		second := domain.NewAttendanceRecord("user-1", tuesday, 4)
		require.NoError(t, repo.Create(ctx, second))

		moved := *second
		moved.Date = monday
		assert.ErrorIs(t, repo.Update(ctx, &moved), domain.ErrDuplicateEntry)

		// Both days keep their original records.
		kept, err := repo.GetByUserAndDate(ctx, "user-1", tuesday)
		require.NoError(t, err)
		assert.Equal(t, second.ID, kept.ID)
	})

	t.Run("GetByUserAndDate keys on the calendar day", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		record := domain.NewAttendanceRecord("user-1", monday, 8)
		require.NoError(t, repo.Create(ctx, record))

		found, err := repo.GetByUserAndDate(ctx, "user-1", monday)
		require.NoError(t, err)
		assert.Equal(t, record.ID, found.ID)

		_, err = repo.GetByUserAndDate(ctx, "user-1", monday.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})

	t.Run("Delete is scoped to the owner", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		record := domain.NewAttendanceRecord("user-1", monday, 8)
		require.NoError(t, repo.Create(ctx, record))

		assert.ErrorIs(t, repo.Delete(ctx, record.ID, "user-2"), domain.ErrEntryNotFound)
		assert.NoError(t, repo.Delete(ctx, record.ID, "user-1"))

		_, err := repo.GetByID(ctx, record.ID)
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})

	t.Run("Lists are newest-first and range queries are inclusive", func(t *testing.T) {
		repo := repository.NewInMemoryAttendanceRepository()

		for d := 1; d <= 5; d++ {
			require.NoError(t, repo.Create(ctx, domain.NewAttendanceRecord("user-1", day(2024, time.January, d), float64(d))))
		}

		all, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.True(t, all[0].Date.After(all[4].Date))

		ranged, err := repo.ListByUserIDAndDateRange(ctx, "user-1", day(2024, time.January, 2), day(2024, time.January, 4))
		require.NoError(t, err)
		assert.Len(t, ranged, 3)
	})
}
