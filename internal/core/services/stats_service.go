package services

import (
	"context"
	"log"
	"time"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

// SnapshotCache is the read-through cache in front of the stats engine.
// Implementations must return (nil, nil) on a cache miss.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, userID string) (*domain.ProgressSnapshot, error)
	SetSnapshot(ctx context.Context, userID string, snapshot *domain.ProgressSnapshot) error
}

type StatsService struct {
	userRepo       domain.UserRepository
	attendanceRepo domain.AttendanceRepository
	cache          SnapshotCache
}

// NewStatsService builds the stats facade. cache may be nil; every request
// then computes a fresh snapshot.
func NewStatsService(userRepo domain.UserRepository, attendanceRepo domain.AttendanceRepository, cache SnapshotCache) *StatsService {
	return &StatsService{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		cache:          cache,
	}
}

func (s *StatsService) GetSnapshot(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSnapshot(ctx, userID)
		if err != nil {
			log.Printf("[CACHE] Snapshot read error for user %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	snapshot, err := s.compute(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, userID, snapshot); err != nil {
			log.Printf("[CACHE] Snapshot write error for user %s: %v", userID, err)
		}
	}

	return snapshot, nil
}

func (s *StatsService) compute(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return domain.ComputeStats(records, user.Config, time.Now()), nil
}

// GetCalendarGrid returns the per-day logged hours for one month, for the
// calendar visualization.
func (s *StatsService) GetCalendarGrid(ctx context.Context, userID string, year int, month time.Month) ([]domain.CalendarCell, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByUserIDAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return domain.BuildCalendarGrid(records, year, month), nil
}
