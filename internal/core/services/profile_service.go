package services

import (
	"context"
	"time"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/workers"
)

type ProfileService struct {
	repo   domain.UserRepository
	worker *workers.SnapshotWorker
}

func NewProfileService(repo domain.UserRepository, worker *workers.SnapshotWorker) *ProfileService {
	return &ProfileService{
		repo:   repo,
		worker: worker,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *ProfileService) UpdateName(ctx context.Context, userID, firstName, lastName string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateName(firstName, lastName); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *ProfileService) GetConfig(ctx context.Context, userID string) (domain.CalendarConfig, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return domain.CalendarConfig{}, err
	}
	return user.Config, nil
}

// UpdateConfig merges a partial patch into the stored calendar config.
// The merge is pure: the stored value is only replaced once the patched
// copy has validated, and the whole value is persisted atomically.
func (s *ProfileService) UpdateConfig(ctx context.Context, userID string, patch domain.ConfigPatch) (domain.CalendarConfig, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return domain.CalendarConfig{}, err
	}

	merged, err := user.Config.ApplyPatch(patch, time.Now())
	if err != nil {
		return domain.CalendarConfig{}, err
	}

	user.Config = merged
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return domain.CalendarConfig{}, err
	}

	// Calendar policy changes shift projections, so refresh the snapshot.
	s.worker.Enqueue(userID)

	return merged, nil
}
