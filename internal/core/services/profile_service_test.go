package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

func TestProfileService_UpdateName(t *testing.T) {
	t.Run("Success: Name change is persisted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewProfileService(mockRepo, testWorker())
		ctx := context.Background()

		user, err := domain.NewUser("user-1", "intern@tracker.app")
		require.NoError(t, err)

		mockRepo.On("GetByID", ctx, "user-1").Return(user, nil)
		mockRepo.On("Update", ctx, user).Return(nil)

		updated, err := service.UpdateName(ctx, "user-1", "Grace", "Hopper")

		require.NoError(t, err)
		assert.Equal(t, "Grace", updated.FirstName)
		assert.Equal(t, "Hopper", updated.LastName)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewProfileService(mockRepo, testWorker())
		ctx := context.Background()

		mockRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

		updated, err := service.UpdateName(ctx, "ghost", "Grace", "Hopper")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestProfileService_UpdateConfig(t *testing.T) {
	newUser := func(t *testing.T) *domain.User {
		t.Helper()
		user, err := domain.NewUser("user-1", "intern@tracker.app")
		require.NoError(t, err)
		return user
	}

	t.Run("Success: Patched config is validated and persisted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewProfileService(mockRepo, testWorker())
		ctx := context.Background()

		user := newUser(t)
		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		target := 640.0
		saturday := true
		merged, err := service.UpdateConfig(ctx, user.ID, domain.ConfigPatch{
			TargetHours:     &target,
			ExcludeSaturday: &saturday,
		})

		require.NoError(t, err)
		assert.Equal(t, 640.0, merged.TargetHours)
		assert.True(t, merged.ExcludeWeekends.Saturday)
		assert.Equal(t, merged, user.Config, "stored config should be the merged value")

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Invalid patch leaves the stored config untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewProfileService(mockRepo, testWorker())
		ctx := context.Background()

		user := newUser(t)
		before := user.Config
		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil)

		bad := -10.0
		_, err := service.UpdateConfig(ctx, user.ID, domain.ConfigPatch{TargetHours: &bad})

		assert.ErrorIs(t, err, domain.ErrInvalidTargetHours)
		assert.Equal(t, before, user.Config)
		mockRepo.AssertNotCalled(t, "Update")
	})
}
