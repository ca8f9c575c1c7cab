package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return domain.ErrUserNotFound
	}

	r.store[user.ID] = user
	return nil
}

// InMemoryAttendanceRepository keys records by (userID, day) so the
// one-record-per-day invariant is structural, not just an index.
type InMemoryAttendanceRepository struct {
	byID  map[string]*domain.AttendanceRecord
	byDay map[string]*domain.AttendanceRecord

	mu sync.RWMutex
}

func NewInMemoryAttendanceRepository() *InMemoryAttendanceRepository {
	return &InMemoryAttendanceRepository{
		byID:  make(map[string]*domain.AttendanceRecord),
		byDay: make(map[string]*domain.AttendanceRecord),
	}
}

func dayKey(userID string, date time.Time) string {
	return userID + "|" + domain.FormatCalendarDate(date)
}

func (r *InMemoryAttendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.UserID, record.Date)
	if _, exists := r.byDay[key]; exists {
		return domain.ErrDuplicateEntry
	}

	r.byID[record.ID] = record
	r.byDay[key] = record
	return nil
}

func (r *InMemoryAttendanceRepository) Update(ctx context.Context, record *domain.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[record.ID]
	if !ok || existing.UserID != record.UserID {
		return domain.ErrEntryNotFound
	}

	oldKey := dayKey(existing.UserID, existing.Date)
	newKey := dayKey(record.UserID, record.Date)
	if newKey != oldKey {
		if _, taken := r.byDay[newKey]; taken {
			return domain.ErrDuplicateEntry
		}
		delete(r.byDay, oldKey)
	}

	r.byID[record.ID] = record
	r.byDay[newKey] = record
	return nil
}

func (r *InMemoryAttendanceRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok || record.UserID != userID {
		return domain.ErrEntryNotFound
	}

	delete(r.byID, id)
	delete(r.byDay, dayKey(record.UserID, record.Date))
	return nil
}

func (r *InMemoryAttendanceRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return record, nil
}

func (r *InMemoryAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byDay[dayKey(userID, date)]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return record, nil
}

func (r *InMemoryAttendanceRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.AttendanceRecord
	for _, rec := range r.byID {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

func (r *InMemoryAttendanceRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from = domain.Midnight(from)
	to = domain.Midnight(to)

	var records []*domain.AttendanceRecord
	for _, rec := range all {
		day := domain.Midnight(rec.Date)
		if !day.Before(from) && !day.After(to) {
			records = append(records, rec)
		}
	}

	return records, nil
}
