package workers

import (
	"context"
	"log"
	"time"

	"github.com/luuuuuuuilaguardia/internship-tracker/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AttendanceRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error)
}

type SnapshotStore interface {
	SetSnapshot(ctx context.Context, userID string, snapshot *domain.ProgressSnapshot) error
}

type SnapshotJob struct {
	UserID string
}

// SnapshotWorker recomputes a user's progress snapshot in the background
// after attendance mutations and pushes it into the cache, so the stats
// endpoint usually serves a warm value. The engine itself stays pure; this
// only moves the computation off the request path.
type SnapshotWorker struct {
	userRepo       UserRepository
	attendanceRepo AttendanceRepository
	store          SnapshotStore
	jobs           chan SnapshotJob
}

func NewSnapshotWorker(userRepo UserRepository, attendanceRepo AttendanceRepository, store SnapshotStore) *SnapshotWorker {
	return &SnapshotWorker{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		store:          store,
		jobs:           make(chan SnapshotJob, 100),
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Snapshot Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Snapshot Worker shutting down...")
				return
			}
		}
	}()
}

func (w *SnapshotWorker) Enqueue(userID string) {
	select {
	case w.jobs <- SnapshotJob{UserID: userID}:
	default:
		log.Printf("Snapshot Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *SnapshotWorker) processJob(ctx context.Context, job SnapshotJob) {
	if w.store == nil {
		return
	}

	user, err := w.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching user %s: %v", job.UserID, err)
		return
	}

	records, err := w.attendanceRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching records for %s: %v", job.UserID, err)
		return
	}

	snapshot := domain.ComputeStats(records, user.Config, time.Now())

	if err := w.store.SetSnapshot(ctx, job.UserID, snapshot); err != nil {
		log.Printf("Worker Failed to cache snapshot for %s: %v", job.UserID, err)
	}
}
