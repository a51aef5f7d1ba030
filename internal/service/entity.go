package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/procurement-cms/internal/lib/email"
	"github.com/deppfellow/procurement-cms/internal/logger"
	"github.com/deppfellow/procurement-cms/internal/model"
)

// Change actions reported to admins.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// enqueueTimeout keeps a slow Redis from holding up the response.
const enqueueTimeout = 3 * time.Second

// Repository is the storage side of an entity; *repository.CRUD
// implements it.
type Repository[T model.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) ([]string, error)
}

// Jobs queues background work; *job.JobService implements it.
type Jobs interface {
	EnqueueFileCleanup(ctx context.Context, urls []string) error
	EnqueueRecordChanged(ctx context.Context, change email.RecordChange) error
}

// EntityService runs one entity's CRUD operations.
type EntityService[T model.Entity] struct {
	repo Repository[T]
	name string
	jobs Jobs
	now  func() time.Time
}

// NewEntityService wraps repo. name is the display name used in messages,
// e.g. "Venue Partner". jobs may be nil.
func NewEntityService[T model.Entity](repo Repository[T], name string, jobs Jobs) *EntityService[T] {
	return &EntityService[T]{repo: repo, name: name, jobs: jobs, now: time.Now}
}

// Name is the entity's display name.
func (s *EntityService[T]) Name() string {
	return s.name
}

func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *EntityService[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *EntityService[T]) Add(ctx context.Context, rec T) (T, error) {
	created, err := s.repo.Add(ctx, rec)
	if err != nil {
		return created, err
	}

	s.notify(ctx, ActionCreated, created.Meta().ID, created.Label())
	return created, nil
}

func (s *EntityService[T]) Update(ctx context.Context, rec T) error {
	if err := s.repo.Update(ctx, rec); err != nil {
		return err
	}

	s.notify(ctx, ActionUpdated, rec.Meta().ID, rec.Label())
	return nil
}

// Delete hides the record, then queues removal of the files it referenced.
// The record stays deleted even if the cleanup cannot be queued.
func (s *EntityService[T]) Delete(ctx context.Context, id int64) error {
	urls, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if s.jobs != nil && len(urls) > 0 {
		qctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
		defer cancel()

		if err := s.jobs.EnqueueFileCleanup(qctx, urls); err != nil {
			logger.FromContext(ctx).Error().
				Err(err).
				Str("entity", s.name).
				Int64("id", id).
				Strs("urls", urls).
				Msg("Failed to queue file cleanup")
		}
	}

	s.notify(ctx, ActionDeleted, id, fmt.Sprintf("#%d", id))
	return nil
}

// notify is best effort; a lost notification never fails the request.
func (s *EntityService[T]) notify(ctx context.Context, action string, id int64, label string) {
	if s.jobs == nil {
		return
	}

	qctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	err := s.jobs.EnqueueRecordChanged(qctx, email.RecordChange{
		Entity:     s.name,
		Action:     action,
		RecordID:   id,
		RecordName: label,
		OccurredAt: s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("entity", s.name).
			Str("action", action).
			Msg("Failed to queue change notification")
	}
}
