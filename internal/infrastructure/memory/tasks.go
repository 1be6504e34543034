package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
)

func (s *Store) CreateTask(ctx context.Context, task *domain.Task) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.tasks[task.ID]; ok {
			return fmt.Errorf("%w: task %s already exists", domain.ErrValidation, task.ID)
		}
		st.tasks[task.ID] = *task
		return nil
	})
}

func (s *Store) GetTaskByID(_ context.Context, taskID string) (*domain.Task, error) {
	var (
		task domain.Task
		ok   bool
	)
	s.read(func(st *state) { task, ok = st.tasks[taskID] })
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return &task, nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	return s.write(ctx, func(st *state) error {
		if _, ok := st.tasks[taskID]; !ok {
			return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
		}
		delete(st.tasks, taskID)
		return nil
	})
}

func guardHolds(t domain.Task, guard domain.TaskGuard) bool {
	if len(guard.Statuses) > 0 && !slices.Contains(guard.Statuses, t.Status) {
		return false
	}
	if guard.Assignee == "" {
		return true
	}
	if t.AssignedTo == nil {
		return guard.AllowUnassigned
	}
	return *t.AssignedTo == guard.Assignee
}

func (s *Store) TransitionTask(ctx context.Context, taskID string, guard domain.TaskGuard, change domain.TaskChange) (bool, error) {
	var ok bool
	err := s.write(ctx, func(st *state) error {
		t, found := st.tasks[taskID]
		if !found || !guardHolds(t, guard) {
			return nil
		}
		t.Status = change.Status
		switch {
		case change.ClearAssignee:
			t.AssignedTo = nil
		case change.AssignedTo != nil:
			assignee := *change.AssignedTo
			t.AssignedTo = &assignee
		}
		if change.StartedAt != nil {
			t.StartedAt = change.StartedAt
		}
		if change.SubmittedAt != nil {
			t.SubmittedAt = change.SubmittedAt
		}
		if change.ReviewedAt != nil {
			t.ReviewedAt = change.ReviewedAt
		}
		if change.SubmissionURL != nil {
			t.SubmissionURL = *change.SubmissionURL
		}
		if change.SubmissionComments != nil {
			t.SubmissionComments = *change.SubmissionComments
		}
		if change.RejectionReason != nil {
			t.RejectionReason = *change.RejectionReason
		}
		t.UpdatedAt = time.Now()
		st.tasks[taskID] = t
		ok = true
		return nil
	})
	return ok, err
}

func (s *Store) ListTasks(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, int64, error) {
	var matched []*domain.Task
	s.read(func(st *state) {
		for _, t := range st.tasks {
			if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, t.Status) {
				continue
			}
			if filter.AssignedTo != "" && (t.AssignedTo == nil || *t.AssignedTo != filter.AssignedTo) {
				continue
			}
			if filter.OpenFor != "" && t.AssignedTo != nil && *t.AssignedTo != filter.OpenFor {
				continue
			}
			t := t
			matched = append(matched, &t)
		}
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	start, end := pageBounds(filter.Page, filter.Limit, len(matched))
	return matched[start:end], int64(len(matched)), nil
}

func (s *Store) FindOverdueTasks(_ context.Context, now time.Time) ([]*domain.Task, error) {
	var out []*domain.Task
	s.read(func(st *state) {
		for _, t := range st.tasks {
			if t.IsOverdue(now) {
				t := t
				out = append(out, &t)
			}
		}
	})
	return out, nil
}

func (s *Store) LogTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	return s.write(ctx, func(st *state) error {
		st.events = append(st.events, event)
		return nil
	})
}

// TaskEvents returns the audit trail of one task, oldest first.
func (s *Store) TaskEvents(taskID string) []domain.TaskEvent {
	var out []domain.TaskEvent
	s.read(func(st *state) {
		for _, e := range st.events {
			if e.TaskID == taskID {
				out = append(out, e)
			}
		}
	})
	return out
}
