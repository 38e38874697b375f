package repository

import (
	"context"
	"sync"

	"github.com/wekesa/attache/internal/domain/clock"
	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/internal/domain/report"
)

// roster implements Store with an in-memory record slice guarded by a
// single coarse lock. Task assignment, feedback addition and report
// generation all touch the same mutable sequences, so one RWMutex per
// roster instance is the whole concurrency story; there is no
// finer-grained locking.
type roster struct {
	mu      sync.RWMutex
	records []*model.Attachee
	clock   clock.Clock
}

// NewRoster creates an empty in-memory roster with configuration options.
func NewRoster(opts ...Option) Store {
	r := &roster{
		clock: clock.System(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add constructs an attachee and appends it to the roster.
func (r *roster) Add(ctx context.Context, name, email, division string) (*model.Attachee, error) {
	a, err := model.NewAttachee(name, email, division)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, a)
	return a, nil
}

// Remove filters out records by email. Removing an unknown email is a no-op.
func (r *roster) Remove(ctx context.Context, email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	removed := 0
	for _, a := range r.records {
		if a.Email == email {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	// Release dropped tail references.
	for i := len(kept); i < len(r.records); i++ {
		r.records[i] = nil
	}
	r.records = kept
	return removed
}

// Find returns the first record matching email. Linear scan; email is
// assumed unique across the roster but not enforced beyond this lookup.
func (r *roster) Find(ctx context.Context, email string) (*model.Attachee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(email)
}

func (r *roster) findLocked(email string) (*model.Attachee, bool) {
	for _, a := range r.records {
		if a.Email == email {
			return a, true
		}
	}
	return nil, false
}

// ByDivision returns the records of a division in roster order.
func (r *roster) ByDivision(ctx context.Context, d model.Division) []*model.Attachee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Attachee
	for _, a := range r.records {
		if a.Division == d {
			out = append(out, a)
		}
	}
	return out
}

// AssignTask appends a task to the attachee with the given email.
func (r *roster) AssignTask(ctx context.Context, email, description, deadline string, priority int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.findLocked(email)
	if !ok {
		return false
	}
	a.AssignTask(description, deadline, priority)
	return true
}

// AssignTaskToDivision assigns the task to every record currently in
// the division. The membership snapshot and the appends happen under
// one lock acquisition.
func (r *roster) AssignTaskToDivision(ctx context.Context, d model.Division, description, deadline string, priority int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	assigned := 0
	for _, a := range r.records {
		if a.Division == d {
			a.AssignTask(description, deadline, priority)
			assigned++
		}
	}
	return assigned
}

// CompleteTask marks a task completed on the attachee's own task list.
func (r *roster) CompleteTask(ctx context.Context, email string, taskID int, completionDate string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.findLocked(email)
	if !ok {
		return false
	}
	return a.CompleteTask(taskID, completionDate)
}

// AddFeedback appends a feedback entry stamped with the roster clock.
func (r *roster) AddFeedback(ctx context.Context, email, comment string, score int, reviewer string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.findLocked(email)
	if !ok {
		return false
	}
	a.AddFeedback(comment, score, reviewer, r.clock.Now())
	return true
}

// Summaries returns every record's performance summary in roster order.
func (r *roster) Summaries(ctx context.Context) []model.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Summary, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a.Summary())
	}
	return out
}

// SummariesByDivision returns the summaries of one division in roster order.
func (r *roster) SummariesByDivision(ctx context.Context, d model.Division) []model.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Summary{}
	for _, a := range r.records {
		if a.Division == d {
			out = append(out, a.Summary())
		}
	}
	return out
}

// Report folds the whole roster into the performance report under the
// read lock, so the fold sees a consistent snapshot.
func (r *roster) Report(ctx context.Context) report.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return report.Build(r.records)
}

// Count returns the number of attachees on the roster.
func (r *roster) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// CountByDivision returns per-division roster sizes keyed by every
// recognized division, zero included.
func (r *roster) CountByDivision(ctx context.Context) map[model.Division]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.Division]int, len(model.Divisions()))
	for _, d := range model.Divisions() {
		counts[d] = 0
	}
	for _, a := range r.records {
		counts[a.Division]++
	}
	return counts
}
