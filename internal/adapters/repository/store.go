// Package repository defines the roster store interface and its
// in-memory implementation.
package repository

import (
	"context"

	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/internal/domain/report"
)

// Store provides read/write access to the attachee roster.
//
// Missing-identity conditions (unknown email, unknown task id) are
// deliberate silent no-ops, surfaced as a false/zero return rather than
// an error; callers that want strict behavior inspect the return value.
// The only recoverable error is the invalid-division failure from Add.
type Store interface {
	// Add constructs an attachee and appends it to the roster. The
	// division construction failure propagates unchanged.
	Add(ctx context.Context, name, email, division string) (*model.Attachee, error)

	// Remove filters out every record with the given email (zero or one
	// in practice) and returns how many were removed.
	Remove(ctx context.Context, email string) int

	// Find returns the first record matching email, if any.
	Find(ctx context.Context, email string) (*model.Attachee, bool)

	// ByDivision returns the records of a division in roster order.
	ByDivision(ctx context.Context, d model.Division) []*model.Attachee

	// AssignTask appends a task to the attachee with the given email.
	// Returns false (no-op) when the email is unknown.
	AssignTask(ctx context.Context, email, description, deadline string, priority int) bool

	// AssignTaskToDivision appends the task to every record currently in
	// the division and returns how many received it.
	AssignTaskToDivision(ctx context.Context, d model.Division, description, deadline string, priority int) int

	// CompleteTask marks a task completed on the attachee's own task
	// list. Unknown email or task id is a no-op returning false.
	CompleteTask(ctx context.Context, email string, taskID int, completionDate string) bool

	// AddFeedback appends a feedback entry stamped with the roster
	// clock. Returns false (no-op) when the email is unknown.
	AddFeedback(ctx context.Context, email, comment string, score int, reviewer string) bool

	// Summaries returns every record's performance summary in roster order.
	Summaries(ctx context.Context) []model.Summary

	// SummariesByDivision returns the summaries of one division in roster order.
	SummariesByDivision(ctx context.Context, d model.Division) []model.Summary

	// Report folds the whole roster into the performance report.
	Report(ctx context.Context) report.Report

	// Count returns the number of attachees on the roster.
	Count(ctx context.Context) int

	// CountByDivision returns per-division roster sizes, keyed by every
	// recognized division.
	CountByDivision(ctx context.Context) map[model.Division]int
}
