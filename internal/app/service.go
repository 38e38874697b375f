// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/wekesa/attache/internal/adapters/repository"
	"github.com/wekesa/attache/internal/domain/clock"
	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/internal/domain/report"
	"github.com/wekesa/attache/pkg/logger"
	"github.com/wekesa/attache/pkg/metrics"
)

// Service implements the roster operations behind the HTTP API: it
// wires the in-memory roster store to logging and metrics.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster repository.Store
	clock  clock.Clock

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the time source used to stamp feedback entries.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithStore sets a custom roster store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.roster = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:  clock.System(),
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.roster == nil {
		s.roster = repository.NewRoster(repository.WithClock(s.clock))
	}

	s.started = true
	s.logger.Info(ctx, "roster service started")
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// AddAttachee constructs an attachee and appends it to the roster,
// returning its summary. An unknown division propagates as
// model.ErrInvalidDivision.
func (s *Service) AddAttachee(ctx context.Context, name, email, division string) (model.Summary, error) {
	a, err := s.roster.Add(ctx, name, email, division)
	if err != nil {
		metrics.RecordDivisionRejected()
		s.logger.Warn(ctx, "attachee rejected",
			logger.String("email", email),
			logger.String("division", division),
			logger.Error(err),
		)
		return model.Summary{}, err
	}

	metrics.RecordAttacheeAdded()
	s.updateRosterGauges(ctx)
	s.logger.Info(ctx, "attachee added",
		logger.String("email", email),
		logger.String("division", division),
	)
	return a.Summary(), nil
}

// RemoveAttachee removes every record with the given email and returns
// how many were removed. Removing an unknown email is a no-op.
func (s *Service) RemoveAttachee(ctx context.Context, email string) int {
	removed := s.roster.Remove(ctx, email)
	if removed == 0 {
		metrics.RecordNoopLookup("remove_attachee")
		s.logger.Debug(ctx, "remove matched nothing", logger.String("email", email))
		return 0
	}

	for i := 0; i < removed; i++ {
		metrics.RecordAttacheeRemoved()
	}
	s.updateRosterGauges(ctx)
	s.logger.Info(ctx, "attachee removed",
		logger.String("email", email),
		logger.Int("removed", removed),
	)
	return removed
}

// ListSummaries returns every attachee's summary in roster order.
func (s *Service) ListSummaries(ctx context.Context) []model.Summary {
	return s.roster.Summaries(ctx)
}

// ListByDivision returns the summaries of one division in roster order.
func (s *Service) ListByDivision(ctx context.Context, d model.Division) []model.Summary {
	return s.roster.SummariesByDivision(ctx, d)
}

// AssignTask appends a task to the attachee with the given email.
// Unknown email is a silent no-op (logged, counted, not an error).
func (s *Service) AssignTask(ctx context.Context, email, description, deadline string, priority int) bool {
	ok := s.roster.AssignTask(ctx, email, description, deadline, priority)
	if !ok {
		metrics.RecordNoopLookup("assign_task")
		s.logger.Debug(ctx, "task assignment matched nothing", logger.String("email", email))
		return false
	}

	metrics.RecordTaskAssigned(1)
	s.logger.Info(ctx, "task assigned",
		logger.String("email", email),
		logger.Int("priority", priority),
	)
	return true
}

// AssignTaskToDivision assigns the task to every attachee currently in
// the division and returns how many received it.
func (s *Service) AssignTaskToDivision(ctx context.Context, d model.Division, description, deadline string, priority int) int {
	assigned := s.roster.AssignTaskToDivision(ctx, d, description, deadline, priority)
	metrics.RecordTaskAssigned(assigned)
	s.logger.Info(ctx, "division-wide task assigned",
		logger.String("division", d.String()),
		logger.Int("assigned", assigned),
	)
	return assigned
}

// CompleteTask marks a task completed. Unknown email or task id is a
// silent no-op.
func (s *Service) CompleteTask(ctx context.Context, email string, taskID int, completionDate string) bool {
	ok := s.roster.CompleteTask(ctx, email, taskID, completionDate)
	if !ok {
		metrics.RecordNoopLookup("complete_task")
		s.logger.Debug(ctx, "task completion matched nothing",
			logger.String("email", email),
			logger.Int("taskID", taskID),
		)
		return false
	}

	metrics.RecordTaskCompleted()
	s.logger.Info(ctx, "task completed",
		logger.String("email", email),
		logger.Int("taskID", taskID),
	)
	return true
}

// AddFeedback records supervisor feedback. Unknown email is a silent no-op.
func (s *Service) AddFeedback(ctx context.Context, email, comment string, score int, reviewer string) bool {
	ok := s.roster.AddFeedback(ctx, email, comment, score, reviewer)
	if !ok {
		metrics.RecordNoopLookup("add_feedback")
		s.logger.Debug(ctx, "feedback matched nothing", logger.String("email", email))
		return false
	}

	metrics.RecordFeedback()
	s.logger.Info(ctx, "feedback recorded",
		logger.String("email", email),
		logger.Int("score", score),
	)
	return true
}

// GenerateReport folds the whole roster into the performance report.
func (s *Service) GenerateReport(ctx context.Context) report.Report {
	start := time.Now()
	rep := s.roster.Report(ctx)

	metrics.RecordReportGenerated()
	metrics.RecordReportBuildDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Debug(ctx, "report generated",
		logger.Int("totalAttachees", rep.Overall.TotalAttachees),
	)
	return rep
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		stats["totalAttachees"] = s.roster.Count(ctx)
		byDivision := make(map[string]int, len(model.Divisions()))
		for d, n := range s.roster.CountByDivision(ctx) {
			byDivision[d.String()] = n
		}
		stats["attacheesPerDivision"] = byDivision
	}

	return stats
}

// updateRosterGauges refreshes roster size gauges after a membership change.
func (s *Service) updateRosterGauges(ctx context.Context) {
	metrics.UpdateRosterSize(s.roster.Count(ctx))
	for d, n := range s.roster.CountByDivision(ctx) {
		metrics.UpdateDivisionSize(d.String(), n)
	}
}
