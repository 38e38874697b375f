// Package demo seeds an example roster so a fresh instance has data to
// report on. Enabled with the seed_demo_data config flag.
package demo

import (
	"context"

	service "github.com/wekesa/attache/internal/app"
	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/pkg/logger"
)

type seedAttachee struct {
	name     string
	email    string
	division model.Division
}

type seedFeedback struct {
	email    string
	comment  string
	score    int
	reviewer string
}

var seedRoster = []seedAttachee{
	{name: "Omar Ahmed", email: "omar@example.com", division: model.Engineering},
	{name: "Martin Kamau", email: "martin@example.com", division: model.Engineering},
	{name: "Mary Wanjiru", email: "mary@example.com", division: model.TechPrograms},
	{name: "Amina Yusuf", email: "amina@example.com", division: model.RadioSupport},
	{name: "Brian Otieno", email: "brian@example.com", division: model.HubSupport},
}

var seedReviews = []seedFeedback{
	{email: "omar@example.com", comment: "Excellent work on the onboarding flow", score: 95, reviewer: "J. Mwangi"},
	{email: "martin@example.com", comment: "Solid progress, needs more test coverage", score: 82, reviewer: "J. Mwangi"},
	{email: "mary@example.com", comment: "Outstanding workshop facilitation", score: 98, reviewer: "A. Njeri"},
	{email: "amina@example.com", comment: "Reliable on the morning broadcast", score: 88, reviewer: "P. Odhiambo"},
}

// Seed populates the service with the example roster: a handful of
// attachees, a division-wide task, individual tasks, completions and
// feedback. Errors are logged and skipped; seeding is best-effort.
func Seed(ctx context.Context, svc *service.Service) {
	log := logger.Get().Named("demo")

	for _, a := range seedRoster {
		if _, err := svc.AddAttachee(ctx, a.name, a.email, a.division.String()); err != nil {
			log.Warn(ctx, "seed attachee failed",
				logger.String("email", a.email),
				logger.Error(err),
			)
		}
	}

	// Everyone in Engineering gets the same first task.
	svc.AssignTaskToDivision(ctx, model.Engineering, "Set up development environment", "2025-02-07", 3)

	svc.AssignTask(ctx, "omar@example.com", "Build the attachee onboarding flow", "2025-02-14", 4)
	svc.AssignTask(ctx, "mary@example.com", "Prepare the digital literacy workshop", "2025-02-10", 5)
	svc.AssignTask(ctx, "amina@example.com", "Draft the morning show rundown", "2025-02-05", 2)

	svc.CompleteTask(ctx, "omar@example.com", 1, "2025-02-03")
	svc.CompleteTask(ctx, "omar@example.com", 2, "2025-02-12")
	svc.CompleteTask(ctx, "mary@example.com", 1, "2025-02-09")

	for _, f := range seedReviews {
		svc.AddFeedback(ctx, f.email, f.comment, f.score, f.reviewer)
	}

	log.Info(ctx, "demo roster seeded", logger.Int("attachees", len(seedRoster)))
}
