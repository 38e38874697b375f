package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repository "github.com/wekesa/attache/internal/adapters/repository"
	service "github.com/wekesa/attache/internal/app"
	"github.com/wekesa/attache/internal/domain/clock"
	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

var feedbackTime = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func startedService(t *testing.T) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithStore(repository.NewRoster(repository.WithClock(clock.Fixed(feedbackTime)))),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("service start failed: %v", err)
	}
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithClock(clock.Fixed(feedbackTime)),
			service.WithLogger(logger.Get()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And it should be marked as started", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(context.Background()), ShouldBeNil)
			})
		})

		Convey("When stopping the service", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_AddAttachee(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		Convey("When adding an attachee", func() {
			summary, err := svc.AddAttachee(ctx, "Omar", "omar@example.com", "Engineering")

			So(err, ShouldBeNil)
			So(summary.Name, ShouldEqual, "Omar")
			So(summary.Division, ShouldEqual, model.Engineering)
			So(summary.PerformanceScore, ShouldEqual, 0)
		})

		Convey("When adding with an unknown division", func() {
			_, err := svc.AddAttachee(ctx, "Someone", "x@example.com", "Marketing")

			Convey("Then the invalid-division error propagates unchanged", func() {
				So(errors.Is(err, model.ErrInvalidDivision), ShouldBeTrue)
			})
		})
	})
}

func TestService_SoftFailOperations(t *testing.T) {
	Convey("Given a started service with one attachee", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		_, err := svc.AddAttachee(ctx, "Mary", "mary@example.com", "Tech Programs")
		So(err, ShouldBeNil)

		Convey("When operating on an unknown email", func() {
			So(svc.AssignTask(ctx, "nobody@example.com", "task", "2025-02-07", 1), ShouldBeFalse)
			So(svc.AddFeedback(ctx, "nobody@example.com", "text", 50, "r"), ShouldBeFalse)
			So(svc.CompleteTask(ctx, "nobody@example.com", 1, "2025-02-08"), ShouldBeFalse)
			So(svc.RemoveAttachee(ctx, "nobody@example.com"), ShouldEqual, 0)

			Convey("Then the roster is unchanged", func() {
				stats := svc.GetStats()
				So(stats["totalAttachees"], ShouldEqual, 1)

				summaries := svc.ListSummaries(ctx)
				So(summaries, ShouldHaveLength, 1)
				So(summaries[0].TasksAssigned, ShouldEqual, 0)
				So(summaries[0].FeedbackCount, ShouldEqual, 0)
			})
		})
	})
}

func TestService_EndToEndReport(t *testing.T) {
	Convey("Given the example roster scenario", t, func() {
		ctx := context.Background()
		svc := startedService(t)
		defer svc.Stop()

		for _, a := range []struct{ name, email, division string }{
			{"Omar", "omar@example.com", "Engineering"},
			{"Martin", "martin@example.com", "Engineering"},
			{"Mary", "mary@example.com", "Tech Programs"},
		} {
			_, err := svc.AddAttachee(ctx, a.name, a.email, a.division)
			So(err, ShouldBeNil)
		}

		So(svc.AssignTaskToDivision(ctx, model.Engineering, "Set up environment", "2025-02-07", 3), ShouldEqual, 2)
		So(svc.AssignTask(ctx, "omar@example.com", "Onboarding flow", "2025-02-14", 4), ShouldBeTrue)
		So(svc.CompleteTask(ctx, "omar@example.com", 1, "2025-02-03"), ShouldBeTrue)
		So(svc.CompleteTask(ctx, "omar@example.com", 2, "2025-02-12"), ShouldBeTrue)
		So(svc.AddFeedback(ctx, "omar@example.com", "excellent", 95, "r"), ShouldBeTrue)
		So(svc.AddFeedback(ctx, "martin@example.com", "solid", 82, "r"), ShouldBeTrue)
		So(svc.AddFeedback(ctx, "mary@example.com", "outstanding", 98, "r"), ShouldBeTrue)

		Convey("When generating the report", func() {
			rep := svc.GenerateReport(ctx)

			omar := rep.Divisions[model.Engineering][0]
			So(omar.PerformanceScore, ShouldEqual, 95)
			So(omar.TasksAssigned, ShouldEqual, 2)
			So(omar.TasksCompleted, ShouldEqual, 2)
			So(omar.TasksPending, ShouldEqual, 0)

			So(rep.Overall.TotalAttachees, ShouldEqual, 3)
			So(rep.Overall.AverageScore, ShouldEqual, 92)
			So(rep.Overall.HighestScore, ShouldEqual, 98)
			So(rep.Overall.LowestScore, ShouldEqual, 82)
		})

		Convey("When reading division listings", func() {
			eng := svc.ListByDivision(ctx, model.Engineering)
			So(eng, ShouldHaveLength, 2)

			stats := svc.GetStats()
			perDivision, ok := stats["attacheesPerDivision"].(map[string]int)
			So(ok, ShouldBeTrue)
			So(perDivision["Engineering"], ShouldEqual, 2)
			So(perDivision["Radio Support"], ShouldEqual, 0)
		})
	})
}
