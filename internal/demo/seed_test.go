package demo_test

import (
	"context"
	"testing"

	service "github.com/wekesa/attache/internal/app"
	"github.com/wekesa/attache/internal/demo"
	"github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestSeed(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When seeding the demo roster", func() {
			demo.Seed(ctx, svc)

			Convey("Then every division has at least one attachee", func() {
				stats := svc.GetStats()
				So(stats["totalAttachees"], ShouldEqual, 5)

				perDivision, ok := stats["attacheesPerDivision"].(map[string]int)
				So(ok, ShouldBeTrue)
				for _, d := range model.Divisions() {
					So(perDivision[d.String()], ShouldBeGreaterThan, 0)
				}
			})

			Convey("Then the report reflects the seeded feedback", func() {
				rep := svc.GenerateReport(ctx)

				So(rep.Overall.TotalAttachees, ShouldEqual, 5)
				So(rep.Overall.HighestScore, ShouldEqual, 98)
				// Brian has no feedback yet, so the floor is 0.
				So(rep.Overall.LowestScore, ShouldEqual, 0)

				omar := rep.Divisions[model.Engineering][0]
				So(omar.PerformanceScore, ShouldEqual, 95)
				So(omar.TasksAssigned, ShouldEqual, 2)
				So(omar.TasksCompleted, ShouldEqual, 2)
			})

			Convey("And seeding again only logs, never fails", func() {
				So(func() { demo.Seed(ctx, svc) }, ShouldNotPanic)
			})
		})
	})
}
