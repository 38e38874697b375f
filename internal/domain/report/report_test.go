package report_test

import (
	"testing"
	"time"

	model "github.com/wekesa/attache/internal/domain/model"
	"github.com/wekesa/attache/internal/domain/report"
	"github.com/smartystreets/goconvey/convey"
)

var reviewTime = time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

func mustAttachee(t *testing.T, name, email string, d model.Division) *model.Attachee {
	t.Helper()
	a, err := model.NewAttachee(name, email, string(d))
	if err != nil {
		t.Fatalf("attachee construction failed: %v", err)
	}
	return a
}

func TestBuildEmptyRoster(t *testing.T) {
	convey.Convey("Given an empty roster", t, func() {
		rep := report.Build(nil)

		convey.Convey("Then overall stats are all zero", func() {
			convey.So(rep.Overall.TotalAttachees, convey.ShouldEqual, 0)
			convey.So(rep.Overall.AverageScore, convey.ShouldEqual, 0)
			convey.So(rep.Overall.HighestScore, convey.ShouldEqual, 0)

			convey.Convey("And the lowest score is reset to 0, not left at the 100 seed", func() {
				convey.So(rep.Overall.LowestScore, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("Then every division is present with an empty list", func() {
			convey.So(rep.Divisions, convey.ShouldHaveLength, 4)
			for _, d := range model.Divisions() {
				summaries, ok := rep.Divisions[d]
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(summaries, convey.ShouldBeEmpty)
			}
		})
	})
}

func TestBuildGrouping(t *testing.T) {
	convey.Convey("Given attachees across divisions", t, func() {
		omar := mustAttachee(t, "Omar", "omar@example.com", model.Engineering)
		martin := mustAttachee(t, "Martin", "martin@example.com", model.Engineering)
		mary := mustAttachee(t, "Mary", "mary@example.com", model.TechPrograms)

		omar.AddFeedback("strong", 95, "r", reviewTime)
		martin.AddFeedback("steady", 82, "r", reviewTime)
		mary.AddFeedback("excellent", 98, "r", reviewTime)

		rep := report.Build([]*model.Attachee{omar, martin, mary})

		convey.Convey("Then summaries group by division in roster order", func() {
			convey.So(rep.Divisions[model.Engineering], convey.ShouldHaveLength, 2)
			convey.So(rep.Divisions[model.Engineering][0].Name, convey.ShouldEqual, "Omar")
			convey.So(rep.Divisions[model.Engineering][1].Name, convey.ShouldEqual, "Martin")
			convey.So(rep.Divisions[model.TechPrograms], convey.ShouldHaveLength, 1)
		})

		convey.Convey("Then divisions without members keep empty lists", func() {
			convey.So(rep.Divisions[model.RadioSupport], convey.ShouldBeEmpty)
			convey.So(rep.Divisions[model.HubSupport], convey.ShouldBeEmpty)
		})

		convey.Convey("Then overall stats fold the whole population", func() {
			convey.So(rep.Overall.TotalAttachees, convey.ShouldEqual, 3)
			// round((95+82+98)/3) = round(91.67) = 92
			convey.So(rep.Overall.AverageScore, convey.ShouldEqual, 92)
			convey.So(rep.Overall.HighestScore, convey.ShouldEqual, 98)
			convey.So(rep.Overall.LowestScore, convey.ShouldEqual, 82)
		})
	})
}

func TestBuildExtremes(t *testing.T) {
	convey.Convey("Given a roster where every score is 100", t, func() {
		a := mustAttachee(t, "A", "a@example.com", model.Engineering)
		b := mustAttachee(t, "B", "b@example.com", model.HubSupport)
		a.AddFeedback("perfect", 100, "r", reviewTime)
		b.AddFeedback("perfect", 100, "r", reviewTime)

		rep := report.Build([]*model.Attachee{a, b})

		convey.Convey("Then the lowest score reports 100, matching the running-minimum algorithm", func() {
			convey.So(rep.Overall.LowestScore, convey.ShouldEqual, 100)
			convey.So(rep.Overall.HighestScore, convey.ShouldEqual, 100)
			convey.So(rep.Overall.AverageScore, convey.ShouldEqual, 100)
		})
	})

	convey.Convey("Given a roster of attachees without feedback", t, func() {
		a := mustAttachee(t, "A", "a@example.com", model.Engineering)
		rep := report.Build([]*model.Attachee{a})

		convey.Convey("Then their zero scores drive the extremes", func() {
			convey.So(rep.Overall.TotalAttachees, convey.ShouldEqual, 1)
			convey.So(rep.Overall.AverageScore, convey.ShouldEqual, 0)
			convey.So(rep.Overall.HighestScore, convey.ShouldEqual, 0)
			convey.So(rep.Overall.LowestScore, convey.ShouldEqual, 0)
		})
	})
}
