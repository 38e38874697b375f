package clock_test

import (
	"testing"
	"time"

	"github.com/wekesa/attache/internal/domain/clock"
	"github.com/smartystreets/goconvey/convey"
)

func TestSystemClock(t *testing.T) {
	convey.Convey("Given the system clock", t, func() {
		c := clock.System()

		convey.Convey("Then it should track wall time", func() {
			before := time.Now()
			now := c.Now()
			after := time.Now()

			convey.So(now, convey.ShouldHappenOnOrBetween, before, after)
		})
	})
}

func TestFixedClock(t *testing.T) {
	convey.Convey("Given a fixed clock", t, func() {
		at := time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)
		c := clock.Fixed(at)

		convey.Convey("Then it should always report the same instant", func() {
			convey.So(c.Now(), convey.ShouldEqual, at)
			convey.So(c.Now(), convey.ShouldEqual, at)
		})
	})
}
