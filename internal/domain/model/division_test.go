package model_test

import (
	"errors"
	"testing"

	model "github.com/wekesa/attache/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseDivision(t *testing.T) {
	convey.Convey("Given the closed division set", t, func() {
		convey.Convey("When parsing each recognized value", func() {
			for _, d := range model.Divisions() {
				parsed, err := model.ParseDivision(string(d))

				convey.So(err, convey.ShouldBeNil)
				convey.So(parsed, convey.ShouldEqual, d)
			}
		})

		convey.Convey("When parsing an unknown value", func() {
			_, err := model.ParseDivision("Marketing")

			convey.Convey("Then it should fail with the invalid-division kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, model.ErrInvalidDivision), convey.ShouldBeTrue)
			})

			convey.Convey("And the message should list the valid set", func() {
				convey.So(err.Error(), convey.ShouldContainSubstring, "Engineering")
				convey.So(err.Error(), convey.ShouldContainSubstring, "Tech Programs")
				convey.So(err.Error(), convey.ShouldContainSubstring, "Radio Support")
				convey.So(err.Error(), convey.ShouldContainSubstring, "Hub Support")
			})
		})

		convey.Convey("When parsing with the wrong case", func() {
			_, err := model.ParseDivision("engineering")

			convey.Convey("Then matching should be exact", func() {
				convey.So(errors.Is(err, model.ErrInvalidDivision), convey.ShouldBeTrue)
			})
		})

		convey.Convey("Then exactly four divisions are recognized", func() {
			convey.So(len(model.Divisions()), convey.ShouldEqual, 4)
		})
	})
}
