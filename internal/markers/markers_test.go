package markers

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	Convey("Given an empty marker set", t, func() {
		var s Set
		So(s.Any(), ShouldBeFalse)

		Convey("When a bit is set", func() {
			s.Set(3)

			Convey("Then it tests true and appears in Bits", func() {
				So(s.Test(3), ShouldBeTrue)
				So(s.Bits(), ShouldResemble, []int{3})
				So(s.Any(), ShouldBeTrue)
			})

			Convey("When the same bit is cleared", func() {
				s.Clear(3)

				Convey("Then the set is empty again (round-trip)", func() {
					So(s.Test(3), ShouldBeFalse)
					So(s.Any(), ShouldBeFalse)
				})
			})
		})

		Convey("When several bits are set out of order", func() {
			s.Set(5)
			s.Set(0)
			s.Set(2)

			Convey("Then Bits returns them in ascending order", func() {
				So(s.Bits(), ShouldResemble, []int{0, 2, 5})
			})
		})
	})
}
