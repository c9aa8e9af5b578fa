package instruction

import (
	"testing"

	"github.com/aochagavia/FastAnts/internal/antworld"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConditionEval(t *testing.T) {
	Convey("Given a cell with a red ant carrying food", t, func() {
		cell := &antworld.Cell{
			Food: 3,
			Ant:  &antworld.Ant{Color: antworld.Red, HasFood: true},
		}

		Convey("Friend is true from red's perspective, false from black's", func() {
			So(Friend().Eval(cell, antworld.Red), ShouldBeTrue)
			So(Friend().Eval(cell, antworld.Black), ShouldBeFalse)
		})

		Convey("Foe is the opposite", func() {
			So(Foe().Eval(cell, antworld.Red), ShouldBeFalse)
			So(Foe().Eval(cell, antworld.Black), ShouldBeTrue)
		})

		Convey("FriendWithFood and FoeWithFood follow suit", func() {
			So(FriendWithFood().Eval(cell, antworld.Red), ShouldBeTrue)
			So(FoeWithFood().Eval(cell, antworld.Black), ShouldBeTrue)
		})

		Convey("Food is true because the cell has food", func() {
			So(Food().Eval(cell, antworld.Red), ShouldBeTrue)
		})
	})

	Convey("Given a rocky cell", t, func() {
		cell := &antworld.Cell{Rocky: true}
		So(Rock().Eval(cell, antworld.Red), ShouldBeTrue)
		So(Friend().Eval(cell, antworld.Red), ShouldBeFalse)
	})

	Convey("Given a cell with a red marker bit set", t, func() {
		cell := &antworld.Cell{}
		cell.MarkersPtr(antworld.Red).Set(2)

		Convey("Marker(2) is true for red, false for black", func() {
			So(Marker(2).Eval(cell, antworld.Red), ShouldBeTrue)
			So(Marker(2).Eval(cell, antworld.Black), ShouldBeFalse)
		})

		Convey("FoeMarker is true from black's perspective", func() {
			So(FoeMarker().Eval(cell, antworld.Black), ShouldBeTrue)
			So(FoeMarker().Eval(cell, antworld.Red), ShouldBeFalse)
		})
	})

	Convey("Given a red anthill cell", t, func() {
		cell := &antworld.Cell{HasAnthill: true, Anthill: antworld.Red}
		So(Home().Eval(cell, antworld.Red), ShouldBeTrue)
		So(Home().Eval(cell, antworld.Black), ShouldBeFalse)
		So(FoeHome().Eval(cell, antworld.Black), ShouldBeTrue)
	})
}

func TestInstructionBuilders(t *testing.T) {
	Convey("Builders tag the Op field correctly", t, func() {
		So(Sense(Here, 1, 2, Food()).Op, ShouldEqual, OpSense)
		So(MarkInstr(0, 1).Op, ShouldEqual, OpMark)
		So(UnmarkInstr(0, 1).Op, ShouldEqual, OpUnmark)
		So(PickUp(1, 2).Op, ShouldEqual, OpPickUp)
		So(Drop(1).Op, ShouldEqual, OpDrop)
		So(Turn(antworld.Left, 1).Op, ShouldEqual, OpTurn)
		So(Move(1, 2).Op, ShouldEqual, OpMove)
		So(Flip(2, 1, 2).Op, ShouldEqual, OpFlip)
	})
}
