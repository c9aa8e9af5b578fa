package simulator

import (
	"strings"
	"testing"

	"github.com/aochagavia/FastAnts/internal/antworld"
	"github.com/aochagavia/FastAnts/internal/instruction"
	. "github.com/smartystreets/goconvey/convey"
)

// 5x5 board, rocky perimeter, a single red anthill at (2,2).
const singleAntBoard = `5
5
# # # # #
# . . . #
# . + . #
# . . . #
# # # # #`

func TestSingleAntNoNeighbors(t *testing.T) {
	Convey("Given a lone ant that only turns right", t, func() {
		w, err := antworld.Parse(strings.NewReader(singleAntBoard))
		So(err, ShouldBeNil)

		red := []instruction.Instruction{instruction.Turn(antworld.Right, 0)}
		sim := New(w, red, nil, 10, 1)

		Convey("After six rounds it faces East again with no food or death changes", func() {
			for i := 0; i < 6; i++ {
				sim.OneRound()
			}
			ant := w.Cells[sim.Ants[0]].Ant
			So(sim.Round, ShouldEqual, uint32(6))
			So(ant.Direction, ShouldEqual, antworld.East)
			So(w.CountFood(), ShouldEqual, uint16(0))
			So(w.CountAnts(), ShouldEqual, uint16(1))
		})
	})
}

func TestPickUpAndDrop(t *testing.T) {
	Convey("Given an ant standing on one unit of food", t, func() {
		w, err := antworld.Parse(strings.NewReader(singleAntBoard))
		So(err, ShouldBeNil)
		w.Cells[w.CoordsToIndex(2, 2)].Food = 1

		red := []instruction.Instruction{
			instruction.PickUp(1, 4),
			instruction.Drop(0),
		}
		sim := New(w, red, nil, 10, 1)

		Convey("After round one the ant carries the food and the cell is empty", func() {
			sim.OneRound()
			ant := w.Cells[sim.Ants[0]].Ant
			So(ant.HasFood, ShouldBeTrue)
			So(w.Cells[w.CoordsToIndex(2, 2)].Food, ShouldEqual, uint16(0))
			So(ant.State, ShouldEqual, 1)

			Convey("After round two the food is back and has_food clears", func() {
				sim.OneRound()
				ant := w.Cells[sim.Ants[0]].Ant
				So(ant.HasFood, ShouldBeFalse)
				So(w.Cells[w.CoordsToIndex(2, 2)].Food, ShouldEqual, uint16(1))
				So(ant.State, ShouldEqual, 0)
			})
		})
	})
}

// 3x3 board: the single interior cell is boxed in by rock on every side,
// so any Move east runs straight into the perimeter.
const boxedAntBoard = `3
3
# # #
# + #
# # #`

func TestMoveIntoRocky(t *testing.T) {
	Convey("Given an ant facing straight at a rocky neighbor", t, func() {
		w, err := antworld.Parse(strings.NewReader(boxedAntBoard))
		So(err, ShouldBeNil)

		red := []instruction.Instruction{
			instruction.Move(1, 2),
			instruction.Turn(antworld.Right, 0),
			instruction.Turn(antworld.Left, 0),
		}
		sim := New(w, red, nil, 10, 1)

		Convey("Round one: the move fails, no resting delay", func() {
			sim.OneRound()
			ant := w.Cells[sim.Ants[0]].Ant
			So(ant.State, ShouldEqual, 2)
			So(ant.Resting, ShouldEqual, 0)

			Convey("Round two: the ant still executes immediately, turning left", func() {
				sim.OneRound()
				ant := w.Cells[sim.Ants[0]].Ant
				So(ant.State, ShouldEqual, 0)
			})
		})
	})
}

// 7x7 board: a red anthill at the center, a black anthill two cells east
// of it, and five more black ants placed by hand to ring the center on
// every side but the one the black anthill ant will move into.
const surroundBoard = `7
7
# # # # # # #
# . . . . . #
# . . . . . #
# . . + . - #
# . . . . . #
# . . . . . #
# # # # # # #`

func TestSurroundKill(t *testing.T) {
	Convey("Given a red ant ringed by five black ants with the sixth slot open", t, func() {
		w, err := antworld.Parse(strings.NewReader(surroundBoard))
		So(err, ShouldBeNil)

		center := w.CoordsToIndex(3, 3)
		for _, xy := range [][2]int{{4, 4}, {3, 4}, {2, 3}, {3, 2}, {4, 2}} {
			w.Cells[w.CoordsToIndex(xy[0], xy[1])].Ant = &antworld.Ant{Color: antworld.Black}
		}

		red := []instruction.Instruction{instruction.Turn(antworld.Right, 0)}
		black := []instruction.Instruction{instruction.Move(0, 0)}
		sim := New(w, red, black, 10, 1)
		// the black anthill ant was populated facing East; aim it West so
		// it steps into the one open neighbor of the center.
		w.Cells[sim.Ants[1]].Ant.Direction = antworld.West

		Convey("The black ant's move surrounds and kills the red ant", func() {
			sim.OneRound()

			So(w.Cells[center].Ant, ShouldBeNil)
			So(sim.Ants[0], ShouldEqual, antworld.Dead)
			So(w.Cells[center].Food, ShouldEqual, uint16(3))

			target := w.CoordsToIndex(4, 3)
			So(sim.Ants[1], ShouldEqual, target)
			So(w.Cells[target].Ant, ShouldNotBeNil)
			So(w.Cells[target].Ant.Color, ShouldEqual, antworld.Black)
		})
	})
}

func TestFlipDeterminism(t *testing.T) {
	Convey("Given two simulators seeded identically", t, func() {
		board := singleAntBoard
		red := []instruction.Instruction{
			instruction.Flip(2, 1, 2),
			instruction.MarkInstr(0, 0),
			instruction.MarkInstr(1, 0),
		}

		run := func(seed uint32) []int {
			w, err := antworld.Parse(strings.NewReader(board))
			So(err, ShouldBeNil)
			sim := New(w, red, nil, 20, seed)
			var states []int
			for i := 0; i < 20; i++ {
				sim.OneRound()
				states = append(states, w.Cells[sim.Ants[0]].Ant.State)
			}
			return states
		}

		Convey("Then the same seed reproduces an identical state trace", func() {
			a := run(7)
			b := run(7)
			So(a, ShouldResemble, b)
		})
	})
}

func TestReplayByReset(t *testing.T) {
	Convey("Given a simulator run to N rounds", t, func() {
		w1, err := antworld.Parse(strings.NewReader(singleAntBoard))
		So(err, ShouldBeNil)
		red := []instruction.Instruction{instruction.Turn(antworld.Right, 0)}
		sim := New(w1, red, nil, 20, 42)
		for i := 0; i < 10; i++ {
			sim.OneRound()
		}
		first := sim.PartialOutcome()

		Convey("Resetting with a fresh world and the same seed reproduces the outcome", func() {
			w2, err := antworld.Parse(strings.NewReader(singleAntBoard))
			So(err, ShouldBeNil)
			replay := sim.Reset(w2, 42)
			for i := 0; i < 10; i++ {
				replay.OneRound()
			}
			second := replay.PartialOutcome()
			So(second, ShouldResemble, first)
		})
	})
}

// 7x7 board with open interior, so an ant can move east repeatedly without
// running into the rocky perimeter within the rounds this test exercises.
const restingBoard = `7
7
# # # # # # #
# . . . . . #
# . . . . . #
# + . . . . #
# . . . . . #
# . . . . . #
# # # # # # #`

func TestRestingBounds(t *testing.T) {
	Convey("Given an ant that moves once then rests", t, func() {
		w, err := antworld.Parse(strings.NewReader(restingBoard))
		So(err, ShouldBeNil)
		red := []instruction.Instruction{instruction.Move(0, 0)}
		sim := New(w, red, nil, 20, 1)

		sim.OneRound()
		ant := w.Cells[sim.Ants[0]].Ant
		So(ant.Resting, ShouldEqual, 14)

		Convey("Resting counts down by exactly one per round to zero", func() {
			for i := 0; i < 13; i++ {
				sim.OneRound()
			}
			So(w.Cells[sim.Ants[0]].Ant.Resting, ShouldEqual, 1)

			sim.OneRound()
			So(w.Cells[sim.Ants[0]].Ant.Resting, ShouldEqual, 0)

			Convey("The round after resting reaches zero, the ant executes again", func() {
				before := sim.Ants[0]
				sim.OneRound()
				So(sim.Ants[0], ShouldNotEqual, before)
				So(w.Cells[sim.Ants[0]].Ant.Resting, ShouldEqual, 14)
			})
		})
	})
}

func TestCellIndexConsistencyAndUniqueness(t *testing.T) {
	Convey("Given a board with several ants moving around", t, func() {
		w, err := antworld.Parse(strings.NewReader(surroundBoard))
		So(err, ShouldBeNil)
		red := []instruction.Instruction{instruction.Move(0, 0), instruction.Turn(antworld.Right, 0)}
		black := []instruction.Instruction{instruction.Move(0, 0), instruction.Turn(antworld.Right, 0)}
		sim := New(w, red, black, 30, 9)

		for round := 0; round < 30; round++ {
			sim.OneRound()

			seen := make(map[int]bool)
			for id, pos := range sim.Ants {
				if pos == antworld.Dead {
					continue
				}
				So(seen[pos], ShouldBeFalse)
				seen[pos] = true
				So(w.Cells[pos].Ant, ShouldNotBeNil)
				So(w.Cells[pos].Ant.ID, ShouldEqual, id)
			}
		}
	})
}
