// Package instruction implements the closed instruction set an ant's
// state indexes into (spec §3.5): a tagged sum of eight variants with
// exhaustive matching, deliberately not modeled as an open interface
// hierarchy (spec §9, "Dynamic dispatch").
package instruction

import "github.com/aochagavia/FastAnts/internal/antworld"

// Op identifies which instruction variant an Instruction holds.
type Op uint8

const (
	OpSense Op = iota
	OpMark
	OpUnmark
	OpPickUp
	OpDrop
	OpTurn
	OpMove
	OpFlip
)

// SenseDir selects which cell Sense inspects, relative to the acting ant.
type SenseDir uint8

const (
	Here SenseDir = iota
	Ahead
	LeftAhead
	RightAhead
)

// Instruction is a sparse-operand tagged variant. Only the fields
// relevant to Op are meaningful; the rest are zero.
type Instruction struct {
	Op Op

	SenseDir  SenseDir
	Condition Condition

	Mark int

	St1, St2 int // Sense/Flip branch targets; also PickUp/Move success/failure

	Next int // Mark/Unmark/Drop/Turn next state

	TurnDir antworld.TurnDir

	N int // Flip's n
}

// Sense builds a Sense instruction.
func Sense(dir SenseDir, st1, st2 int, cond Condition) Instruction {
	return Instruction{Op: OpSense, SenseDir: dir, St1: st1, St2: st2, Condition: cond}
}

// MarkInstr builds a Mark instruction.
func MarkInstr(bit, next int) Instruction {
	return Instruction{Op: OpMark, Mark: bit, Next: next}
}

// UnmarkInstr builds an Unmark instruction.
func UnmarkInstr(bit, next int) Instruction {
	return Instruction{Op: OpUnmark, Mark: bit, Next: next}
}

// PickUp builds a PickUp instruction.
func PickUp(successState, failureState int) Instruction {
	return Instruction{Op: OpPickUp, St1: successState, St2: failureState}
}

// Drop builds a Drop instruction.
func Drop(next int) Instruction {
	return Instruction{Op: OpDrop, Next: next}
}

// Turn builds a Turn instruction.
func Turn(dir antworld.TurnDir, next int) Instruction {
	return Instruction{Op: OpTurn, TurnDir: dir, Next: next}
}

// Move builds a Move instruction.
func Move(successState, failureState int) Instruction {
	return Instruction{Op: OpMove, St1: successState, St2: failureState}
}

// Flip builds a Flip instruction.
func Flip(n, st1, st2 int) Instruction {
	return Instruction{Op: OpFlip, N: n, St1: st1, St2: st2}
}
