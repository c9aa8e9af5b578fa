// Package simulator implements the synchronous round algorithm (spec §4,
// §5): given a world and per-color instruction programs, it advances ants
// one instruction per round in ant-position-index order, applies the
// resulting position updates, and runs surround-kill. It is single-threaded
// by design (spec Non-goals): concurrency belongs to the caller, not to the
// round algorithm itself.
package simulator

import (
	"github.com/aochagavia/FastAnts/internal/antworld"
	"github.com/aochagavia/FastAnts/internal/instruction"
	"github.com/aochagavia/FastAnts/internal/rng"
)

// Simulator owns a World, the two per-color instruction programs, the
// ant-position index, and the PRNG stream driving Flip.
type Simulator struct {
	World             *antworld.World
	RedInstructions   []instruction.Instruction
	BlackInstructions []instruction.Instruction

	// Ants is the stable ant-position index (spec §3.4): Ants[id] is the
	// live cell index of ant id, or antworld.Dead once it has been killed.
	Ants []int

	Round     uint32
	MaxRounds uint32

	rng *rng.Rng
}

// New builds a Simulator by populating world and seeding the PRNG. world
// must not already be populated.
func New(world *antworld.World, redInstructions, blackInstructions []instruction.Instruction, maxRounds uint32, seed uint32) *Simulator {
	return &Simulator{
		World:             world,
		RedInstructions:   redInstructions,
		BlackInstructions: blackInstructions,
		Ants:              world.Populate(),
		MaxRounds:         maxRounds,
		rng:               rng.New(seed),
	}
}

// Reset rebuilds a fresh Simulator from world, reusing the instruction
// programs and round budget already configured, under a new seed. This is
// the entry point a visualizer's "restart" control or a batch-replay loop
// uses instead of constructing a Simulator by hand each time.
func (s *Simulator) Reset(world *antworld.World, seed uint32) *Simulator {
	return New(world, s.RedInstructions, s.BlackInstructions, s.MaxRounds, seed)
}

// positionUpdate records that the ant previously occupying Old now occupies
// New (or antworld.Dead if it was just killed).
type positionUpdate struct {
	Old, New int
}

// OneRound advances exactly one round if Round < MaxRounds; otherwise it is
// a no-op. Every live ant executes the instruction addressed by its current
// state, in ant-position-index order; resting ants merely decrement.
func (s *Simulator) OneRound() {
	if s.Round >= s.MaxRounds {
		return
	}
	s.Round++

	var updates []positionUpdate
	for _, pos := range s.Ants {
		if pos == antworld.Dead {
			continue
		}

		ant := s.World.Cells[pos].Ant
		if ant.Resting > 0 {
			ant.Resting--
			continue
		}

		instr := s.instructionFor(ant)
		updates = updates[:0]
		s.runInstruction(pos, instr, &updates)
		for _, u := range updates {
			s.applyPositionUpdate(u)
		}
	}
}

// RunRounds advances up to k further rounds, stopping early if MaxRounds is
// reached. It is a no-op if the simulator is already at MaxRounds.
func (s *Simulator) RunRounds(k uint32) {
	if s.Round >= s.MaxRounds {
		return
	}
	for i := uint32(0); i < k; i++ {
		s.OneRound()
	}
}

// Run advances to MaxRounds and returns the final Outcome.
func (s *Simulator) Run() Outcome {
	for s.Round < s.MaxRounds {
		s.OneRound()
	}
	return s.PartialOutcome()
}

// PartialOutcome snapshots the current state without advancing the
// simulation: scores, live ant counts, food remaining, and the round
// counter. A visualizer polls this after every OneRound.
func (s *Simulator) PartialOutcome() Outcome {
	return Outcome{
		RedScore:   s.World.CountRedFood(),
		RedAlive:   s.World.CountRedAnts(),
		BlackScore: s.World.CountBlackFood(),
		BlackAlive: s.World.CountBlackAnts(),
		FoodLeft:   s.World.CountFood(),
		Round:      s.Round,
	}
}

func (s *Simulator) instructionFor(ant *antworld.Ant) instruction.Instruction {
	if ant.Color == antworld.Red {
		return s.RedInstructions[ant.State]
	}
	return s.BlackInstructions[ant.State]
}

// applyPositionUpdate finds the first entry in Ants equal to u.Old and
// replaces it with u.New (spec §4.5's "first matching entry" tie-break
// rule). u.Old is never the dead sentinel: a dead ant is never the subject
// of a move or a fresh kill.
func (s *Simulator) applyPositionUpdate(u positionUpdate) {
	if u.Old == antworld.Dead {
		panic("simulator: position update from dead sentinel")
	}
	for i, pos := range s.Ants {
		if pos == u.Old {
			s.Ants[i] = u.New
			return
		}
	}
}

// runInstruction executes instr on behalf of the ant at antPos, appending
// any resulting position changes (a move, any surround-kills it triggers)
// to updates.
func (s *Simulator) runInstruction(antPos int, instr instruction.Instruction, updates *[]positionUpdate) {
	cell := &s.World.Cells[antPos]
	ant := cell.Ant

	switch instr.Op {
	case instruction.OpSense:
		sensed := s.sensedPosition(antPos, ant.Direction, instr.SenseDir)
		if instr.Condition.Eval(&s.World.Cells[sensed], ant.Color) {
			ant.State = instr.St1
		} else {
			ant.State = instr.St2
		}

	case instruction.OpMark:
		cell.MarkersPtr(ant.Color).Set(instr.Mark)
		ant.State = instr.Next

	case instruction.OpUnmark:
		cell.MarkersPtr(ant.Color).Clear(instr.Mark)
		ant.State = instr.Next

	case instruction.OpPickUp:
		if ant.HasFood || cell.Food == 0 {
			ant.State = instr.St2
		} else {
			cell.Food--
			ant.HasFood = true
			ant.State = instr.St1
		}

	case instruction.OpDrop:
		if ant.HasFood {
			cell.Food++
			ant.HasFood = false
		}
		ant.State = instr.Next

	case instruction.OpTurn:
		ant.Direction = ant.Direction.Turn(instr.TurnDir)
		ant.State = instr.Next

	case instruction.OpMove:
		s.runMove(antPos, ant, instr, updates)

	case instruction.OpFlip:
		if s.rng.RandomInt(uint32(instr.N)) == 0 {
			ant.State = instr.St1
		} else {
			ant.State = instr.St2
		}
	}
}

func (s *Simulator) runMove(antPos int, ant *antworld.Ant, instr instruction.Instruction, updates *[]positionUpdate) {
	target := s.World.AdjacentPosition(antPos, ant.Direction)
	targetCell := &s.World.Cells[target]

	if targetCell.Rocky || targetCell.Ant != nil {
		ant.State = instr.St2
		return
	}

	s.World.Cells[antPos].Ant = nil
	targetCell.Ant = ant
	ant.Resting = 14
	ant.State = instr.St1
	*updates = append(*updates, positionUpdate{Old: antPos, New: target})

	s.killSurrounded(target, updates)
}

// sensedPosition resolves the cell a Sense instruction inspects, relative
// to the acting ant's facing direction.
func (s *Simulator) sensedPosition(antPos int, dir antworld.Direction, senseDir instruction.SenseDir) int {
	switch senseDir {
	case instruction.Here:
		return antPos
	case instruction.Ahead:
		return s.World.AdjacentPosition(antPos, dir)
	case instruction.LeftAhead:
		return s.World.AdjacentPosition(antPos, dir.Turn(antworld.Left))
	default: // RightAhead
		return s.World.AdjacentPosition(antPos, dir.Turn(antworld.Right))
	}
}

// killSurrounded runs the seven-cell scan rooted at pos (the cell an ant
// just moved into): pos itself, then its six neighbors in the fixed scan
// order, killing any ant with five or more enemy neighbors.
func (s *Simulator) killSurrounded(pos int, updates *[]positionUpdate) {
	s.killSurroundedAt(pos, updates)
	for _, dir := range antworld.AllDirections {
		s.killSurroundedAt(s.World.AdjacentPosition(pos, dir), updates)
	}
}

func (s *Simulator) killSurroundedAt(pos int, updates *[]positionUpdate) {
	cell := &s.World.Cells[pos]
	ant := cell.Ant
	if ant == nil {
		return
	}
	if s.World.AdjacentEnemies(pos, ant.Color) < 5 {
		return
	}

	cell.Ant = nil
	cell.Food += 3
	if ant.HasFood {
		cell.Food++
	}
	*updates = append(*updates, positionUpdate{Old: pos, New: antworld.Dead})
}
