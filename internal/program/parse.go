// Package program parses the per-color instruction vector from text (spec
// §6.2 leaves the instruction file format external to the core; this is
// FastAnts' own line-oriented grammar: one instruction per line, state
// numbers implied by line order, opcode keyword first).
package program

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aochagavia/FastAnts/internal/antworld"
	"github.com/aochagavia/FastAnts/internal/instruction"
)

// Parse reads one instruction per non-blank, non-comment line and returns
// the resulting state-indexed vector. Comment lines start with '#' or ';'.
func Parse(r io.Reader) ([]instruction.Instruction, error) {
	var program []instruction.Instruction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		instr, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		program = append(program, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	return program, nil
}

func parseLine(line string) (instruction.Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return instruction.Instruction{}, fmt.Errorf("empty instruction line")
	}

	op := strings.ToLower(fields[0])
	args := fields[1:]

	switch op {
	case "sense":
		return parseSense(args)
	case "mark":
		bit, next, err := twoInts(args)
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.MarkInstr(bit, next), nil
	case "unmark":
		bit, next, err := twoInts(args)
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.UnmarkInstr(bit, next), nil
	case "pickup":
		ok, fail, err := twoInts(args)
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.PickUp(ok, fail), nil
	case "drop":
		next, err := oneInt(args)
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.Drop(next), nil
	case "turn":
		return parseTurn(args)
	case "move":
		ok, fail, err := twoInts(args)
		if err != nil {
			return instruction.Instruction{}, err
		}
		return instruction.Move(ok, fail), nil
	case "flip":
		return parseFlip(args)
	default:
		return instruction.Instruction{}, fmt.Errorf("unknown opcode %q", fields[0])
	}
}

func parseSense(args []string) (instruction.Instruction, error) {
	if len(args) < 4 {
		return instruction.Instruction{}, fmt.Errorf("sense: expected at least 4 arguments, got %d", len(args))
	}

	dir, err := parseSenseDir(args[0])
	if err != nil {
		return instruction.Instruction{}, err
	}
	st1, err := strconv.Atoi(args[1])
	if err != nil {
		return instruction.Instruction{}, fmt.Errorf("sense: invalid st1 %q: %w", args[1], err)
	}
	st2, err := strconv.Atoi(args[2])
	if err != nil {
		return instruction.Instruction{}, fmt.Errorf("sense: invalid st2 %q: %w", args[2], err)
	}
	cond, err := parseCondition(args[3], args[4:])
	if err != nil {
		return instruction.Instruction{}, err
	}

	return instruction.Sense(dir, st1, st2, cond), nil
}

func parseSenseDir(tok string) (instruction.SenseDir, error) {
	switch strings.ToLower(tok) {
	case "here":
		return instruction.Here, nil
	case "ahead":
		return instruction.Ahead, nil
	case "leftahead":
		return instruction.LeftAhead, nil
	case "rightahead":
		return instruction.RightAhead, nil
	default:
		return 0, fmt.Errorf("unknown sense direction %q", tok)
	}
}

func parseCondition(tok string, rest []string) (instruction.Condition, error) {
	switch strings.ToLower(tok) {
	case "friend":
		return instruction.Friend(), nil
	case "foe":
		return instruction.Foe(), nil
	case "friendwithfood":
		return instruction.FriendWithFood(), nil
	case "foewithfood":
		return instruction.FoeWithFood(), nil
	case "food":
		return instruction.Food(), nil
	case "rock":
		return instruction.Rock(), nil
	case "marker":
		if len(rest) < 1 {
			return instruction.Condition{}, fmt.Errorf("marker: missing bit index")
		}
		bit, err := strconv.Atoi(rest[0])
		if err != nil {
			return instruction.Condition{}, fmt.Errorf("marker: invalid bit %q: %w", rest[0], err)
		}
		return instruction.Marker(bit), nil
	case "foemarker":
		return instruction.FoeMarker(), nil
	case "home":
		return instruction.Home(), nil
	case "foehome":
		return instruction.FoeHome(), nil
	default:
		return instruction.Condition{}, fmt.Errorf("unknown condition %q", tok)
	}
}

func parseTurn(args []string) (instruction.Instruction, error) {
	if len(args) < 2 {
		return instruction.Instruction{}, fmt.Errorf("turn: expected 2 arguments, got %d", len(args))
	}
	var dir antworld.TurnDir
	switch strings.ToLower(args[0]) {
	case "left":
		dir = antworld.Left
	case "right":
		dir = antworld.Right
	default:
		return instruction.Instruction{}, fmt.Errorf("turn: unknown direction %q", args[0])
	}
	next, err := strconv.Atoi(args[1])
	if err != nil {
		return instruction.Instruction{}, fmt.Errorf("turn: invalid next state %q: %w", args[1], err)
	}
	return instruction.Turn(dir, next), nil
}

func parseFlip(args []string) (instruction.Instruction, error) {
	n, st1, st2, err := threeInts(args)
	if err != nil {
		return instruction.Instruction{}, fmt.Errorf("flip: %w", err)
	}
	return instruction.Flip(n, st1, st2), nil
}

func oneInt(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	return n, nil
}

func twoInts(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[1], err)
	}
	return a, b, nil
}

func threeInts(args []string) (int, int, int, error) {
	if len(args) < 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	a, b, err := twoInts(args[:2])
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid integer %q: %w", args[2], err)
	}
	return a, b, c, nil
}
