package instruction

import "github.com/aochagavia/FastAnts/internal/antworld"

// ConditionKind enumerates the sense conditions of spec §3.5.
type ConditionKind uint8

const (
	CondFriend ConditionKind = iota
	CondFoe
	CondFriendWithFood
	CondFoeWithFood
	CondFood
	CondRock
	CondMarker
	CondFoeMarker
	CondHome
	CondFoeHome
)

// Condition is a sense predicate, evaluated against the sensed cell and
// the acting ant's color. Marker carries the bit index for CondMarker.
type Condition struct {
	Kind   ConditionKind
	Marker int
}

// Eval evaluates the condition against cell, from the perspective of an
// ant of color ownColor.
func (c Condition) Eval(cell *antworld.Cell, ownColor antworld.Color) bool {
	switch c.Kind {
	case CondFriend:
		return cell.Ant != nil && cell.Ant.Color == ownColor
	case CondFoe:
		return cell.Ant != nil && cell.Ant.Color != ownColor
	case CondFriendWithFood:
		return cell.Ant != nil && cell.Ant.Color == ownColor && cell.Ant.HasFood
	case CondFoeWithFood:
		return cell.Ant != nil && cell.Ant.Color != ownColor && cell.Ant.HasFood
	case CondFood:
		return cell.Food > 0
	case CondRock:
		return cell.Rocky
	case CondMarker:
		return cell.Markers(ownColor).Test(c.Marker)
	case CondFoeMarker:
		return cell.Markers(ownColor.Opponent()).Any()
	case CondHome:
		return cell.HasAnthill && cell.Anthill == ownColor
	case CondFoeHome:
		return cell.HasAnthill && cell.Anthill != ownColor
	default:
		return false
	}
}

func Friend() Condition             { return Condition{Kind: CondFriend} }
func Foe() Condition                 { return Condition{Kind: CondFoe} }
func FriendWithFood() Condition      { return Condition{Kind: CondFriendWithFood} }
func FoeWithFood() Condition         { return Condition{Kind: CondFoeWithFood} }
func Food() Condition                { return Condition{Kind: CondFood} }
func Rock() Condition                { return Condition{Kind: CondRock} }
func Marker(bit int) Condition       { return Condition{Kind: CondMarker, Marker: bit} }
func FoeMarker() Condition           { return Condition{Kind: CondFoeMarker} }
func Home() Condition                { return Condition{Kind: CondHome} }
func FoeHome() Condition             { return Condition{Kind: CondFoeHome} }
