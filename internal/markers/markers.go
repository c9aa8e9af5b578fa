// Package markers implements the fixed-width 6-bit marker set that each
// cell carries per ant color (spec §4.2). Markers are set/cleared by the
// Mark/Unmark instructions and observed by Sense's Marker/FoeMarker
// conditions.
package markers

// NumMarkers is the number of independently settable bits per (cell, color).
const NumMarkers = 6

// Set is a 6-bit marker field. The zero value is the empty set.
type Set uint8

// Set marks bit i.
func (s *Set) Set(i int) {
	*s |= 1 << uint(i)
}

// Clear unmarks bit i.
func (s *Set) Clear(i int) {
	*s &^= 1 << uint(i)
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool {
	return s&(1<<uint(i)) != 0
}

// Any reports whether any bit is set, used by the FoeMarker sense condition.
func (s Set) Any() bool {
	return s != 0
}

// Bits returns the set bits in ascending order.
func (s Set) Bits() []int {
	bits := make([]int, 0, NumMarkers)
	for i := 0; i < NumMarkers; i++ {
		if s.Test(i) {
			bits = append(bits, i)
		}
	}
	return bits
}
