package graph

// Coloring holds one small color per vertex. 0 means uncolored; positive
// values are colors (spec §3).
type Coloring []uint8

// ColorList is a vertex's admissible-color list for P3-choose, capped at
// 6 entries (3 is the interesting case, per spec §3).
type ColorList struct {
	Len  uint8
	Data [6]uint8
}

// Contains reports whether c is in the list.
func (l ColorList) Contains(c uint8) bool {
	for i := uint8(0); i < l.Len; i++ {
		if l.Data[i] == c {
			return true
		}
	}
	return false
}

// Single reports whether the list has shrunk to exactly one color, and
// returns it.
func (l ColorList) Single() (uint8, bool) {
	if l.Len == 1 {
		return l.Data[0], true
	}
	return 0, false
}

// ShrinkTo collapses the list to the single color c, which must already
// be a member.
func (l *ColorList) ShrinkTo(c uint8) {
	if !l.Contains(c) {
		panic("graph: ShrinkTo color not in list")
	}
	l.Data[0] = c
	l.Len = 1
}

// NewColorList builds a ColorList from the given colors.
func NewColorList(colors ...uint8) ColorList {
	var l ColorList
	if len(colors) > len(l.Data) {
		panic("graph: color list exceeds capacity")
	}
	for _, c := range colors {
		l.Data[l.Len] = c
		l.Len++
	}
	return l
}
