package atlas

import "strings"

// BorderFlags marks which edges of a carve are hard. Edges not set are
// soft. The four edges are independent.
type BorderFlags uint8

const (
	// Soft pads every edge.
	Soft BorderFlags = 0

	// Single hard edges.
	HardLeft   BorderFlags = 1
	HardTop    BorderFlags = 2
	HardRight  BorderFlags = 4
	HardBottom BorderFlags = 8

	// Hard pins every edge flush to the source rectangle.
	Hard = HardLeft | HardTop | HardRight | HardBottom
)

// Has reports whether every edge in edges is hard.
func (f BorderFlags) Has(edges BorderFlags) bool {
	return f&edges == edges
}

// With returns f with edges made hard.
func (f BorderFlags) With(edges BorderFlags) BorderFlags {
	return f | edges
}

// Without returns f with edges made soft.
func (f BorderFlags) Without(edges BorderFlags) BorderFlags {
	return f &^ edges
}

// String returns the flags as "Soft", "Hard" or a |-separated list of hard
// edges.
func (f BorderFlags) String() string {
	switch f & Hard {
	case Soft:
		return "Soft"
	case Hard:
		return "Hard"
	}
	var parts []string
	for _, e := range []struct {
		flag BorderFlags
		name string
	}{
		{HardLeft, "HardLeft"},
		{HardTop, "HardTop"},
		{HardRight, "HardRight"},
		{HardBottom, "HardBottom"},
	} {
		if f.Has(e.flag) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// padding returns the padding in pixels on each edge: one for soft, zero
// for hard.
func (f BorderFlags) padding() (left, top, right, bottom int) {
	pad := func(edge BorderFlags) int {
		if f.Has(edge) {
			return 0
		}
		return 1
	}
	return pad(HardLeft), pad(HardTop), pad(HardRight), pad(HardBottom)
}
