package vmath

// Direction is one of the four cardinal movement axes.
// DirNone is used before an entity has committed to a direction.
type Direction uint8

const (
	DirNone Direction = iota
	DirRight
	DirUp
	DirLeft
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	}
	return "none"
}

// Vec returns the unit displacement for the direction.
// Map space has Y increasing upward, so DirUp is +Y.
func (d Direction) Vec() Vec {
	switch d {
	case DirRight:
		return Vec{1, 0}
	case DirUp:
		return Vec{0, 1}
	case DirLeft:
		return Vec{-1, 0}
	case DirDown:
		return Vec{0, -1}
	}
	return Vec{}
}

// RowCol returns the tile delta for the direction.
// Row 0 is the top of the layout, so DirUp decrements the row.
func (d Direction) RowCol() (dr, dc int) {
	switch d {
	case DirRight:
		return 0, 1
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	}
	return DirNone
}

func (d Direction) Horizontal() bool { return d == DirLeft || d == DirRight }
