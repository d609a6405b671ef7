package room

import "fmt"

// Direction is one of the eight movement directions, numbered the way the
// game engine numbers them: clockwise from Top = 1.
type Direction uint8

const (
	Top Direction = iota + 1
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	TopLeft
)

// directionOffsets maps a Direction to its unit (dx, dy) offset.
// South is positive y, east is positive x. Index 0 is unused.
var directionOffsets = [9][2]int{
	Top:         {0, -1},
	TopRight:    {1, -1},
	Right:       {1, 0},
	BottomRight: {1, 1},
	Bottom:      {0, 1},
	BottomLeft:  {-1, 1},
	Left:        {-1, 0},
	TopLeft:     {-1, -1},
}

var directionNames = [9]string{
	Top:         "Top",
	TopRight:    "TopRight",
	Right:       "Right",
	BottomRight: "BottomRight",
	Bottom:      "Bottom",
	BottomLeft:  "BottomLeft",
	Left:        "Left",
	TopLeft:     "TopLeft",
}

// Directions returns all eight directions in clockwise order from Top.
func Directions() [8]Direction {
	return [8]Direction{Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left, TopLeft}
}

// IsValid reports whether d is one of the eight defined directions.
func (d Direction) IsValid() bool {
	return d >= Top && d <= TopLeft
}

// Offset returns the unit (dx, dy) offset of the direction.
func (d Direction) Offset() (int, int) {
	if !d.IsValid() {
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return d.RotateClockwise(4)
}

// RotateClockwise returns the direction rotated clockwise by n 45-degree
// steps.
func (d Direction) RotateClockwise(n int) Direction {
	if !d.IsValid() {
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
	step := n % 8
	if step < 0 {
		step += 8
	}
	return Direction((int(d)-1+step)%8 + 1)
}

// RotateCounterClockwise returns the direction rotated counter-clockwise
// by n 45-degree steps.
func (d Direction) RotateCounterClockwise(n int) Direction {
	return d.RotateClockwise(-n)
}

// IsDiagonal reports whether the direction moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d.IsValid() && d%2 == 0
}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection is the inverse of String for the eight valid names.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions() {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
