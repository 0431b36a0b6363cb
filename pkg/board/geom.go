package board

// Layout constants shared by every placement computation. These values are
// mirrored by the rendering layer's sizing rules and must stay in sync with it.
const (
	// Padding is the minimum distance between the board origin and any
	// freshly-placed node, on both axes.
	Padding = 24.0

	// Gap is the spacing between adjacent nodes, horizontally and vertically.
	Gap = 16.0

	// Columns is the number of columns in masonry mode.
	Columns = 4

	// DefaultWidth and DefaultHeight apply when a node carries no explicit
	// dimensions. DefaultWidth is also the fixed column width in masonry mode.
	DefaultWidth  = 280.0
	DefaultHeight = 160.0

	// Node dimension bounds. Out-of-range persisted values are clamped,
	// never rejected.
	MinWidth  = 240.0
	MaxWidth  = 720.0
	MinHeight = 80.0
	MaxHeight = 600.0
)

// Point is a position in board-local coordinates (top-left origin).
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Rect is an axis-aligned bounding box, used for collision tests.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// ClampWidth returns w clamped to [MinWidth, MaxWidth].
// A zero or negative width means "unset" and yields DefaultWidth.
func ClampWidth(w float64) float64 {
	if w <= 0 {
		return DefaultWidth
	}
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

// ClampHeight returns h clamped to [MinHeight, MaxHeight].
// A zero or negative height means "unset" and yields DefaultHeight.
func ClampHeight(h float64) float64 {
	if h <= 0 {
		return DefaultHeight
	}
	if h < MinHeight {
		return MinHeight
	}
	if h > MaxHeight {
		return MaxHeight
	}
	return h
}

// ColumnX returns the x coordinate of masonry column c.
func ColumnX(c int) float64 {
	return Padding + float64(c)*(DefaultWidth+Gap)
}

// ColumnFor returns the masonry column index nearest to x, clamped to the
// valid column range. It is the inverse of ColumnX for well-formed boards and
// a best-effort bucket for nodes that were moved by hand.
func ColumnFor(x float64) int {
	c := int((x - Padding + (DefaultWidth+Gap)/2) / (DefaultWidth + Gap))
	if c < 0 {
		return 0
	}
	if c >= Columns {
		return Columns - 1
	}
	return c
}
