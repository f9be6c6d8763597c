package vehicle

// Box is an axis-aligned bounding box in screen pixels, Y growing downward.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap. Boxes that only share an edge do not.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}
