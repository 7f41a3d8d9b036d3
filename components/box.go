package components

import "image"

// Box is an axis aligned rectangle in world units. Y grows downward, so Top
// is the smaller coordinate. Anchor setters move the box and never resize it.
type Box struct {
	X, Y          float64
	Width, Height float64
}

func NewBox(x, y, w, h float64) *Box {
	return &Box{X: x, Y: y, Width: w, Height: h}
}

// BoxFromRect converts an integer rectangle.
func BoxFromRect(r image.Rectangle) *Box {
	b := &Box{}
	b.SetRect(r)
	return b
}

func (b *Box) Left() float64   { return b.X }
func (b *Box) Right() float64  { return b.X + b.Width }
func (b *Box) Top() float64    { return b.Y }
func (b *Box) Bottom() float64 { return b.Y + b.Height }

func (b *Box) SetLeft(v float64)   { b.X = v }
func (b *Box) SetRight(v float64)  { b.X = v - b.Width }
func (b *Box) SetTop(v float64)    { b.Y = v }
func (b *Box) SetBottom(v float64) { b.Y = v - b.Height }

func (b *Box) CenterX() float64 { return b.X + b.Width/2 }
func (b *Box) CenterY() float64 { return b.Y + b.Height/2 }

func (b *Box) SetCenterX(v float64) { b.X = v - b.Width/2 }
func (b *Box) SetCenterY(v float64) { b.Y = v - b.Height/2 }

func (b *Box) Center() Vector { return Vector{X: b.CenterX(), Y: b.CenterY()} }
func (b *Box) SetCenter(p Vector) {
	b.SetCenterX(p.X)
	b.SetCenterY(p.Y)
}

func (b *Box) TopLeft() Vector     { return Vector{X: b.Left(), Y: b.Top()} }
func (b *Box) TopRight() Vector    { return Vector{X: b.Right(), Y: b.Top()} }
func (b *Box) BottomLeft() Vector  { return Vector{X: b.Left(), Y: b.Bottom()} }
func (b *Box) BottomRight() Vector { return Vector{X: b.Right(), Y: b.Bottom()} }
func (b *Box) MidLeft() Vector     { return Vector{X: b.Left(), Y: b.CenterY()} }
func (b *Box) MidRight() Vector    { return Vector{X: b.Right(), Y: b.CenterY()} }
func (b *Box) MidTop() Vector      { return Vector{X: b.CenterX(), Y: b.Top()} }
func (b *Box) MidBottom() Vector   { return Vector{X: b.CenterX(), Y: b.Bottom()} }

func (b *Box) SetTopLeft(p Vector) {
	b.SetLeft(p.X)
	b.SetTop(p.Y)
}

func (b *Box) SetTopRight(p Vector) {
	b.SetRight(p.X)
	b.SetTop(p.Y)
}

func (b *Box) SetBottomLeft(p Vector) {
	b.SetLeft(p.X)
	b.SetBottom(p.Y)
}

func (b *Box) SetBottomRight(p Vector) {
	b.SetRight(p.X)
	b.SetBottom(p.Y)
}

func (b *Box) SetMidLeft(p Vector) {
	b.SetLeft(p.X)
	b.SetCenterY(p.Y)
}

func (b *Box) SetMidRight(p Vector) {
	b.SetRight(p.X)
	b.SetCenterY(p.Y)
}

func (b *Box) SetMidTop(p Vector) {
	b.SetCenterX(p.X)
	b.SetTop(p.Y)
}

func (b *Box) SetMidBottom(p Vector) {
	b.SetCenterX(p.X)
	b.SetBottom(p.Y)
}

func (b *Box) Size() Vector { return Vector{X: b.Width, Y: b.Height} }

// SetSize keeps the top left corner in place.
func (b *Box) SetSize(s Vector) {
	b.Width = s.X
	b.Height = s.Y
}

// Rect truncates the box to integer coordinates.
func (b *Box) Rect() image.Rectangle {
	x, y := int(b.X), int(b.Y)
	return image.Rect(x, y, x+int(b.Width), y+int(b.Height))
}

func (b *Box) SetRect(r image.Rectangle) {
	b.X = float64(r.Min.X)
	b.Y = float64(r.Min.Y)
	b.Width = float64(r.Dx())
	b.Height = float64(r.Dy())
}

// Intersects reports whether both boxes overlap with positive area. Touching
// edges and empty boxes never intersect.
func (b *Box) Intersects(o *Box) bool {
	if b.Width <= 0 || b.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}
