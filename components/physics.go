package components

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// LengthSquared avoids the square root for distance comparisons.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}
