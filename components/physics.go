package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// TransformData is a world-space position. Y points up; Z is the draw layer.
type TransformData struct {
	X, Y, Z float64
}

func (t *TransformData) XY() Vector {
	return Vector{X: t.X, Y: t.Y}
}

var Transform = donburi.NewComponentType[TransformData]()
