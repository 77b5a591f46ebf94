package vmath

import "math"

// Vec is a 2D point or displacement in normalized map space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale multiplies both components by s
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Normalize returns the unit vector, zero-safe
func (v Vec) Normalize() Vec {
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if mag == 0 {
		return Vec{}
	}
	return Vec{v.X / mag, v.Y / mag}
}

func (v Vec) MagnitudeSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec) Magnitude() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// DistanceSq returns squared distance between two points without sqrt.
// Radius comparisons throughout the engine compare against squared radii.
func DistanceSq(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
