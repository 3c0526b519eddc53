// Package geom provides the point, velocity, and bounds value types used by
// the simulation. All motion math lives here so actor code stays free of trig.
package geom

import "math"

// Bounds is the rectangular arena extent. The origin corner is (0, 0).
type Bounds struct {
	MaxX, MaxY float32
}

// Point is a position in arena coordinates. Movement mutates it in place.
type Point struct {
	X, Y float32
}

// DistanceTo returns the straight-line distance to another point.
func (p Point) DistanceTo(o Point) float32 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// MoveTime advances the point along vel for dt seconds.
func (p *Point) MoveTime(dt float32, vel Velocity) {
	dx, dy := vel.Components()
	p.X += dx * dt
	p.Y += dy * dt
}

// MoveDistance advances the point a fixed distance along heading.
func (p *Point) MoveDistance(distance, heading float32) {
	p.X += float32(math.Cos(float64(heading))) * distance
	p.Y += float32(math.Sin(float64(heading))) * distance
}

// OutOfBounds reports whether the point lies strictly outside b. A point
// exactly on an edge is still in bounds.
func (p Point) OutOfBounds(b Bounds) bool {
	return p.X > b.MaxX || p.X < 0 || p.Y > b.MaxY || p.Y < 0
}

// WrapBounds teleports the point to the opposite edge on each axis it has
// left.
func (p *Point) WrapBounds(b Bounds) {
	if p.X > b.MaxX {
		p.X = 0
	} else if p.X < 0 {
		p.X = b.MaxX
	}
	if p.Y > b.MaxY {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = b.MaxY
	}
}

// KeepInBounds clamps the point into [0, MaxX] x [0, MaxY].
func (p *Point) KeepInBounds(b Bounds) {
	if p.X > b.MaxX {
		p.X = b.MaxX
	} else if p.X < 0 {
		p.X = 0
	}
	if p.Y > b.MaxY {
		p.Y = b.MaxY
	} else if p.Y < 0 {
		p.Y = 0
	}
}

// Velocity is a speed in units per second and a heading in radians. Speed
// may be negative for reverse motion along the heading.
type Velocity struct {
	Speed   float32
	Heading float32
}

// Components decomposes the velocity into its X and Y parts.
func (v Velocity) Components() (float32, float32) {
	x := float32(math.Cos(float64(v.Heading))) * v.Speed
	y := float32(math.Sin(float64(v.Heading))) * v.Speed
	return x, y
}
