package skirmish

// Area and Boundary features are scenario geometry referenced by triggers.
// Triggers only ever ask for containment or crossing.

type Area interface {
	AreaName() string
	Contains(p Position) bool
}

type Boundary interface {
	BoundaryName() string
	Crossed(from Position, to Position) bool
}

type BoxFeature struct {
	min  Position
	max  Position
	name string
}

func NewBoxFeature(min Position, max Position, name string) *BoxFeature {
	if max.X < min.X {
		min.X, max.X = max.X, min.X
	}
	if max.Y < min.Y {
		min.Y, max.Y = max.Y, min.Y
	}

	return &BoxFeature{min: min, max: max, name: name}
}

func (f *BoxFeature) AreaName() string {
	return f.name
}

func (f *BoxFeature) Contains(p Position) bool {
	return p.X >= f.min.X && p.X <= f.max.X && p.Y >= f.min.Y && p.Y <= f.max.Y
}

type LineFeature struct {
	a    Position
	b    Position
	name string
}

func NewLineFeature(a Position, b Position, name string) *LineFeature {
	return &LineFeature{a: a, b: b, name: name}
}

func (f *LineFeature) BoundaryName() string {
	return f.name
}

func (f *LineFeature) Crossed(from Position, to Position) bool {
	return segmentsIntersect(f.a, f.b, from, to)
}

func orientation(p Position, q Position, r Position) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)

	if val > 0 {
		return 1
	}
	if val < 0 {
		return -1
	}
	return 0
}

func onSegment(p Position, q Position, r Position) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

func segmentsIntersect(p1 Position, q1 Position, p2 Position, q2 Position) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Colinear cases
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}

	return false
}
