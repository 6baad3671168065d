package skirmish

import "math"

type Position struct {
	X float64
	Y float64
}

func MakePosition(x float64, y float64) Position {
	return Position{X: x, Y: y}
}

func (p Position) Dist(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Position) XY() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// MoveTowards returns the position reached after travelling at most maxDist
// from p towards dest.
func (p Position) MoveTowards(dest Position, maxDist float64) Position {
	d := p.Dist(dest)
	if d <= maxDist || d == 0 {
		return dest
	}

	ratio := maxDist / d
	return Position{
		X: p.X + (dest.X-p.X)*ratio,
		Y: p.Y + (dest.Y-p.Y)*ratio,
	}
}
