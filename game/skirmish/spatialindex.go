package skirmish

import (
	"github.com/dhconnelly/rtreego"

	"github.com/Morshead-Consulting/RET/common/utils"
)

// SpatialIndex answers "who is within range of here" for the sensing and
// weapon systems. Rebuilt from agent positions at the start of every step.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

type spatialEntry struct {
	id     string
	pos    Position
	bounds rtreego.Rect
}

func (e *spatialEntry) Bounds() rtreego.Rect {
	return e.bounds
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

func (idx *SpatialIndex) Insert(id string, pos Position) {
	bounds := rtreego.Point{pos.X, pos.Y}.ToRect(0.01)

	idx.tree.Insert(&spatialEntry{
		id:     id,
		pos:    pos,
		bounds: bounds,
	})
}

// Within returns the ids of all entries within radius of center, filtered
// on true euclidean distance after the index query.
func (idx *SpatialIndex) Within(center Position, radius float64) []string {
	query, err := rtreego.NewRect(
		rtreego.Point{center.X - radius, center.Y - radius},
		[]float64{radius * 2, radius * 2},
	)
	utils.Check(err, "Could not build spatial query rect")

	out := make([]string, 0)

	for _, candidate := range idx.tree.SearchIntersect(query) {
		entry := candidate.(*spatialEntry)
		if entry.pos.Dist(center) <= radius {
			out = append(out, entry.id)
		}
	}

	return out
}
