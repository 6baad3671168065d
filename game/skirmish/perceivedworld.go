package skirmish

import "time"

// Confidence is the certainty level of a sensing observation. Ordering
// matters: an affiliation is only actionable at ConfidenceIdentify or above.
type Confidence int

const (
	ConfidenceDetect Confidence = iota
	ConfidenceRecognise
	ConfidenceIdentify
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceDetect:
		return "DETECT"
	case ConfidenceRecognise:
		return "RECOGNISE"
	case ConfidenceIdentify:
		return "IDENTIFY"
	}
	return "UNKNOWN"
}

type CasualtyState string

const (
	CasualtyStateAlive  CasualtyState = "ALIVE"
	CasualtyStateKilled CasualtyState = "KILLED"
)

// PerceivedAgent is an immutable snapshot of another agent as seen by a
// sensor. The reported affiliation is only trustworthy at IDENTIFY.
type PerceivedAgent struct {
	Location      Position
	SenseTime     time.Time
	Confidence    Confidence
	UniqueId      string
	Affiliation   Affiliation
	CasualtyState CasualtyState
}

// PerceivedWorld accumulates the snapshots one agent holds of everyone
// else, keyed by unique id; a fresh observation replaces the stale one.
type PerceivedWorld struct {
	byId  map[string]int
	view  []PerceivedAgent
	fused bool
}

func NewPerceivedWorld() *PerceivedWorld {
	return &PerceivedWorld{
		byId: make(map[string]int),
		view: make([]PerceivedAgent, 0),
	}
}

func (w *PerceivedWorld) Refresh(snapshots []PerceivedAgent) {
	w.fused = false

	for _, snapshot := range snapshots {
		if idx, seen := w.byId[snapshot.UniqueId]; seen {
			if w.view[idx] != snapshot {
				w.fused = true
			}
			w.view[idx] = snapshot
		} else {
			w.byId[snapshot.UniqueId] = len(w.view)
			w.view = append(w.view, snapshot)
			w.fused = true
		}
	}
}

// Fused reports whether the last Refresh changed the worldview.
func (w *PerceivedWorld) Fused() bool {
	return w.fused
}

// Snapshot returns the perceived agents in first-seen order.
func (w *PerceivedWorld) Snapshot() []PerceivedAgent {
	out := make([]PerceivedAgent, len(w.view))
	copy(out, w.view)
	return out
}

func (w *PerceivedWorld) AtPosition(pos Position, tolerance float64, state CasualtyState) []PerceivedAgent {
	out := make([]PerceivedAgent, 0)

	for _, perceived := range w.view {
		if perceived.CasualtyState == state && perceived.Location.Dist(pos) <= tolerance {
			out = append(out, perceived)
		}
	}

	return out
}
