package skirmish

import "time"

// DistanceSensor grades observations on range alone: anything within
// IdentifyRadius is identified, further out it degrades to recognised then
// detected, and beyond DetectRadius nothing is returned.
type DistanceSensor struct {
	Name            string
	DetectRadius    float64
	RecogniseRadius float64
	IdentifyRadius  float64
}

func MakeDefaultSensor() DistanceSensor {
	return DistanceSensor{
		Name:            "optical",
		DetectRadius:    200000,
		RecogniseRadius: 150000,
		IdentifyRadius:  75000,
	}
}

// ConfidenceAt grades a target at the given distance; ok is false outside
// detection range.
func (s DistanceSensor) ConfidenceAt(distance float64) (Confidence, bool) {
	switch {
	case distance <= s.IdentifyRadius:
		return ConfidenceIdentify, true
	case distance <= s.RecogniseRadius:
		return ConfidenceRecognise, true
	case distance <= s.DetectRadius:
		return ConfidenceDetect, true
	}

	return 0, false
}

// Perceive builds the snapshot of one observed agent. Below IDENTIFY the
// reported affiliation is masked to UNKNOWN.
func (s DistanceSensor) Perceive(observer Position, target sensedTarget, at time.Time) (PerceivedAgent, bool) {
	confidence, inRange := s.ConfidenceAt(observer.Dist(target.position))
	if !inRange {
		return PerceivedAgent{}, false
	}

	affiliation := AffiliationUnknown
	if confidence >= ConfidenceIdentify {
		affiliation = target.affiliation
	}

	return PerceivedAgent{
		Location:      target.position,
		SenseTime:     at,
		Confidence:    confidence,
		UniqueId:      target.id,
		Affiliation:   affiliation,
		CasualtyState: target.casualtyState,
	}, true
}

// sensedTarget is the ground truth the sensing system feeds to sensors.
type sensedTarget struct {
	id            string
	position      Position
	affiliation   Affiliation
	casualtyState CasualtyState
}
