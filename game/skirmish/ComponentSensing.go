package skirmish

import "time"

type Sensing struct {
	sensors   []DistanceSensor
	perceived *PerceivedWorld

	lastSense      *time.Time
	senseRequested bool
}

func NewSensing(sensors []DistanceSensor) *Sensing {
	return &Sensing{
		sensors:   sensors,
		perceived: NewPerceivedWorld(),
	}
}

func (sensing Sensing) Sensors() []DistanceSensor { return sensing.sensors }

func (sensing Sensing) Perceived() *PerceivedWorld { return sensing.perceived }

// RequestSense forces a sense on the next pass regardless of schedule.
func (sensing *Sensing) RequestSense() { sensing.senseRequested = true }

// DueAt applies the sense behaviour schedule: first sense after
// TimeBeforeFirstSense from simulation start, then every TimeBetweenSenses.
func (sensing Sensing) DueAt(now time.Time, start time.Time, behaviour SenseBehaviour) bool {
	if sensing.senseRequested {
		return true
	}

	if sensing.lastSense == nil {
		return !now.Before(start.Add(behaviour.TimeBeforeFirstSense))
	}

	return !now.Before(sensing.lastSense.Add(behaviour.TimeBetweenSenses))
}

func (sensing *Sensing) MarkSensed(at time.Time) {
	sensing.lastSense = &at
	sensing.senseRequested = false
}
