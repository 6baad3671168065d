package skirmish

import "time"

// BehaviourCategory tags a behaviour with the kind of action it implements.
// The pool is keyed on it; orders dispatch tasks to it.
type BehaviourCategory int

const (
	CategoryWait BehaviourCategory = iota
	CategoryMove
	CategoryFire
	CategorySense
	CategoryHide
	CategoryCommunicateWorldview
	CategoryCommunicateOrders
	CategoryCommunicateMission
	CategoryDisableCommunication
	CategoryDeployCountermeasure
)

func (c BehaviourCategory) String() string {
	switch c {
	case CategoryWait:
		return "Wait"
	case CategoryMove:
		return "Move"
	case CategoryFire:
		return "Fire"
	case CategorySense:
		return "Sense"
	case CategoryHide:
		return "Hide"
	case CategoryCommunicateWorldview:
		return "CommunicateWorldview"
	case CategoryCommunicateOrders:
		return "CommunicateOrders"
	case CategoryCommunicateMission:
		return "CommunicateMission"
	case CategoryDisableCommunication:
		return "DisableCommunication"
	case CategoryDeployCountermeasure:
		return "DeployCountermeasure"
	}
	return "Unknown"
}

// Behaviour is a value-like unit of agent capability. Concrete behaviours
// are plain structs so two instances built with the same parameters compare
// equal.
type Behaviour interface {
	BehaviourCategory() BehaviourCategory
}

type WaitBehaviour struct{}

func (WaitBehaviour) BehaviourCategory() BehaviourCategory { return CategoryWait }

type HideBehaviour struct{}

func (HideBehaviour) BehaviourCategory() BehaviourCategory { return CategoryHide }

// GradientSpeedModifier scales movement speed on terrain gradient within
// [MinGradient, MaxGradient).
type GradientSpeedModifier struct {
	MinGradient float64
	MaxGradient float64
	Modifier    float64
}

type GroundMoveBehaviour struct {
	BaseSpeed              float64
	GradientSpeedModifiers []GradientSpeedModifier
}

func (GroundMoveBehaviour) BehaviourCategory() BehaviourCategory { return CategoryMove }

func (b GroundMoveBehaviour) SpeedOn(gradient float64) float64 {
	speed := b.BaseSpeed

	for _, modifier := range b.GradientSpeedModifiers {
		if gradient >= modifier.MinGradient && gradient < modifier.MaxGradient {
			speed *= modifier.Modifier
			break
		}
	}

	return speed
}

type AircraftMoveBehaviour struct {
	BaseSpeed float64
}

func (AircraftMoveBehaviour) BehaviourCategory() BehaviourCategory { return CategoryMove }

type SenseBehaviour struct {
	TimeBeforeFirstSense time.Duration
	TimeBetweenSenses    time.Duration
}

func (SenseBehaviour) BehaviourCategory() BehaviourCategory { return CategorySense }

type FireBehaviour struct{}

func (FireBehaviour) BehaviourCategory() BehaviourCategory { return CategoryFire }

type CommunicateWorldviewBehaviour struct{}

func (CommunicateWorldviewBehaviour) BehaviourCategory() BehaviourCategory {
	return CategoryCommunicateWorldview
}

type CommunicateOrdersBehaviour struct{}

func (CommunicateOrdersBehaviour) BehaviourCategory() BehaviourCategory {
	return CategoryCommunicateOrders
}

type CommunicateMissionMessageBehaviour struct{}

func (CommunicateMissionMessageBehaviour) BehaviourCategory() BehaviourCategory {
	return CategoryCommunicateMission
}

// DisableCommunicationBehaviour jams every hostile receiver within Range.
type DisableCommunicationBehaviour struct {
	Range float64
}

func (DisableCommunicationBehaviour) BehaviourCategory() BehaviourCategory {
	return CategoryDisableCommunication
}

type DeployCountermeasureBehaviour struct{}

func (DeployCountermeasureBehaviour) BehaviourCategory() BehaviourCategory {
	return CategoryDeployCountermeasure
}
