package skirmish

import (
	"math"
	"time"
)

type AgentClass string

const (
	AgentClassArmour     AgentClass = "ARMOUR"
	AgentClassAirDefence AgentClass = "AIR_DEFENCE"
	AgentClassInfantry   AgentClass = "INFANTRY"
)

type agentSpecs struct {
	BaseSpeed  float64
	Icon       string
	KilledIcon string
	Weapon     Weapon
	Sensor     DistanceSensor
}

var agentSpecsByClass = map[AgentClass]agentSpecs{
	AgentClassArmour: {
		BaseSpeed:  0.015,
		Icon:       "armour",
		KilledIcon: "armour_killed",
		Weapon:     MakeDefaultArmourWeapon(),
		Sensor:     MakeDefaultSensor(),
	},
	AgentClassAirDefence: {
		BaseSpeed:  0.012,
		Icon:       "air_defence",
		KilledIcon: "air_defence_killed",
		Weapon:     MakeDefaultAirDefenceWeapon(),
		Sensor:     MakeDefaultSensor(),
	},
	AgentClassInfantry: {
		BaseSpeed:  0.005,
		Icon:       "infantry",
		KilledIcon: "infantry_killed",
		Weapon:     MakeDefaultInfantryWeapon(),
		Sensor:     MakeDefaultSensor(),
	},
}

// groundMoveGradientModifiers is the default terrain response of ground
// units: slowed to 80% on any slope steeper than 1.1 degrees either way.
func groundMoveGradientModifiers() []GradientSpeedModifier {
	return []GradientSpeedModifier{
		{MinGradient: math.Inf(-1), MaxGradient: -1.1, Modifier: 0.8},
		{MinGradient: -1.1, MaxGradient: 1.1, Modifier: 1},
		{MinGradient: 1.1, MaxGradient: math.Inf(1), Modifier: 0.8},
	}
}

// seedDefaultBehaviours registers the class behaviour set through
// AddDefaultBehaviour, so user-supplied behaviours already in the pool keep
// their category.
func seedDefaultBehaviours(pool *BehaviourPool, class AgentClass, specs agentSpecs) {
	pool.AddDefaultBehaviour(WaitBehaviour{}, CategoryWait)
	pool.AddDefaultBehaviour(HideBehaviour{}, CategoryHide)
	pool.AddDefaultBehaviour(GroundMoveBehaviour{
		BaseSpeed:              specs.BaseSpeed,
		GradientSpeedModifiers: groundMoveGradientModifiers(),
	}, CategoryMove)
	pool.AddDefaultBehaviour(SenseBehaviour{
		TimeBeforeFirstSense: 0,
		TimeBetweenSenses:    5 * time.Second,
	}, CategorySense)
	pool.AddDefaultBehaviour(FireBehaviour{}, CategoryFire)

	if class == AgentClassAirDefence {
		pool.AddDefaultBehaviour(DisableCommunicationBehaviour{Range: 10000}, CategoryDisableCommunication)
	}
}
