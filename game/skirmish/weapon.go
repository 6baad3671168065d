package skirmish

import "time"

// Weapon is a value description of an armament slot. Firing schedules and
// shot logs live on the armament component, not here.
type Weapon struct {
	Name                    string
	Radius                  float64
	TimeBetweenRounds       time.Duration
	KillProbabilityPerRound float64
}

func MakeDefaultArmourWeapon() Weapon {
	return Weapon{
		Name:                    "120mm gun",
		Radius:                  3000,
		TimeBetweenRounds:       30 * time.Second,
		KillProbabilityPerRound: 0.5,
	}
}

func MakeDefaultAirDefenceWeapon() Weapon {
	return Weapon{
		Name:                    "SAM battery",
		Radius:                  10000,
		TimeBetweenRounds:       60 * time.Second,
		KillProbabilityPerRound: 0.7,
	}
}

func MakeDefaultInfantryWeapon() Weapon {
	return Weapon{
		Name:                    "rifle",
		Radius:                  500,
		TimeBetweenRounds:       5 * time.Second,
		KillProbabilityPerRound: 0.2,
	}
}
