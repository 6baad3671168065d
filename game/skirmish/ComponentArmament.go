package skirmish

import "time"

type Armament struct {
	weapons  []Weapon
	resolver TargetResolver

	lastFired     map[string]time.Time
	fireRequested bool
}

func NewArmament(weapons []Weapon, resolver TargetResolver) *Armament {
	if resolver == nil {
		resolver = DefaultHostileTargetResolver{}
	}

	return &Armament{
		weapons:   weapons,
		resolver:  resolver,
		lastFired: make(map[string]time.Time),
	}
}

func (armament Armament) Weapons() []Weapon { return armament.weapons }

func (armament Armament) Resolver() TargetResolver { return armament.resolver }

// RequestFire marks the agent as wanting to engage on the next fire pass.
func (armament *Armament) RequestFire() { armament.fireRequested = true }

func (armament *Armament) ClearFireRequest() { armament.fireRequested = false }

func (armament Armament) FireRequested() bool { return armament.fireRequested }

// CanFire applies the weapon's rate of fire.
func (armament Armament) CanFire(weapon Weapon, now time.Time) bool {
	last, fired := armament.lastFired[weapon.Name]
	if !fired {
		return true
	}

	return !now.Before(last.Add(weapon.TimeBetweenRounds))
}

func (armament *Armament) MarkFired(weapon Weapon, at time.Time) {
	armament.lastFired[weapon.Name] = at
}
