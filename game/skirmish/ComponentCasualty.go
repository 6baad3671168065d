package skirmish

import "time"

type Casualty struct {
	state    CasualtyState
	killedAt *time.Time
	killedBy string
}

func NewCasualty() *Casualty {
	return &Casualty{state: CasualtyStateAlive}
}

func (casualty Casualty) State() CasualtyState { return casualty.state }

func (casualty Casualty) IsKilled() bool { return casualty.state == CasualtyStateKilled }

func (casualty *Casualty) Kill(at time.Time, by string) {
	if casualty.state == CasualtyStateKilled {
		return
	}

	casualty.state = CasualtyStateKilled
	casualty.killedAt = &at
	casualty.killedBy = by
}

func (casualty Casualty) KilledBy() string { return casualty.killedBy }
