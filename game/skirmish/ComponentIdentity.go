package skirmish

type Identity struct {
	id          string
	name        string
	class       AgentClass
	affiliation Affiliation
	icon        string
	killedIcon  string

	hidden                 bool
	countermeasureDeployed bool
}

func (identity Identity) GetId() string { return identity.id }

func (identity Identity) GetName() string { return identity.name }

func (identity Identity) GetClass() AgentClass { return identity.class }

func (identity Identity) GetAffiliation() Affiliation { return identity.affiliation }

func (identity Identity) IsHidden() bool { return identity.hidden }

// Icon returns the display icon for the agent's current casualty state.
func (identity Identity) Icon(state CasualtyState) string {
	if state == CasualtyStateKilled {
		return identity.killedIcon
	}
	return identity.icon
}

func (identity Identity) AgentAffiliation() Affiliation { return identity.affiliation }
