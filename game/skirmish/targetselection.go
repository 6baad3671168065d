package skirmish

// Target selection for fire behaviour where no explicit target is given.

type Affiliated interface {
	AgentAffiliation() Affiliation
}

// TargetResolver filters a perceived-world snapshot down to the valid
// engagement targets for the acting agent.
type TargetResolver interface {
	Run(actor Affiliated, perceived []PerceivedAgent) []PerceivedAgent
}

// DefaultHostileTargetResolver targets the opposing affiliation only:
// FRIENDLY engages HOSTILE, HOSTILE engages FRIENDLY, NEUTRAL and UNKNOWN
// engage nothing. A perceived agent below IDENTIFY confidence is never a
// target, whatever affiliation it reports.
type DefaultHostileTargetResolver struct{}

func (DefaultHostileTargetResolver) Run(actor Affiliated, perceived []PerceivedAgent) []PerceivedAgent {
	enemy, engages := enemyOf(actor.AgentAffiliation())

	targets := make([]PerceivedAgent, 0)

	if !engages {
		return targets
	}

	for _, candidate := range perceived {
		if candidate.Confidence < ConfidenceIdentify {
			continue
		}

		if candidate.Affiliation == enemy {
			targets = append(targets, candidate)
		}
	}

	return targets
}

func enemyOf(affiliation Affiliation) (Affiliation, bool) {
	switch affiliation {
	case AffiliationFriendly:
		return AffiliationHostile, true
	case AffiliationHostile:
		return AffiliationFriendly, true
	}

	return "", false
}
