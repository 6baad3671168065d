package skirmish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAffiliated struct {
	affiliation Affiliation
}

func (f fakeAffiliated) AgentAffiliation() Affiliation { return f.affiliation }

func perceivedWith(id string, affiliation Affiliation, confidence Confidence) PerceivedAgent {
	return PerceivedAgent{
		UniqueId:      id,
		Affiliation:   affiliation,
		Confidence:    confidence,
		CasualtyState: CasualtyStateAlive,
	}
}

func TestDefaultHostileTargetResolver(t *testing.T) {
	perceived := []PerceivedAgent{
		perceivedWith("f-identified", AffiliationFriendly, ConfidenceIdentify),
		perceivedWith("h-identified", AffiliationHostile, ConfidenceIdentify),
		perceivedWith("n-identified", AffiliationNeutral, ConfidenceIdentify),
		perceivedWith("u-identified", AffiliationUnknown, ConfidenceIdentify),
		perceivedWith("f-detected", AffiliationFriendly, ConfidenceDetect),
		perceivedWith("h-detected", AffiliationHostile, ConfidenceDetect),
		perceivedWith("h-recognised", AffiliationHostile, ConfidenceRecognise),
		perceivedWith("h-identified-2", AffiliationHostile, ConfidenceIdentify),
	}

	examples := []struct {
		Name     string
		Actor    Affiliation
		Expected []string
	}{
		{
			Name:     "Friendly actor engages identified hostiles only",
			Actor:    AffiliationFriendly,
			Expected: []string{"h-identified", "h-identified-2"},
		},
		{
			Name:     "Hostile actor engages identified friendlies only",
			Actor:    AffiliationHostile,
			Expected: []string{"f-identified"},
		},
		{
			Name:     "Neutral actor engages nothing",
			Actor:    AffiliationNeutral,
			Expected: []string{},
		},
		{
			Name:     "Unknown actor engages nothing",
			Actor:    AffiliationUnknown,
			Expected: []string{},
		},
	}

	resolver := DefaultHostileTargetResolver{}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			targets := resolver.Run(fakeAffiliated{example.Actor}, perceived)

			ids := make([]string, 0)
			for _, target := range targets {
				ids = append(ids, target.UniqueId)
			}

			assert.Equal(t, example.Expected, ids)
		})
	}
}

func TestResolverKeepsInputOrder(t *testing.T) {
	perceived := []PerceivedAgent{
		perceivedWith("b", AffiliationHostile, ConfidenceIdentify),
		perceivedWith("a", AffiliationHostile, ConfidenceIdentify),
	}

	targets := DefaultHostileTargetResolver{}.Run(fakeAffiliated{AffiliationFriendly}, perceived)

	assert.Len(t, targets, 2)
	assert.Equal(t, "b", targets[0].UniqueId)
	assert.Equal(t, "a", targets[1].UniqueId)
}

func TestResolverDoesNotMutateInput(t *testing.T) {
	perceived := []PerceivedAgent{
		perceivedWith("h", AffiliationHostile, ConfidenceIdentify),
	}

	before := perceived[0]
	DefaultHostileTargetResolver{}.Run(fakeAffiliated{AffiliationFriendly}, perceived)

	assert.Equal(t, before, perceived[0])
}
