package skirmish

// Affiliation is the allegiance tag of an agent. It is assigned at agent
// creation and never changes.
type Affiliation string

const (
	AffiliationFriendly Affiliation = "FRIENDLY"
	AffiliationHostile  Affiliation = "HOSTILE"
	AffiliationNeutral  Affiliation = "NEUTRAL"
	AffiliationUnknown  Affiliation = "UNKNOWN"
)

var Affiliations = []Affiliation{
	AffiliationFriendly,
	AffiliationHostile,
	AffiliationNeutral,
	AffiliationUnknown,
}

func (a Affiliation) String() string {
	return string(a)
}
