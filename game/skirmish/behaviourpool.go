package skirmish

// BehaviourPool is the per-agent registry of behaviours, keyed by category.
// Defaults are seeded by the agent constructor; user-supplied behaviours go
// through the pool's adder policy and displace the default for their
// category.
type BehaviourPool struct {
	behaviours   map[BehaviourCategory][]Behaviour
	ordered      []BehaviourCategory
	userSupplied map[BehaviourCategory]bool
	adder        ListAdder
}

// ListAdder decides how a user-supplied behaviour enters the pool.
type ListAdder interface {
	Add(pool *BehaviourPool, behaviour Behaviour)
}

// ReplaceAdder keeps a single slot per category; a new behaviour of a
// category replaces whatever was there.
type ReplaceAdder struct{}

func (ReplaceAdder) Add(pool *BehaviourPool, behaviour Behaviour) {
	category := behaviour.BehaviourCategory()
	pool.replace(category, behaviour)
	pool.userSupplied[category] = true
}

// AlwaysAdder appends unconditionally; repeated calls produce repeated
// entries in call order.
type AlwaysAdder struct{}

func (AlwaysAdder) Add(pool *BehaviourPool, behaviour Behaviour) {
	category := behaviour.BehaviourCategory()
	pool.append(category, behaviour)
	pool.userSupplied[category] = true
}

// NewBehaviourPool creates an empty pool; a nil adder means ReplaceAdder.
func NewBehaviourPool(adder ListAdder) *BehaviourPool {
	if adder == nil {
		adder = ReplaceAdder{}
	}

	return &BehaviourPool{
		behaviours:   make(map[BehaviourCategory][]Behaviour),
		ordered:      make([]BehaviourCategory, 0),
		userSupplied: make(map[BehaviourCategory]bool),
		adder:        adder,
	}
}

// AddDefaultBehaviour registers a fallback behaviour for category; it is a
// no-op when a user-supplied behaviour of that category already exists.
func (pool *BehaviourPool) AddDefaultBehaviour(behaviour Behaviour, category BehaviourCategory) {
	if pool.userSupplied[category] {
		return
	}

	pool.append(category, behaviour)
}

// AddBehaviour registers a user-supplied behaviour through the adder policy.
func (pool *BehaviourPool) AddBehaviour(behaviour Behaviour) {
	pool.adder.Add(pool, behaviour)
}

// ExposeBehaviour returns, in insertion order, the behaviours of the given
// category that would run for the named step. An empty result is the normal
// "agent doesn't do that" case.
func (pool *BehaviourPool) ExposeBehaviour(stepName string, category BehaviourCategory) []Behaviour {
	registered := pool.behaviours[category]

	out := make([]Behaviour, len(registered))
	copy(out, registered)

	return out
}

// Categories returns every category holding at least one behaviour, in
// first-registration order.
func (pool *BehaviourPool) Categories() []BehaviourCategory {
	out := make([]BehaviourCategory, 0, len(pool.ordered))

	for _, category := range pool.ordered {
		if len(pool.behaviours[category]) > 0 {
			out = append(out, category)
		}
	}

	return out
}

func (pool *BehaviourPool) append(category BehaviourCategory, behaviour Behaviour) {
	if _, present := pool.behaviours[category]; !present {
		pool.ordered = append(pool.ordered, category)
	}

	pool.behaviours[category] = append(pool.behaviours[category], behaviour)
}

func (pool *BehaviourPool) replace(category BehaviourCategory, behaviour Behaviour) {
	if _, present := pool.behaviours[category]; !present {
		pool.ordered = append(pool.ordered, category)
	}

	pool.behaviours[category] = []Behaviour{behaviour}
}
