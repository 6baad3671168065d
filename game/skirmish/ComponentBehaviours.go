package skirmish

type Behaviours struct {
	pool *BehaviourPool
}

func NewBehaviours(pool *BehaviourPool) *Behaviours {
	if pool == nil {
		pool = NewBehaviourPool(nil)
	}

	return &Behaviours{pool: pool}
}

func (behaviours Behaviours) Pool() *BehaviourPool { return behaviours.pool }
