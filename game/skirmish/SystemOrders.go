package skirmish

import "github.com/bytearena/ecs"

func systemOrders(game *SkirmishGame) {

	for _, entityresult := range game.ordersView.Get() {
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)
		if casualtyAspect.IsKilled() {
			continue
		}

		ordersAspect := entityresult.Components[game.ordersComponent].(*Orders)
		behavioursAspect := entityresult.Components[game.behavioursComponent].(*Behaviours)
		identityAspect := entityresult.Components[game.identityComponent].(*Identity)

		subject := &trackedAgent{
			game: game,
			id:   entityresult.Entity.GetID(),
			uid:  identityAspect.id,
		}

		ctx := &TriggerContext{
			Time:    game.modelTime,
			Subject: subject,
			World:   game,
		}

		for _, background := range ordersAspect.Background() {
			if background.Trigger.IsActive(ctx) {
				game.dispatchTask(background.Task, entityresult.Entity.GetID(), behavioursAspect.Pool())
			}
		}

		var activated *Order
		for _, order := range ordersAspect.Pending() {
			if order.done || order == ordersAspect.Current() {
				continue
			}

			if order.Trigger.IsActive(ctx) {
				if activated == nil || order.Priority > activated.Priority {
					activated = order
				}
			}
		}

		current := ordersAspect.Current()
		if activated != nil && (current == nil || activated.Priority > current.Priority) {
			ordersAspect.SetCurrent(activated)
			current = activated
		}

		if current == nil {
			continue
		}

		if game.dispatchTask(current.Task, entityresult.Entity.GetID(), behavioursAspect.Pool()) {
			current.done = true
			ordersAspect.SetCurrent(nil)
		}
	}
}

// dispatchTask runs a task if the agent's pool holds a behaviour of the
// task's category; an agent without the capability silently ignores the
// order. Returns true when the task reports completion.
func (game *SkirmishGame) dispatchTask(task Task, entityId ecs.EntityID, pool *BehaviourPool) bool {
	if len(pool.ExposeBehaviour("orders", task.TaskCategory())) == 0 {
		return false
	}

	qr := game.getEntity(entityId,
		game.identityComponent,
		game.movementComponent,
		game.behavioursComponent,
		game.sensingComponent,
		game.armamentComponent,
		game.casualtyComponent,
	)
	if qr == nil {
		return false
	}

	return task.Apply(game, qr)
}
