package skirmish

import "github.com/bytearena/ecs"

// Task is the action half of an order. Apply runs once per step while the
// order is active; it reports true when the task has completed.
type Task interface {
	TaskCategory() BehaviourCategory
	Apply(game *SkirmishGame, qr *ecs.QueryResult) bool
}

// Order pairs a trigger with a task. The order fires when its trigger
// activates; a sticky trigger re-arms the order every step it holds.
type Order struct {
	Trigger  Trigger
	Task     Task
	Priority int

	active bool
	done   bool
}

// BackgroundOrder runs its task on every step where its trigger holds,
// independently of the agent's current foreground order.
type BackgroundOrder struct {
	Trigger Trigger
	Task    Task
}

type WaitTask struct{}

func (WaitTask) TaskCategory() BehaviourCategory { return CategoryWait }

func (WaitTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	return true
}

// MoveTask steers the agent towards Destination; done within Tolerance.
type MoveTask struct {
	Destination Position
	Tolerance   float64
}

func (MoveTask) TaskCategory() BehaviourCategory { return CategoryMove }

func (task MoveTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	movementAspect := qr.Components[game.movementComponent].(*Movement)
	movementAspect.SetDestination(task.Destination)

	return movementAspect.Position().Dist(task.Destination) <= task.Tolerance
}

// FireTask requests Rounds shots at resolved targets; Rounds <= 0 never
// completes.
type FireTask struct {
	Rounds int

	roundsFired int
}

func (FireTask) TaskCategory() BehaviourCategory { return CategoryFire }

func (task *FireTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	armamentAspect := qr.Components[game.armamentComponent].(*Armament)
	armamentAspect.RequestFire()

	if task.Rounds <= 0 {
		return false
	}

	task.roundsFired++
	return task.roundsFired >= task.Rounds
}

type HideTask struct{}

func (HideTask) TaskCategory() BehaviourCategory { return CategoryHide }

func (HideTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	movementAspect := qr.Components[game.movementComponent].(*Movement)
	movementAspect.ClearDestination()

	identityAspect := qr.Components[game.identityComponent].(*Identity)
	identityAspect.hidden = true

	return true
}

type SenseTask struct{}

func (SenseTask) TaskCategory() BehaviourCategory { return CategorySense }

func (SenseTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	sensingAspect := qr.Components[game.sensingComponent].(*Sensing)
	sensingAspect.RequestSense()
	return true
}

// CommunicateWorldviewTask shares the agent's perceived world with every
// friendly in communication range on the next communicate pass.
type CommunicateWorldviewTask struct{}

func (CommunicateWorldviewTask) TaskCategory() BehaviourCategory {
	return CategoryCommunicateWorldview
}

func (CommunicateWorldviewTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	identityAspect := qr.Components[game.identityComponent].(*Identity)
	game.queueWorldviewShare(identityAspect.id)
	return true
}

type DisableCommunicationTask struct{}

func (DisableCommunicationTask) TaskCategory() BehaviourCategory {
	return CategoryDisableCommunication
}

func (task DisableCommunicationTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	behavioursAspect := qr.Components[game.behavioursComponent].(*Behaviours)

	identityAspect := qr.Components[game.identityComponent].(*Identity)
	movementAspect := qr.Components[game.movementComponent].(*Movement)

	for _, behaviour := range behavioursAspect.Pool().ExposeBehaviour("communicate", CategoryDisableCommunication) {
		jammer := behaviour.(DisableCommunicationBehaviour)
		game.queueJam(movementAspect.Position(), jammer.Range, identityAspect.affiliation)
	}

	return true
}

type DeployCountermeasureTask struct{}

func (DeployCountermeasureTask) TaskCategory() BehaviourCategory {
	return CategoryDeployCountermeasure
}

func (DeployCountermeasureTask) Apply(game *SkirmishGame, qr *ecs.QueryResult) bool {
	identityAspect := qr.Components[game.identityComponent].(*Identity)
	identityAspect.countermeasureDeployed = true
	return true
}
