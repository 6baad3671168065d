package skirmish

import (
	json "encoding/json"
	"math/rand"
	"time"

	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	commontypes "github.com/Morshead-Consulting/RET/common/types"
)

type shotEvent struct {
	firer    string
	position Position
}

type jamEvent struct {
	center Position
	radius float64
	by     Affiliation
}

type SkirmishGame struct {
	ticknum    int
	stepNumber int
	simId      string
	tps        int

	scenario *Scenario

	modelTime time.Time
	startTime time.Time
	timeStep  time.Duration
	endTime   time.Time

	manager *ecs.Manager

	identityComponent   *ecs.Component
	movementComponent   *ecs.Component
	behavioursComponent *ecs.Component
	ordersComponent     *ecs.Component
	sensingComponent    *ecs.Component
	armamentComponent   *ecs.Component
	casualtyComponent   *ecs.Component
	renderComponent     *ecs.Component

	agentsView     *ecs.View
	ordersView     *ecs.View
	sensingView    *ecs.View
	movingView     *ecs.View
	firingView     *ecs.View
	renderableView *ecs.View

	byUid  map[string]ecs.EntityID
	byName map[string]ecs.EntityID

	areas      map[string]Area
	boundaries map[string]Boundary

	spatial *SpatialIndex

	shotsThisStep []shotEvent
	shotsLastStep []shotEvent

	worldviewShares []string
	jams            []jamEvent

	rng *rand.Rand
}

func NewSkirmishGame(scenario *Scenario, tps int) (*SkirmishGame, error) {
	manager := ecs.NewManager()

	game := &SkirmishGame{
		simId:    uuid.NewV4().String(),
		tps:      tps,
		scenario: scenario,
		manager:  manager,

		identityComponent:   manager.NewComponent(),
		movementComponent:   manager.NewComponent(),
		behavioursComponent: manager.NewComponent(),
		ordersComponent:     manager.NewComponent(),
		sensingComponent:    manager.NewComponent(),
		armamentComponent:   manager.NewComponent(),
		casualtyComponent:   manager.NewComponent(),
		renderComponent:     manager.NewComponent(),

		byUid:  make(map[string]ecs.EntityID),
		byName: make(map[string]ecs.EntityID),

		areas:      make(map[string]Area),
		boundaries: make(map[string]Boundary),

		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	game.agentsView = manager.CreateView(
		game.identityComponent,
		game.movementComponent,
		game.casualtyComponent,
	)

	game.ordersView = manager.CreateView(
		game.ordersComponent,
		game.behavioursComponent,
		game.identityComponent,
		game.casualtyComponent,
	)

	game.sensingView = manager.CreateView(
		game.sensingComponent,
		game.behavioursComponent,
		game.movementComponent,
		game.identityComponent,
		game.casualtyComponent,
	)

	game.movingView = manager.CreateView(
		game.movementComponent,
		game.behavioursComponent,
		game.casualtyComponent,
	)

	game.firingView = manager.CreateView(
		game.armamentComponent,
		game.sensingComponent,
		game.movementComponent,
		game.identityComponent,
		game.casualtyComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.identityComponent,
		game.movementComponent,
		game.casualtyComponent,
	)

	if err := game.initFromScenario(scenario); err != nil {
		return nil, err
	}

	return game, nil
}

func (game SkirmishGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *SkirmishGame) entityByUid(uid string) (*ecs.QueryResult, bool) {
	id, known := game.byUid[uid]
	if !known {
		return nil, false
	}

	qr := game.getEntity(id,
		game.identityComponent,
		game.movementComponent,
		game.sensingComponent,
		game.casualtyComponent,
	)
	if qr == nil {
		return nil, false
	}

	return qr, true
}

// TrackedByName resolves a scenario agent name into the handle triggers
// watch it through.
func (game *SkirmishGame) TrackedByName(name string) (Tracked, bool) {
	id, known := game.byName[name]
	if !known {
		return nil, false
	}

	qr := game.getEntity(id, game.identityComponent)
	if qr == nil {
		return nil, false
	}

	identityAspect := qr.Components[game.identityComponent].(*Identity)

	return &trackedAgent{game: game, id: id, uid: identityAspect.id}, true
}

// trackedAgent is the live handle a trigger holds on an agent.
type trackedAgent struct {
	game *SkirmishGame
	id   ecs.EntityID
	uid  string
}

func (t *trackedAgent) TrackedId() string { return t.uid }

func (t *trackedAgent) TrackedPosition() Position {
	qr := t.game.getEntity(t.id, t.game.movementComponent)
	if qr == nil {
		return Position{}
	}

	return qr.Components[t.game.movementComponent].(*Movement).Position()
}

func (t *trackedAgent) TrackedKilled() bool {
	qr := t.game.getEntity(t.id, t.game.casualtyComponent)
	if qr == nil {
		return true
	}

	return qr.Components[t.game.casualtyComponent].(*Casualty).IsKilled()
}

// <GameInterface>

func (game *SkirmishGame) ImplementsGameInterface() {}

func (game *SkirmishGame) Step(ticknum int, dt float64) {
	game.ticknum = ticknum
	game.stepNumber++

	game.rebuildSpatialIndex()

	systemSense(game)
	systemOrders(game)
	systemMove(game)
	systemFire(game)
	systemCommunicate(game)
	systemDeath(game)

	game.shotsLastStep = game.shotsThisStep
	game.shotsThisStep = nil

	game.modelTime = game.modelTime.Add(game.timeStep)
}

func (game *SkirmishGame) IsOver() bool {
	return game.modelTime.After(game.endTime)
}

func (game *SkirmishGame) GetTps() int {
	return game.tps
}

func (game *SkirmishGame) GetScenarioInfo() *commontypes.ScenarioInfo {
	return &commontypes.ScenarioInfo{
		Name: game.scenario.Name,
		MapSize: commontypes.MapSize{
			XMin: game.scenario.Map.XMin,
			XMax: game.scenario.Map.XMax,
			YMin: game.scenario.Map.YMin,
			YMax: game.scenario.Map.YMax,
		},
		StartTime: game.startTime.Format(time.RFC3339),
		TimeStep:  game.timeStep.String(),
		EndTime:   game.endTime.Format(time.RFC3339),
	}
}

func (game *SkirmishGame) GetVizFrameJson() []byte {
	frame := commontypes.PlaybackFrame{
		SimId:      game.simId,
		StepNumber: game.stepNumber,
		Time:       game.modelTime.Format(time.RFC3339),
		Agents:     []commontypes.PlaybackAgent{},
		Shots:      make([][2]float64, 0),
	}

	for _, entityresult := range game.renderableView.Get() {
		identityAspect := entityresult.Components[game.identityComponent].(*Identity)
		movementAspect := entityresult.Components[game.movementComponent].(*Movement)
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)

		frame.Agents = append(frame.Agents, commontypes.PlaybackAgent{
			Id:          identityAspect.id,
			Name:        identityAspect.name,
			Class:       string(identityAspect.class),
			Affiliation: string(identityAspect.affiliation),
			Casualty:    string(casualtyAspect.State()),
			Position:    movementAspect.Position().XY(),
			Icon:        identityAspect.Icon(casualtyAspect.State()),
		})
	}

	for _, shot := range game.shotsLastStep {
		frame.Shots = append(frame.Shots, shot.position.XY())
	}

	res, _ := json.Marshal(frame)
	return res
}

// </GameInterface>

// ModelTime is the simulated clock, advanced one scenario time step per
// Step call.
func (game *SkirmishGame) ModelTime() time.Time {
	return game.modelTime
}

func (game *SkirmishGame) StepNumber() int {
	return game.stepNumber
}

func (game *SkirmishGame) SimId() string {
	return game.simId
}

func (game *SkirmishGame) queueWorldviewShare(uid string) {
	game.worldviewShares = append(game.worldviewShares, uid)
}

func (game *SkirmishGame) queueJam(center Position, radius float64, by Affiliation) {
	game.jams = append(game.jams, jamEvent{center: center, radius: radius, by: by})
}

func (game *SkirmishGame) recordShot(firer string, position Position) {
	game.shotsThisStep = append(game.shotsThisStep, shotEvent{firer: firer, position: position})
}

func (game *SkirmishGame) rebuildSpatialIndex() {
	game.spatial = NewSpatialIndex()

	for _, entityresult := range game.agentsView.Get() {
		identityAspect := entityresult.Components[game.identityComponent].(*Identity)
		movementAspect := entityresult.Components[game.movementComponent].(*Movement)

		game.spatial.Insert(identityAspect.id, movementAspect.Position())
	}
}

// <WorldView>

func (game *SkirmishGame) PerceivedBy(subject Tracked) []PerceivedAgent {
	qr, found := game.entityByUid(subject.TrackedId())
	if !found {
		return nil
	}

	return qr.Components[game.sensingComponent].(*Sensing).Perceived().Snapshot()
}

func (game *SkirmishGame) PerceivedAtPosition(subject Tracked, pos Position, tolerance float64, state CasualtyState) []PerceivedAgent {
	qr, found := game.entityByUid(subject.TrackedId())
	if !found {
		return nil
	}

	return qr.Components[game.sensingComponent].(*Sensing).Perceived().AtPosition(pos, tolerance, state)
}

func (game *SkirmishGame) WeaponFiredNear(pos Position, tolerance float64) bool {
	for _, shot := range game.shotsLastStep {
		if shot.position.Dist(pos) <= tolerance {
			return true
		}
	}

	return false
}

func (game *SkirmishGame) WeaponFiredBy(id string) bool {
	for _, shot := range game.shotsLastStep {
		if shot.firer == id {
			return true
		}
	}

	return false
}

func (game *SkirmishGame) PerceptionFusedFor(id string) bool {
	qr, found := game.entityByUid(id)
	if !found {
		return false
	}

	return qr.Components[game.sensingComponent].(*Sensing).Perceived().Fused()
}

// </WorldView>
