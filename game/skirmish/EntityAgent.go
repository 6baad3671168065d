package skirmish

import (
	"github.com/bytearena/ecs"
	uuid "github.com/satori/go.uuid"

	"github.com/Morshead-Consulting/RET/common/utils"
)

// NewEntityAgent spawns an agent of the given class. User behaviours must
// already be in the pool; class defaults are seeded afterwards so they only
// fill the categories the user left open.
func (game *SkirmishGame) NewEntityAgent(name string, class AgentClass, affiliation Affiliation, position Position, pool *BehaviourPool) *ecs.Entity {

	specs, known := agentSpecsByClass[class]
	utils.Assert(known, "Unknown agent class "+string(class))

	if pool == nil {
		pool = NewBehaviourPool(nil)
	}
	seedDefaultBehaviours(pool, class, specs)

	agent := game.manager.NewEntity()
	uid := uuid.NewV4().String()

	game.byUid[uid] = agent.GetID()
	game.byName[name] = agent.GetID()

	return agent.
		AddComponent(game.identityComponent, &Identity{
			id:          uid,
			name:        name,
			class:       class,
			affiliation: affiliation,
			icon:        specs.Icon,
			killedIcon:  specs.KilledIcon,
		}).
		AddComponent(game.movementComponent, NewMovement(position)).
		AddComponent(game.behavioursComponent, NewBehaviours(pool)).
		AddComponent(game.ordersComponent, NewOrders(nil, nil)).
		AddComponent(game.sensingComponent, NewSensing([]DistanceSensor{specs.Sensor})).
		AddComponent(game.armamentComponent, NewArmament([]Weapon{specs.Weapon}, nil)).
		AddComponent(game.casualtyComponent, NewCasualty()).
		AddComponent(game.renderComponent, &Render{
			type_: "agent",
		})
}
