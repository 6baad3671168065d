package skirmish

import (
	"time"

	"github.com/Morshead-Consulting/RET/common/utils"
)

// Tracked is the view of an agent a trigger needs to watch it.
type Tracked interface {
	TrackedId() string
	TrackedPosition() Position
	TrackedKilled() bool
}

// WorldView is what trigger evaluation may ask of the running model.
type WorldView interface {
	PerceivedBy(subject Tracked) []PerceivedAgent
	PerceivedAtPosition(subject Tracked, pos Position, tolerance float64, state CasualtyState) []PerceivedAgent
	WeaponFiredNear(pos Position, tolerance float64) bool
	WeaponFiredBy(id string) bool
	PerceptionFusedFor(id string) bool
}

// TriggerContext is rebuilt for each agent each step and handed to every
// trigger of its orders.
type TriggerContext struct {
	Time    time.Time
	Subject Tracked
	World   WorldView
}

// Trigger is a condition attached to an order, evaluated once per step. A
// non-sticky trigger is consumed by its first activation; a sticky trigger
// stays evaluable forever.
type Trigger interface {
	IsActive(ctx *TriggerContext) bool
	Sticky() bool
	Logged() bool
	Inverted() bool
}

// Tolerance applied by the at-position triggers that take no explicit one.
const positionMatchTolerance = 1.0

type baseTrigger struct {
	sticky bool
	log    bool
	invert bool
	fired  bool
}

func makeBaseTrigger(sticky bool, log bool, invert bool) baseTrigger {
	return baseTrigger{sticky: sticky, log: log, invert: invert}
}

func (t *baseTrigger) Sticky() bool   { return t.sticky }
func (t *baseTrigger) Logged() bool   { return t.log }
func (t *baseTrigger) Inverted() bool { return t.invert }

func (t *baseTrigger) resolve(name string, condition bool) bool {
	if t.invert {
		condition = !condition
	}

	if t.fired && !t.sticky {
		return false
	}

	if condition {
		if !t.sticky {
			t.fired = true
		}

		if t.log {
			utils.Debug("trigger", name+" activated")
		}
	}

	return condition
}

type ImmediateTrigger struct {
	baseTrigger
}

func NewImmediateTrigger(sticky bool, log bool, invert bool) *ImmediateTrigger {
	return &ImmediateTrigger{makeBaseTrigger(sticky, log, invert)}
}

func (t *ImmediateTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("immediate", true)
}

type ImmediateSensorFusionTrigger struct {
	baseTrigger
}

func NewImmediateSensorFusionTrigger(sticky bool, log bool, invert bool) *ImmediateSensorFusionTrigger {
	return &ImmediateSensorFusionTrigger{makeBaseTrigger(sticky, log, invert)}
}

func (t *ImmediateSensorFusionTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("immediate sensor fusion", ctx.World.PerceptionFusedFor(ctx.Subject.TrackedId()))
}

type KilledAgentsAtPositionTrigger struct {
	baseTrigger
	position Position
}

func NewKilledAgentsAtPositionTrigger(position Position, sticky bool, log bool, invert bool) *KilledAgentsAtPositionTrigger {
	return &KilledAgentsAtPositionTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		position:    position,
	}
}

func (t *KilledAgentsAtPositionTrigger) IsActive(ctx *TriggerContext) bool {
	killed := ctx.World.PerceivedAtPosition(ctx.Subject, t.position, positionMatchTolerance, CasualtyStateKilled)
	return t.resolve("killed agents at position", len(killed) > 0)
}

type AliveAgentsAtPositionTrigger struct {
	baseTrigger
	position Position
}

func NewAliveAgentsAtPositionTrigger(position Position, sticky bool, log bool, invert bool) *AliveAgentsAtPositionTrigger {
	return &AliveAgentsAtPositionTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		position:    position,
	}
}

func (t *AliveAgentsAtPositionTrigger) IsActive(ctx *TriggerContext) bool {
	alive := ctx.World.PerceivedAtPosition(ctx.Subject, t.position, positionMatchTolerance, CasualtyStateAlive)
	return t.resolve("alive agents at position", len(alive) > 0)
}

// PositionTrigger fires when the watched agent is within tolerance of a
// position.
type PositionTrigger struct {
	baseTrigger
	agent     Tracked
	position  Position
	tolerance float64
}

func NewPositionTrigger(agent Tracked, position Position, tolerance float64, sticky bool, log bool, invert bool) *PositionTrigger {
	return &PositionTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		position:    position,
		tolerance:   tolerance,
	}
}

func (t *PositionTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("agent at position", t.agent.TrackedPosition().Dist(t.position) <= t.tolerance)
}

type InAreaTrigger struct {
	baseTrigger
	agent Tracked
	area  Area
}

func NewInAreaTrigger(agent Tracked, area Area, sticky bool, log bool, invert bool) *InAreaTrigger {
	return &InAreaTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		area:        area,
	}
}

func (t *InAreaTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("agent in area", t.area.Contains(t.agent.TrackedPosition()))
}

type NotInAreaTrigger struct {
	baseTrigger
	agent Tracked
	area  Area
}

func NewNotInAreaTrigger(agent Tracked, area Area, sticky bool, log bool, invert bool) *NotInAreaTrigger {
	return &NotInAreaTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		area:        area,
	}
}

func (t *NotInAreaTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("agent not in area", !t.area.Contains(t.agent.TrackedPosition()))
}

// CrossedBoundaryTrigger compares the watched agent's position against its
// position at the previous evaluation.
type CrossedBoundaryTrigger struct {
	baseTrigger
	agent    Tracked
	boundary Boundary
	lastPos  *Position
}

func NewCrossedBoundaryTrigger(agent Tracked, boundary Boundary, sticky bool, log bool, invert bool) *CrossedBoundaryTrigger {
	return &CrossedBoundaryTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		boundary:    boundary,
	}
}

func (t *CrossedBoundaryTrigger) IsActive(ctx *TriggerContext) bool {
	current := t.agent.TrackedPosition()

	crossed := false
	if t.lastPos != nil {
		crossed = t.boundary.Crossed(*t.lastPos, current)
	}
	t.lastPos = &current

	return t.resolve("agent crossed boundary", crossed)
}

type MovedOutOfAreaTrigger struct {
	baseTrigger
	agent     Tracked
	area      Area
	hasBeenIn bool
}

func NewMovedOutOfAreaTrigger(agent Tracked, area Area, sticky bool, log bool, invert bool) *MovedOutOfAreaTrigger {
	return &MovedOutOfAreaTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		area:        area,
	}
}

func (t *MovedOutOfAreaTrigger) IsActive(ctx *TriggerContext) bool {
	inside := t.area.Contains(t.agent.TrackedPosition())

	movedOut := t.hasBeenIn && !inside
	if inside {
		t.hasBeenIn = true
	}

	return t.resolve("agent moved out of area", movedOut)
}

type AgentKilledTrigger struct {
	baseTrigger
	agent Tracked
}

func NewAgentKilledTrigger(agent Tracked, sticky bool, log bool, invert bool) *AgentKilledTrigger {
	return &AgentKilledTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
	}
}

func (t *AgentKilledTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("agent killed", t.agent.TrackedKilled())
}

type TimeTrigger struct {
	baseTrigger
	time time.Time
}

func NewTimeTrigger(at time.Time, sticky bool, log bool, invert bool) *TimeTrigger {
	return &TimeTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		time:        at,
	}
}

func (t *TimeTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("time", !ctx.Time.Before(t.time))
}

type AgentFiredWeaponTrigger struct {
	baseTrigger
	agent Tracked
}

func NewAgentFiredWeaponTrigger(agent Tracked, sticky bool, log bool, invert bool) *AgentFiredWeaponTrigger {
	return &AgentFiredWeaponTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
	}
}

func (t *AgentFiredWeaponTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("agent fired weapon", ctx.World.WeaponFiredBy(t.agent.TrackedId()))
}

type WeaponFiredNearAgentTrigger struct {
	baseTrigger
	agent     Tracked
	tolerance float64
}

func NewWeaponFiredNearAgentTrigger(agent Tracked, tolerance float64, sticky bool, log bool, invert bool) *WeaponFiredNearAgentTrigger {
	return &WeaponFiredNearAgentTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		agent:       agent,
		tolerance:   tolerance,
	}
}

func (t *WeaponFiredNearAgentTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("weapon fired near agent", ctx.World.WeaponFiredNear(t.agent.TrackedPosition(), t.tolerance))
}

type WeaponFiredNearLocationTrigger struct {
	baseTrigger
	position  Position
	tolerance float64
}

func NewWeaponFiredNearLocationTrigger(position Position, tolerance float64, sticky bool, log bool, invert bool) *WeaponFiredNearLocationTrigger {
	return &WeaponFiredNearLocationTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		position:    position,
		tolerance:   tolerance,
	}
}

func (t *WeaponFiredNearLocationTrigger) IsActive(ctx *TriggerContext) bool {
	return t.resolve("weapon fired near location", ctx.World.WeaponFiredNear(t.position, t.tolerance))
}

// CompoundAndTrigger is active when all of its members are. It cannot be
// built through CreateTriggers; compose it directly.
type CompoundAndTrigger struct {
	baseTrigger
	triggers []Trigger
}

func NewCompoundAndTrigger(triggers []Trigger, sticky bool, log bool, invert bool) *CompoundAndTrigger {
	return &CompoundAndTrigger{
		baseTrigger: makeBaseTrigger(sticky, log, invert),
		triggers:    triggers,
	}
}

func (t *CompoundAndTrigger) IsActive(ctx *TriggerContext) bool {
	all := true

	for _, member := range t.triggers {
		if !member.IsActive(ctx) {
			all = false
		}
	}

	return t.resolve("compound and", all && len(t.triggers) > 0)
}
