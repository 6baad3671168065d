package skirmish

import (
	"errors"
	"time"
)

// Batch construction of triggers from scenario-style parameter sets. Each
// parameter is either a single value broadcast to every slot, a per-slot
// list whose entries may be unset, or absent entirely.

var (
	ErrMissingArgument        = errors.New("Argument required for selected trigger not given.")
	ErrUnsupportedTriggerType = errors.New("Selected Trigger Type does not exist.")
)

// Opt is a possibly-unset value in a per-slot argument list.
type Opt[T any] struct {
	Value T
	Set   bool
}

func Some[T any](value T) Opt[T] { return Opt[T]{Value: value, Set: true} }

func None[T any]() Opt[T] { return Opt[T]{} }

// Param is one factory argument: unsupplied, a scalar broadcast to the whole
// batch, or one entry per slot.
type Param[T any] struct {
	scalar   *T
	perIndex []Opt[T]
}

func Scalar[T any](value T) Param[T] { return Param[T]{scalar: &value} }

func PerIndex[T any](values ...Opt[T]) Param[T] { return Param[T]{perIndex: values} }

// Values builds a per-slot param where every entry is set.
func Values[T any](values ...T) Param[T] {
	opts := make([]Opt[T], len(values))
	for i, value := range values {
		opts[i] = Some(value)
	}
	return Param[T]{perIndex: opts}
}

func (p Param[T]) supplied() bool { return p.scalar != nil || p.perIndex != nil }

// normalize spreads the param over count slots. A scalar repeats; a list is
// taken as-is and must already be count long; unsupplied yields count unset
// entries.
func (p Param[T]) normalize(count int) ([]Opt[T], error) {
	out := make([]Opt[T], count)

	switch {
	case p.scalar != nil:
		for i := range out {
			out[i] = Some(*p.scalar)
		}
	case p.perIndex != nil:
		if len(p.perIndex) != count {
			return nil, ErrMissingArgument
		}
		copy(out, p.perIndex)
	}

	return out, nil
}

// normalizeOptionalArgument resolves unset entries to a default.
func normalizeOptionalArgument[T any](values []Opt[T], def T) []T {
	out := make([]T, len(values))

	for i, value := range values {
		if value.Set {
			out[i] = value.Value
		} else {
			out[i] = def
		}
	}

	return out
}

// requireArgument rejects an argument that was never supplied anywhere in
// the batch. The check is deliberately whole-batch: a list with at least one
// set entry passes, and a slot missing its own value surfaces later, at
// construction of that slot's trigger.
func requireArgument[T any](values []Opt[T]) error {
	for _, value := range values {
		if value.Set {
			return nil
		}
	}

	return ErrMissingArgument
}

// argAt indexes a required argument for one slot. By the time it runs the
// whole-batch check has passed; a hole at this exact slot is a scenario
// authoring error and fails loudly.
func argAt[T any](values []Opt[T], i int) T {
	if !values[i].Set {
		panic(ErrMissingArgument)
	}

	return values[i].Value
}

// TriggerBatch describes a batch of triggers to build in one call. Type is
// mandatory; every other field is optional per trigger kind.
type TriggerBatch struct {
	Type      Param[TriggerType]
	Sticky    Param[bool]
	Log       Param[bool]
	Invert    Param[bool]
	Position  Param[Position]
	Agent     Param[Tracked]
	Tolerance Param[float64]
	Area      Param[Area]
	Boundary  Param[Boundary]
	Time      Param[time.Time]
}

// CreateTriggers builds count triggers from the batch. Each slot resolves
// its own trigger type and picks the argument subset that kind needs;
// arguments without a universal default are vetted by requireArgument
// before indexing.
func CreateTriggers(count int, batch TriggerBatch) ([]Trigger, error) {
	if !batch.Type.supplied() {
		return nil, ErrMissingArgument
	}

	ttypes, err := batch.Type.normalize(count)
	if err != nil {
		return nil, err
	}

	stickyArg, err := batch.Sticky.normalize(count)
	if err != nil {
		return nil, err
	}
	logArg, err := batch.Log.normalize(count)
	if err != nil {
		return nil, err
	}
	invertArg, err := batch.Invert.normalize(count)
	if err != nil {
		return nil, err
	}
	position, err := batch.Position.normalize(count)
	if err != nil {
		return nil, err
	}
	agent, err := batch.Agent.normalize(count)
	if err != nil {
		return nil, err
	}
	tolerance, err := batch.Tolerance.normalize(count)
	if err != nil {
		return nil, err
	}
	area, err := batch.Area.normalize(count)
	if err != nil {
		return nil, err
	}
	boundary, err := batch.Boundary.normalize(count)
	if err != nil {
		return nil, err
	}
	timeArg, err := batch.Time.normalize(count)
	if err != nil {
		return nil, err
	}

	sticky := normalizeOptionalArgument(stickyArg, false)
	log := normalizeOptionalArgument(logArg, true)
	invert := normalizeOptionalArgument(invertArg, false)

	triggers := make([]Trigger, 0, count)

	for i := 0; i < count; i++ {
		var trigger Trigger

		switch argAt(ttypes, i) {
		case TriggerTypeImmediate:
			trigger = NewImmediateTrigger(sticky[i], log[i], invert[i])

		case TriggerTypeImmediateSensorFusion:
			trigger = NewImmediateSensorFusionTrigger(sticky[i], log[i], invert[i])

		case TriggerTypeKilledAgentsAtPosition:
			if err := requireArgument(position); err != nil {
				return nil, err
			}
			trigger = NewKilledAgentsAtPositionTrigger(argAt(position, i), sticky[i], log[i], invert[i])

		case TriggerTypeAliveAgentsAtPosition:
			if err := requireArgument(position); err != nil {
				return nil, err
			}
			trigger = NewAliveAgentsAtPositionTrigger(argAt(position, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentAtPosition:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(position); err != nil {
				return nil, err
			}
			if err := requireArgument(tolerance); err != nil {
				return nil, err
			}
			trigger = NewPositionTrigger(argAt(agent, i), argAt(position, i), argAt(tolerance, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentInArea:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(area); err != nil {
				return nil, err
			}
			trigger = NewInAreaTrigger(argAt(agent, i), argAt(area, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentNotInArea:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(area); err != nil {
				return nil, err
			}
			trigger = NewNotInAreaTrigger(argAt(agent, i), argAt(area, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentCrossedBoundary:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(boundary); err != nil {
				return nil, err
			}
			trigger = NewCrossedBoundaryTrigger(argAt(agent, i), argAt(boundary, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentMovedOutOfArea:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(area); err != nil {
				return nil, err
			}
			trigger = NewMovedOutOfAreaTrigger(argAt(agent, i), argAt(area, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentKilled:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			trigger = NewAgentKilledTrigger(argAt(agent, i), sticky[i], log[i], invert[i])

		case TriggerTypeTime:
			if err := requireArgument(timeArg); err != nil {
				return nil, err
			}
			trigger = NewTimeTrigger(argAt(timeArg, i), sticky[i], log[i], invert[i])

		case TriggerTypeAgentFiredWeapon:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			trigger = NewAgentFiredWeaponTrigger(argAt(agent, i), sticky[i], log[i], invert[i])

		case TriggerTypeWeaponFiredNearAgent:
			if err := requireArgument(agent); err != nil {
				return nil, err
			}
			if err := requireArgument(tolerance); err != nil {
				return nil, err
			}
			trigger = NewWeaponFiredNearAgentTrigger(argAt(agent, i), argAt(tolerance, i), sticky[i], log[i], invert[i])

		case TriggerTypeWeaponFiredNearLocation:
			if err := requireArgument(position); err != nil {
				return nil, err
			}
			if err := requireArgument(tolerance); err != nil {
				return nil, err
			}
			trigger = NewWeaponFiredNearLocationTrigger(argAt(position, i), argAt(tolerance, i), sticky[i], log[i], invert[i])

		default:
			return nil, ErrUnsupportedTriggerType
		}

		triggers = append(triggers, trigger)
	}

	return triggers, nil
}
