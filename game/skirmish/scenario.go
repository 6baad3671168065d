package skirmish

import (
	json "encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Scenario is the JSON scenario container: map bounds, simulated time
// window, named geometry features and the agents with their orders.
type Scenario struct {
	Name     string            `json:"name"`
	Map      MapSpec           `json:"map"`
	Time     TimeSpec          `json:"time"`
	Features []FeatureSpec     `json:"features"`
	Agents   []AgentDefinition `json:"agents"`
}

type MapSpec struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type TimeSpec struct {
	Start       string  `json:"start"`
	StepSeconds float64 `json:"step_seconds"`
	End         string  `json:"end"`
}

// FeatureSpec is one named geometry feature. Kind "box" reads Coords as
// [x_min, y_min, x_max, y_max]; kind "line" as [x1, y1, x2, y2].
type FeatureSpec struct {
	Kind   string     `json:"kind"`
	Name   string     `json:"name"`
	Coords [4]float64 `json:"coords"`
}

type AgentDefinition struct {
	Name             string      `json:"name"`
	Class            AgentClass  `json:"class"`
	Affiliation      Affiliation `json:"affiliation"`
	Position         [2]float64  `json:"position"`
	AdderPolicy      string      `json:"adder_policy,omitempty"`
	MoveSpeed        *float64    `json:"move_speed,omitempty"`
	Orders           []OrderSpec `json:"orders,omitempty"`
	BackgroundOrders []OrderSpec `json:"background_orders,omitempty"`
}

type OrderSpec struct {
	Trigger  TriggerSpec `json:"trigger"`
	Task     TaskSpec    `json:"task"`
	Priority int         `json:"priority,omitempty"`
}

// TriggerSpec is the scenario-file form of one trigger slot; Agent, Area
// and Boundary are references by name.
type TriggerSpec struct {
	Type      string      `json:"type"`
	Sticky    *bool       `json:"sticky,omitempty"`
	Log       *bool       `json:"log,omitempty"`
	Invert    *bool       `json:"invert,omitempty"`
	Position  *[2]float64 `json:"position,omitempty"`
	Agent     string      `json:"agent,omitempty"`
	Tolerance *float64    `json:"tolerance,omitempty"`
	Area      string      `json:"area,omitempty"`
	Boundary  string      `json:"boundary,omitempty"`
	Time      string      `json:"time,omitempty"`
}

type TaskSpec struct {
	Kind        string      `json:"kind"`
	Destination *[2]float64 `json:"destination,omitempty"`
	Tolerance   *float64    `json:"tolerance,omitempty"`
	Rounds      *int        `json:"rounds,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(filename string) (*Scenario, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := json.Unmarshal(raw, &scenario); err != nil {
		return nil, err
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func (scenario *Scenario) Validate() error {
	if scenario.Name == "" {
		return errors.New("scenario has no name")
	}

	if scenario.Map.XMax <= scenario.Map.XMin || scenario.Map.YMax <= scenario.Map.YMin {
		return errors.New("scenario map bounds are degenerate")
	}

	if _, err := time.Parse(time.RFC3339, scenario.Time.Start); err != nil {
		return fmt.Errorf("scenario start time: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, scenario.Time.End); err != nil {
		return fmt.Errorf("scenario end time: %v", err)
	}
	if scenario.Time.StepSeconds <= 0 {
		return errors.New("scenario time step must be positive")
	}

	names := make(map[string]bool)
	for _, agent := range scenario.Agents {
		if agent.Name == "" {
			return errors.New("scenario agent has no name")
		}
		if names[agent.Name] {
			return fmt.Errorf("duplicate agent name %q", agent.Name)
		}
		names[agent.Name] = true

		if _, known := agentSpecsByClass[agent.Class]; !known {
			return fmt.Errorf("agent %q has unknown class %q", agent.Name, agent.Class)
		}
	}

	return nil
}

func (game *SkirmishGame) initFromScenario(scenario *Scenario) error {
	start, err := time.Parse(time.RFC3339, scenario.Time.Start)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, scenario.Time.End)
	if err != nil {
		return err
	}

	game.startTime = start
	game.modelTime = start
	game.endTime = end
	game.timeStep = time.Duration(scenario.Time.StepSeconds * float64(time.Second))

	for _, feature := range scenario.Features {
		switch feature.Kind {
		case "box":
			game.areas[feature.Name] = NewBoxFeature(
				MakePosition(feature.Coords[0], feature.Coords[1]),
				MakePosition(feature.Coords[2], feature.Coords[3]),
				feature.Name,
			)
		case "line":
			game.boundaries[feature.Name] = NewLineFeature(
				MakePosition(feature.Coords[0], feature.Coords[1]),
				MakePosition(feature.Coords[2], feature.Coords[3]),
				feature.Name,
			)
		default:
			return fmt.Errorf("unknown feature kind %q", feature.Kind)
		}
	}

	// Spawn every agent before building orders: triggers may reference any
	// agent by name, including ones defined later in the file.
	for _, def := range scenario.Agents {
		pool := NewBehaviourPool(adderForPolicy(def.AdderPolicy))

		if def.MoveSpeed != nil {
			pool.AddBehaviour(GroundMoveBehaviour{
				BaseSpeed:              *def.MoveSpeed,
				GradientSpeedModifiers: groundMoveGradientModifiers(),
			})
		}

		game.NewEntityAgent(def.Name, def.Class, def.Affiliation,
			MakePosition(def.Position[0], def.Position[1]), pool)
	}

	for _, def := range scenario.Agents {
		if err := game.attachOrders(def); err != nil {
			return fmt.Errorf("agent %q: %v", def.Name, err)
		}
	}

	return nil
}

func adderForPolicy(policy string) ListAdder {
	if policy == "always" {
		return AlwaysAdder{}
	}
	return nil
}

func (game *SkirmishGame) attachOrders(def AgentDefinition) error {
	id, known := game.byName[def.Name]
	if !known {
		return fmt.Errorf("unknown agent %q", def.Name)
	}

	qr := game.getEntity(id, game.ordersComponent)
	if qr == nil {
		return fmt.Errorf("agent %q has no orders component", def.Name)
	}
	ordersAspect := qr.Components[game.ordersComponent].(*Orders)

	orders, err := game.buildOrders(def.Orders)
	if err != nil {
		return err
	}
	for i, order := range orders {
		order.Priority = def.Orders[i].Priority
		ordersAspect.Append(order)
	}

	background, err := game.buildOrders(def.BackgroundOrders)
	if err != nil {
		return err
	}
	for _, order := range background {
		ordersAspect.background = append(ordersAspect.background, &BackgroundOrder{
			Trigger: order.Trigger,
			Task:    order.Task,
		})
	}

	return nil
}

// buildOrders converts the specs of one agent into orders, building all
// their triggers through CreateTriggers in a single batch.
func (game *SkirmishGame) buildOrders(specs []OrderSpec) ([]*Order, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	batch, err := game.triggerBatch(specs)
	if err != nil {
		return nil, err
	}

	triggers, err := CreateTriggers(len(specs), batch)
	if err != nil {
		return nil, err
	}

	orders := make([]*Order, 0, len(specs))
	for i, spec := range specs {
		task, err := buildTask(spec.Task)
		if err != nil {
			return nil, err
		}

		orders = append(orders, &Order{
			Trigger: triggers[i],
			Task:    task,
		})
	}

	return orders, nil
}

func (game *SkirmishGame) triggerBatch(specs []OrderSpec) (TriggerBatch, error) {
	count := len(specs)

	ttypes := make([]Opt[TriggerType], count)
	sticky := make([]Opt[bool], count)
	log := make([]Opt[bool], count)
	invert := make([]Opt[bool], count)
	position := make([]Opt[Position], count)
	agent := make([]Opt[Tracked], count)
	tolerance := make([]Opt[float64], count)
	area := make([]Opt[Area], count)
	boundary := make([]Opt[Boundary], count)
	timeArg := make([]Opt[time.Time], count)

	for i, spec := range specs {
		trigger := spec.Trigger

		ttype, known := ParseTriggerType(trigger.Type)
		if !known {
			return TriggerBatch{}, ErrUnsupportedTriggerType
		}
		ttypes[i] = Some(ttype)

		if trigger.Sticky != nil {
			sticky[i] = Some(*trigger.Sticky)
		}
		if trigger.Log != nil {
			log[i] = Some(*trigger.Log)
		}
		if trigger.Invert != nil {
			invert[i] = Some(*trigger.Invert)
		}
		if trigger.Position != nil {
			position[i] = Some(MakePosition(trigger.Position[0], trigger.Position[1]))
		}
		if trigger.Agent != "" {
			tracked, found := game.TrackedByName(trigger.Agent)
			if !found {
				return TriggerBatch{}, fmt.Errorf("unknown agent %q in trigger", trigger.Agent)
			}
			agent[i] = Some(tracked)
		}
		if trigger.Tolerance != nil {
			tolerance[i] = Some(*trigger.Tolerance)
		}
		if trigger.Area != "" {
			named, found := game.areas[trigger.Area]
			if !found {
				return TriggerBatch{}, fmt.Errorf("unknown area %q in trigger", trigger.Area)
			}
			area[i] = Some(named)
		}
		if trigger.Boundary != "" {
			named, found := game.boundaries[trigger.Boundary]
			if !found {
				return TriggerBatch{}, fmt.Errorf("unknown boundary %q in trigger", trigger.Boundary)
			}
			boundary[i] = Some(named)
		}
		if trigger.Time != "" {
			at, err := time.Parse(time.RFC3339, trigger.Time)
			if err != nil {
				return TriggerBatch{}, fmt.Errorf("trigger time: %v", err)
			}
			timeArg[i] = Some(at)
		}
	}

	return TriggerBatch{
		Type:      PerIndex(ttypes...),
		Sticky:    PerIndex(sticky...),
		Log:       PerIndex(log...),
		Invert:    PerIndex(invert...),
		Position:  PerIndex(position...),
		Agent:     PerIndex(agent...),
		Tolerance: PerIndex(tolerance...),
		Area:      PerIndex(area...),
		Boundary:  PerIndex(boundary...),
		Time:      PerIndex(timeArg...),
	}, nil
}

func buildTask(spec TaskSpec) (Task, error) {
	switch spec.Kind {
	case "WAIT":
		return WaitTask{}, nil
	case "MOVE":
		if spec.Destination == nil {
			return nil, errors.New("move task needs a destination")
		}
		tolerance := 1.0
		if spec.Tolerance != nil {
			tolerance = *spec.Tolerance
		}
		return MoveTask{
			Destination: MakePosition(spec.Destination[0], spec.Destination[1]),
			Tolerance:   tolerance,
		}, nil
	case "FIRE":
		rounds := 1
		if spec.Rounds != nil {
			rounds = *spec.Rounds
		}
		return &FireTask{Rounds: rounds}, nil
	case "HIDE":
		return HideTask{}, nil
	case "SENSE":
		return SenseTask{}, nil
	case "COMMUNICATE_WORLDVIEW":
		return CommunicateWorldviewTask{}, nil
	case "DISABLE_COMMUNICATION":
		return DisableCommunicationTask{}, nil
	case "DEPLOY_COUNTERMEASURE":
		return DeployCountermeasureTask{}, nil
	}

	return nil, fmt.Errorf("unknown task kind %q", spec.Kind)
}
