package skirmish

import (
	"reflect"
	"testing"
	"time"
)

type fakeTracked struct {
	id     string
	pos    Position
	killed bool
}

func (f *fakeTracked) TrackedId() string         { return f.id }
func (f *fakeTracked) TrackedPosition() Position { return f.pos }
func (f *fakeTracked) TrackedKilled() bool       { return f.killed }

type fakeWorld struct {
	perceived  []PerceivedAgent
	atPosition []PerceivedAgent
	firedNear  bool
	firedBy    map[string]bool
	fused      bool
}

func (f *fakeWorld) PerceivedBy(subject Tracked) []PerceivedAgent {
	return f.perceived
}

func (f *fakeWorld) PerceivedAtPosition(subject Tracked, pos Position, tolerance float64, state CasualtyState) []PerceivedAgent {
	out := make([]PerceivedAgent, 0)
	for _, p := range f.atPosition {
		if p.CasualtyState == state && p.Location.Dist(pos) <= tolerance {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeWorld) WeaponFiredNear(pos Position, tolerance float64) bool {
	return f.firedNear
}

func (f *fakeWorld) WeaponFiredBy(id string) bool {
	return f.firedBy[id]
}

func (f *fakeWorld) PerceptionFusedFor(id string) bool {
	return f.fused
}

var allTriggerTypes = []TriggerType{
	TriggerTypeImmediate,
	TriggerTypeImmediateSensorFusion,
	TriggerTypeKilledAgentsAtPosition,
	TriggerTypeAliveAgentsAtPosition,
	TriggerTypeAgentAtPosition,
	TriggerTypeAgentInArea,
	TriggerTypeAgentNotInArea,
	TriggerTypeAgentCrossedBoundary,
	TriggerTypeAgentMovedOutOfArea,
	TriggerTypeAgentKilled,
	TriggerTypeTime,
	TriggerTypeAgentFiredWeapon,
	TriggerTypeWeaponFiredNearAgent,
	TriggerTypeWeaponFiredNearLocation,
}

func fullBatch(ttypes Param[TriggerType], sticky Param[bool], log Param[bool], invert Param[bool]) TriggerBatch {
	watched := &fakeTracked{id: "watched", pos: MakePosition(0, 0)}

	return TriggerBatch{
		Type:      ttypes,
		Sticky:    sticky,
		Log:       log,
		Invert:    invert,
		Position:  Scalar(MakePosition(5, 5)),
		Agent:     Scalar[Tracked](watched),
		Tolerance: Scalar(2.0),
		Area:      Scalar[Area](NewBoxFeature(MakePosition(0, 0), MakePosition(10, 10), "ao")),
		Boundary:  Scalar[Boundary](NewLineFeature(MakePosition(0, 5), MakePosition(10, 5), "phase line")),
		Time:      Scalar(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func TestCreateTriggersFourteenKinds(t *testing.T) {
	stickyArg := []bool{true, true, false, true, true, true, true, true, true, true, true, true, true, true}

	triggers, err := CreateTriggers(14, fullBatch(
		Values(allTriggerTypes...),
		Values(stickyArg...),
		Scalar(false),
		Param[bool]{},
	))
	if err != nil {
		t.Fatal(err)
	}

	if len(triggers) != 14 {
		t.Fatalf("expected 14 triggers, got %d", len(triggers))
	}

	expectedKinds := []reflect.Type{
		reflect.TypeOf(&ImmediateTrigger{}),
		reflect.TypeOf(&ImmediateSensorFusionTrigger{}),
		reflect.TypeOf(&KilledAgentsAtPositionTrigger{}),
		reflect.TypeOf(&AliveAgentsAtPositionTrigger{}),
		reflect.TypeOf(&PositionTrigger{}),
		reflect.TypeOf(&InAreaTrigger{}),
		reflect.TypeOf(&NotInAreaTrigger{}),
		reflect.TypeOf(&CrossedBoundaryTrigger{}),
		reflect.TypeOf(&MovedOutOfAreaTrigger{}),
		reflect.TypeOf(&AgentKilledTrigger{}),
		reflect.TypeOf(&TimeTrigger{}),
		reflect.TypeOf(&AgentFiredWeaponTrigger{}),
		reflect.TypeOf(&WeaponFiredNearAgentTrigger{}),
		reflect.TypeOf(&WeaponFiredNearLocationTrigger{}),
	}

	for i, trigger := range triggers {
		if reflect.TypeOf(trigger) != expectedKinds[i] {
			t.Errorf("trigger %d: expected %v, got %v", i, expectedKinds[i], reflect.TypeOf(trigger))
		}
	}

	if !triggers[6].Sticky() {
		t.Error("trigger 6 should be sticky")
	}
	if triggers[2].Sticky() {
		t.Error("trigger 2 should not be sticky")
	}
	if triggers[1].Logged() {
		t.Error("trigger 1 should not log")
	}
	if triggers[5].Logged() {
		t.Error("trigger 5 should not log")
	}
	if triggers[3].Inverted() {
		t.Error("trigger 3 should not be inverted")
	}
}

func TestCreateTriggersBroadcastEquivalence(t *testing.T) {
	scalar, err := CreateTriggers(14, fullBatch(
		Values(allTriggerTypes...),
		Scalar(true),
		Scalar(false),
		Param[bool]{},
	))
	if err != nil {
		t.Fatal(err)
	}

	sticky := make([]bool, 14)
	for i := range sticky {
		sticky[i] = true
	}

	list, err := CreateTriggers(14, fullBatch(
		Values(allTriggerTypes...),
		Values(sticky...),
		Scalar(false),
		Param[bool]{},
	))
	if err != nil {
		t.Fatal(err)
	}

	for i := range scalar {
		if !reflect.DeepEqual(scalar[i], list[i]) {
			t.Errorf("trigger %d differs between scalar and list form", i)
		}
	}
}

func TestCreateTriggersOptionalDefaults(t *testing.T) {
	triggers, err := CreateTriggers(1, TriggerBatch{
		Type: Scalar(TriggerTypeImmediate),
	})
	if err != nil {
		t.Fatal(err)
	}

	if triggers[0].Sticky() {
		t.Error("sticky should default to false")
	}
	if !triggers[0].Logged() {
		t.Error("log should default to true")
	}
	if triggers[0].Inverted() {
		t.Error("invert should default to false")
	}
}

func TestCreateTriggersMissingArgument(t *testing.T) {
	_, err := CreateTriggers(1, TriggerBatch{
		Type: Scalar(TriggerTypeTime),
	})

	if err != ErrMissingArgument {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}

	if err.Error() != "Argument required for selected trigger not given." {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestCreateTriggersPartiallyNullRequiredArgumentPasses(t *testing.T) {
	// The required-argument check is whole-batch: one supplied value
	// anywhere in the list satisfies it, even for slots that leave it
	// null but do not need it.
	triggers, err := CreateTriggers(2, TriggerBatch{
		Type: Values(TriggerTypeTime, TriggerTypeImmediate),
		Time: PerIndex(
			Some(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			None[time.Time](),
		),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(triggers) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(triggers))
	}
}

func TestCreateTriggersUnsupportedType(t *testing.T) {
	_, err := CreateTriggers(1, TriggerBatch{
		Type: Scalar(TriggerTypeCompoundAnd),
	})

	if err != ErrUnsupportedTriggerType {
		t.Fatalf("expected ErrUnsupportedTriggerType, got %v", err)
	}

	if err.Error() != "Selected Trigger Type does not exist." {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestRequireArgument(t *testing.T) {
	allNull := []Opt[int]{None[int](), None[int](), None[int]()}
	if requireArgument(allNull) != ErrMissingArgument {
		t.Error("all-null list should fail")
	}

	oneSet := []Opt[int]{None[int](), Some(3), None[int]()}
	if requireArgument(oneSet) != nil {
		t.Error("a list with any value should pass")
	}
}

func TestNormalizeOptionalArgument(t *testing.T) {
	values := []Opt[bool]{Some(true), None[bool](), Some(false)}
	resolved := normalizeOptionalArgument(values, true)

	expected := []bool{true, true, false}
	if !reflect.DeepEqual(resolved, expected) {
		t.Errorf("expected %v, got %v", expected, resolved)
	}
}

func TestParamNormalizeLengthMismatch(t *testing.T) {
	_, err := CreateTriggers(3, TriggerBatch{
		Type:   Scalar(TriggerTypeImmediate),
		Sticky: Values(true, false),
	})

	if err != ErrMissingArgument {
		t.Fatalf("expected ErrMissingArgument on length mismatch, got %v", err)
	}
}
