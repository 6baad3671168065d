package skirmish

import (
	"reflect"
	"testing"
)

func TestArmourDefaultBehaviours(t *testing.T) {
	pool := NewBehaviourPool(nil)
	seedDefaultBehaviours(pool, AgentClassArmour, agentSpecsByClass[AgentClassArmour])

	expected := map[BehaviourCategory]int{
		CategoryWait:  1,
		CategoryHide:  1,
		CategoryMove:  1,
		CategorySense: 1,
		CategoryFire:  1,
	}

	categories := pool.Categories()
	if len(categories) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(categories))
	}

	for category, count := range expected {
		if got := len(pool.ExposeBehaviour("any", category)); got != count {
			t.Errorf("category %v: expected %d behaviours, got %d", category, count, got)
		}
	}
}

func TestAirDefenceAlsoJams(t *testing.T) {
	pool := NewBehaviourPool(nil)
	seedDefaultBehaviours(pool, AgentClassAirDefence, agentSpecsByClass[AgentClassAirDefence])

	if len(pool.Categories()) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(pool.Categories()))
	}

	jams := pool.ExposeBehaviour("communicate", CategoryDisableCommunication)
	if len(jams) != 1 {
		t.Fatalf("air defence should carry a disable-communication behaviour")
	}
}

func TestArmourGroundMoveDefaults(t *testing.T) {
	pool := NewBehaviourPool(nil)
	seedDefaultBehaviours(pool, AgentClassArmour, agentSpecsByClass[AgentClassArmour])

	moves := pool.ExposeBehaviour("move", CategoryMove)
	if len(moves) != 1 {
		t.Fatalf("expected a single move behaviour")
	}

	move, ok := moves[0].(GroundMoveBehaviour)
	if !ok {
		t.Fatalf("expected GroundMoveBehaviour, got %T", moves[0])
	}

	if move.BaseSpeed != 0.015 {
		t.Errorf("expected base speed 0.015, got %v", move.BaseSpeed)
	}

	if !reflect.DeepEqual(move.GradientSpeedModifiers, groundMoveGradientModifiers()) {
		t.Errorf("unexpected gradient modifiers: %+v", move.GradientSpeedModifiers)
	}
}

func TestGroundMoveSpeedOnGradient(t *testing.T) {
	move := GroundMoveBehaviour{
		BaseSpeed:              1,
		GradientSpeedModifiers: groundMoveGradientModifiers(),
	}

	if got := move.SpeedOn(0); got != 1 {
		t.Errorf("flat ground: expected 1, got %v", got)
	}
	if got := move.SpeedOn(2); got != 0.8 {
		t.Errorf("uphill: expected 0.8, got %v", got)
	}
	if got := move.SpeedOn(-2); got != 0.8 {
		t.Errorf("downhill: expected 0.8, got %v", got)
	}
	if got := move.SpeedOn(1.1); got != 0.8 {
		t.Errorf("boundary gradient belongs to the steep band, got %v", got)
	}
}

func TestUserBehaviourSurvivesSeeding(t *testing.T) {
	pool := NewBehaviourPool(nil)

	custom := GroundMoveBehaviour{BaseSpeed: 0.5}
	pool.AddBehaviour(custom)

	seedDefaultBehaviours(pool, AgentClassArmour, agentSpecsByClass[AgentClassArmour])

	moves := pool.ExposeBehaviour("move", CategoryMove)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move behaviour, got %d", len(moves))
	}

	if !reflect.DeepEqual(moves[0], custom) {
		t.Errorf("seeding must not displace the user behaviour")
	}
}
