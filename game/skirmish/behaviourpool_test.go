package skirmish

import (
	"reflect"
	"testing"
)

func TestBehaviourPoolUserOverridesDefault(t *testing.T) {
	pool := NewBehaviourPool(nil)

	custom := GroundMoveBehaviour{BaseSpeed: 0.3}
	pool.AddBehaviour(custom)
	pool.AddDefaultBehaviour(GroundMoveBehaviour{BaseSpeed: 0.015}, CategoryMove)

	moves := pool.ExposeBehaviour("move", CategoryMove)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move behaviour, got %d", len(moves))
	}

	if !reflect.DeepEqual(moves[0], custom) {
		t.Errorf("expected the user behaviour to win, got %+v", moves[0])
	}
}

func TestBehaviourPoolDefaultThenOverride(t *testing.T) {
	pool := NewBehaviourPool(nil)

	pool.AddDefaultBehaviour(GroundMoveBehaviour{BaseSpeed: 0.015}, CategoryMove)

	custom := GroundMoveBehaviour{BaseSpeed: 0.3}
	pool.AddBehaviour(custom)

	moves := pool.ExposeBehaviour("move", CategoryMove)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move behaviour, got %d", len(moves))
	}

	if !reflect.DeepEqual(moves[0], custom) {
		t.Errorf("expected the override to replace the default, got %+v", moves[0])
	}
}

func TestBehaviourPoolAlwaysAdderAccumulates(t *testing.T) {
	pool := NewBehaviourPool(AlwaysAdder{})

	b := SenseBehaviour{TimeBetweenSenses: 1}
	pool.AddBehaviour(b)
	pool.AddBehaviour(b)

	senses := pool.ExposeBehaviour("sense", CategorySense)
	if len(senses) != 2 {
		t.Fatalf("expected 2 sense behaviours, got %d", len(senses))
	}

	for i, got := range senses {
		if !reflect.DeepEqual(got, b) {
			t.Errorf("behaviour %d: expected %+v, got %+v", i, b, got)
		}
	}
}

func TestBehaviourPoolEmptyCategory(t *testing.T) {
	pool := NewBehaviourPool(nil)

	fires := pool.ExposeBehaviour("fire", CategoryFire)
	if len(fires) != 0 {
		t.Fatalf("expected no fire behaviours, got %d", len(fires))
	}
}

func TestBehaviourPoolCategoriesInsertionOrder(t *testing.T) {
	pool := NewBehaviourPool(nil)

	pool.AddBehaviour(FireBehaviour{})
	pool.AddBehaviour(WaitBehaviour{})
	pool.AddDefaultBehaviour(HideBehaviour{}, CategoryHide)

	expected := []BehaviourCategory{CategoryFire, CategoryWait, CategoryHide}
	if !reflect.DeepEqual(pool.Categories(), expected) {
		t.Errorf("expected %v, got %v", expected, pool.Categories())
	}
}
