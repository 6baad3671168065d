package skirmish

import (
	"testing"
	"time"
)

func testContext(subject Tracked, world WorldView, at time.Time) *TriggerContext {
	return &TriggerContext{
		Time:    at,
		Subject: subject,
		World:   world,
	}
}

func TestNonStickyTriggerFiresOnce(t *testing.T) {
	trigger := NewImmediateTrigger(false, false, false)
	ctx := testContext(&fakeTracked{}, &fakeWorld{}, time.Time{})

	if !trigger.IsActive(ctx) {
		t.Fatal("first evaluation should be active")
	}
	if trigger.IsActive(ctx) {
		t.Fatal("non-sticky trigger should be consumed after firing")
	}
}

func TestStickyTriggerKeepsFiring(t *testing.T) {
	trigger := NewImmediateTrigger(true, false, false)
	ctx := testContext(&fakeTracked{}, &fakeWorld{}, time.Time{})

	for i := 0; i < 3; i++ {
		if !trigger.IsActive(ctx) {
			t.Fatalf("sticky trigger should stay active (evaluation %d)", i)
		}
	}
}

func TestInvertedTrigger(t *testing.T) {
	watched := &fakeTracked{killed: false}

	trigger := NewAgentKilledTrigger(watched, true, false, true)
	ctx := testContext(watched, &fakeWorld{}, time.Time{})

	if !trigger.IsActive(ctx) {
		t.Fatal("inverted killed trigger should be active while the agent lives")
	}

	watched.killed = true
	if trigger.IsActive(ctx) {
		t.Fatal("inverted killed trigger should go inactive once the agent dies")
	}
}

func TestTimeTrigger(t *testing.T) {
	at := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	trigger := NewTimeTrigger(at, false, false, false)

	before := testContext(&fakeTracked{}, &fakeWorld{}, at.Add(-time.Second))
	if trigger.IsActive(before) {
		t.Fatal("should not fire before the set time")
	}

	exactly := testContext(&fakeTracked{}, &fakeWorld{}, at)
	if !trigger.IsActive(exactly) {
		t.Fatal("should fire at the set time")
	}
}

func TestPositionTriggerTolerance(t *testing.T) {
	watched := &fakeTracked{pos: MakePosition(0, 0)}
	trigger := NewPositionTrigger(watched, MakePosition(3, 4), 5, true, false, false)
	ctx := testContext(watched, &fakeWorld{}, time.Time{})

	if !trigger.IsActive(ctx) {
		t.Fatal("distance 5 within tolerance 5 should fire")
	}

	watched.pos = MakePosition(-1, 0)
	if trigger.IsActive(ctx) {
		t.Fatal("outside tolerance should not fire")
	}
}

func TestCrossedBoundaryTriggerNeedsMovement(t *testing.T) {
	boundary := NewLineFeature(MakePosition(0, 5), MakePosition(10, 5), "phase line")
	watched := &fakeTracked{pos: MakePosition(5, 0)}

	trigger := NewCrossedBoundaryTrigger(watched, boundary, true, false, false)
	ctx := testContext(watched, &fakeWorld{}, time.Time{})

	// First evaluation records the position and cannot have crossed yet.
	if trigger.IsActive(ctx) {
		t.Fatal("no crossing on first evaluation")
	}

	watched.pos = MakePosition(5, 10)
	if !trigger.IsActive(ctx) {
		t.Fatal("moving over the line should fire")
	}

	watched.pos = MakePosition(6, 10)
	if trigger.IsActive(ctx) {
		t.Fatal("moving on the far side should not fire again")
	}
}

func TestMovedOutOfAreaTrigger(t *testing.T) {
	area := NewBoxFeature(MakePosition(0, 0), MakePosition(10, 10), "ao")
	watched := &fakeTracked{pos: MakePosition(20, 20)}

	trigger := NewMovedOutOfAreaTrigger(watched, area, true, false, false)
	ctx := testContext(watched, &fakeWorld{}, time.Time{})

	// Starting outside is not "moved out".
	if trigger.IsActive(ctx) {
		t.Fatal("never having been inside should not fire")
	}

	watched.pos = MakePosition(5, 5)
	if trigger.IsActive(ctx) {
		t.Fatal("being inside should not fire")
	}

	watched.pos = MakePosition(20, 20)
	if !trigger.IsActive(ctx) {
		t.Fatal("leaving after having been inside should fire")
	}
}

func TestAreaTriggers(t *testing.T) {
	area := NewBoxFeature(MakePosition(0, 0), MakePosition(10, 10), "ao")
	inside := &fakeTracked{pos: MakePosition(5, 5)}
	outside := &fakeTracked{pos: MakePosition(15, 5)}
	ctx := testContext(inside, &fakeWorld{}, time.Time{})

	if !NewInAreaTrigger(inside, area, true, false, false).IsActive(ctx) {
		t.Error("agent inside should activate in-area")
	}
	if NewInAreaTrigger(outside, area, true, false, false).IsActive(ctx) {
		t.Error("agent outside should not activate in-area")
	}
	if !NewNotInAreaTrigger(outside, area, true, false, false).IsActive(ctx) {
		t.Error("agent outside should activate not-in-area")
	}
}

func TestWeaponFiredTriggers(t *testing.T) {
	watched := &fakeTracked{id: "shooter", pos: MakePosition(0, 0)}
	world := &fakeWorld{
		firedNear: true,
		firedBy:   map[string]bool{"shooter": true},
	}
	ctx := testContext(watched, world, time.Time{})

	if !NewAgentFiredWeaponTrigger(watched, true, false, false).IsActive(ctx) {
		t.Error("agent-fired trigger should fire")
	}
	if !NewWeaponFiredNearAgentTrigger(watched, 10, true, false, false).IsActive(ctx) {
		t.Error("fired-near-agent trigger should fire")
	}
	if !NewWeaponFiredNearLocationTrigger(MakePosition(1, 1), 10, true, false, false).IsActive(ctx) {
		t.Error("fired-near-location trigger should fire")
	}

	quiet := testContext(watched, &fakeWorld{}, time.Time{})
	if NewAgentFiredWeaponTrigger(watched, true, false, false).IsActive(quiet) {
		t.Error("agent-fired trigger should not fire in a quiet world")
	}
}

func TestAgentsAtPositionTriggers(t *testing.T) {
	here := MakePosition(5, 5)

	world := &fakeWorld{
		atPosition: []PerceivedAgent{
			{UniqueId: "dead", Location: here, CasualtyState: CasualtyStateKilled},
		},
	}
	ctx := testContext(&fakeTracked{}, world, time.Time{})

	if !NewKilledAgentsAtPositionTrigger(here, true, false, false).IsActive(ctx) {
		t.Error("killed-at-position should fire on a perceived casualty")
	}
	if NewAliveAgentsAtPositionTrigger(here, true, false, false).IsActive(ctx) {
		t.Error("alive-at-position should not fire on a casualty")
	}
}

func TestCompoundAndTrigger(t *testing.T) {
	ctx := testContext(&fakeTracked{}, &fakeWorld{fused: true}, time.Time{})

	both := NewCompoundAndTrigger([]Trigger{
		NewImmediateTrigger(true, false, false),
		NewImmediateSensorFusionTrigger(true, false, false),
	}, true, false, false)

	if !both.IsActive(ctx) {
		t.Fatal("all members active should fire")
	}

	unfused := testContext(&fakeTracked{}, &fakeWorld{}, time.Time{})
	if both.IsActive(unfused) {
		t.Fatal("one inactive member should block the compound")
	}
}
