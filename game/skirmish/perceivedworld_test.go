package skirmish

import (
	"testing"
	"time"
)

func TestPerceivedWorldRefreshTracksChange(t *testing.T) {
	world := NewPerceivedWorld()

	first := perceivedWith("t1", AffiliationHostile, ConfidenceDetect)
	world.Refresh([]PerceivedAgent{first})

	if !world.Fused() {
		t.Error("a first observation changes the worldview")
	}

	world.Refresh([]PerceivedAgent{first})
	if world.Fused() {
		t.Error("an identical observation does not change the worldview")
	}

	upgraded := first
	upgraded.Confidence = ConfidenceIdentify
	world.Refresh([]PerceivedAgent{upgraded})
	if !world.Fused() {
		t.Error("a higher-confidence observation changes the worldview")
	}

	snapshot := world.Snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("one agent observed twice should stay one entry, got %d", len(snapshot))
	}
	if snapshot[0].Confidence != ConfidenceIdentify {
		t.Error("snapshot should hold the freshest observation")
	}
}

func TestPerceivedWorldSnapshotIsACopy(t *testing.T) {
	world := NewPerceivedWorld()
	world.Refresh([]PerceivedAgent{perceivedWith("t1", AffiliationHostile, ConfidenceDetect)})

	snapshot := world.Snapshot()
	snapshot[0].UniqueId = "mangled"

	if world.Snapshot()[0].UniqueId != "t1" {
		t.Error("mutating a snapshot must not touch the worldview")
	}
}

func TestPerceivedWorldAtPosition(t *testing.T) {
	here := MakePosition(10, 10)
	now := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	world := NewPerceivedWorld()
	world.Refresh([]PerceivedAgent{
		{UniqueId: "near-dead", Location: here, SenseTime: now, CasualtyState: CasualtyStateKilled},
		{UniqueId: "near-alive", Location: MakePosition(10.5, 10), SenseTime: now, CasualtyState: CasualtyStateAlive},
		{UniqueId: "far-dead", Location: MakePosition(100, 100), SenseTime: now, CasualtyState: CasualtyStateKilled},
	})

	dead := world.AtPosition(here, 1, CasualtyStateKilled)
	if len(dead) != 1 || dead[0].UniqueId != "near-dead" {
		t.Errorf("expected the nearby casualty only, got %v", dead)
	}

	alive := world.AtPosition(here, 1, CasualtyStateAlive)
	if len(alive) != 1 || alive[0].UniqueId != "near-alive" {
		t.Errorf("expected the nearby living agent only, got %v", alive)
	}
}
