package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Morshead-Consulting/RET/common/recording"
	"github.com/Morshead-Consulting/RET/common/types"
)

func TestRecordReplayRoundTrip(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "record.zip")

	recorder := recording.MakeSingleSimRecorder(archive)

	scenario := &types.ScenarioInfo{
		Name:      "round trip",
		StartTime: "2020-06-01T06:00:00Z",
		TimeStep:  "1m0s",
		EndTime:   "2020-06-01T07:00:00Z",
	}

	if err := recorder.RecordMetadata("sim-1", scenario); err != nil {
		t.Fatal(err)
	}

	frames := []string{
		`{"step_number": 1}`,
		`{"step_number": 2}`,
		`{"step_number": 3}`,
	}
	for _, frame := range frames {
		if err := recorder.Record("sim-1", frame); err != nil {
			t.Fatal(err)
		}
	}

	recorder.Close("sim-1")

	var gotMetadata string
	msgchan := Read(archive, false, "sim-1", func(body string, debug bool, UUID string) {
		gotMetadata = body
	})

	var metadata recording.RecordMetadata
	if err := json.Unmarshal([]byte(gotMetadata), &metadata); err != nil {
		t.Fatalf("metadata should be valid JSON: %v", err)
	}
	if metadata.Scenario == nil || metadata.Scenario.Name != "round trip" {
		t.Fatalf("metadata should carry the scenario, got %+v", metadata)
	}

	lines := make([]string, 0)
	for msg := range msgchan {
		if msg == nil {
			break
		}
		if msg.UUID != "sim-1" {
			t.Errorf("message should carry the replay UUID, got %q", msg.UUID)
		}
		lines = append(lines, msg.Line)
	}

	if len(lines) != len(frames) {
		t.Fatalf("expected %d frames back, got %d", len(frames), len(lines))
	}
	for i, line := range lines {
		if line != frames[i] {
			t.Errorf("frame %d: expected %q, got %q", i, frames[i], line)
		}
	}
}
