package recording

import (
	"github.com/Morshead-Consulting/RET/common/types"
)

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) Record(UUID string, msg string) error {
	return nil
}

func (r EmptyRecorder) RecordMetadata(UUID string, scenario *types.ScenarioInfo) error {
	return nil
}

func (r EmptyRecorder) Close(UUID string) {}
func (r EmptyRecorder) Stop()             {}

func (r EmptyRecorder) GetDirectory() string {
	return ""
}
