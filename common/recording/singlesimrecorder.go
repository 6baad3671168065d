package recording

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/common/utils"
)

// SingleSimRecorder buffers one simulation run in memory and writes a single
// record archive on Close.
type SingleSimRecorder struct {
	buffer         strings.Builder
	filename       string
	recordMetadata *RecordMetadata
}

func MakeSingleSimRecorder(filename string) *SingleSimRecorder {
	return &SingleSimRecorder{
		filename:       filename,
		recordMetadata: nil,
	}
}

func (r *SingleSimRecorder) Stop() {}

func (r *SingleSimRecorder) Close(UUID string) {
	if r.recordMetadata == nil {
		panic("Missing RecordMetadata")
	}

	metadata, err := json.Marshal(*r.recordMetadata)
	utils.Check(err, "Could not serialize RecordMetadata")

	files := []ArchiveFile{
		{Name: "RecordMetadata", Body: strings.NewReader(string(metadata))},
		{Name: "Record", Body: strings.NewReader(r.buffer.String())},
	}

	err = MakeArchive(r.filename, files)
	utils.CheckWithFunc(err, func() string {
		return "could not create record archive: " + err.Error()
	})

	utils.Debug("SingleSimRecorder", "wrote record archive "+r.filename)
}

func (r *SingleSimRecorder) RecordMetadata(UUID string, scenario *types.ScenarioInfo) error {
	r.recordMetadata = &RecordMetadata{
		Scenario: scenario,
		Date:     time.Now().Format(time.RFC3339),
	}

	return nil
}

func (r *SingleSimRecorder) Record(UUID string, msg string) error {
	r.buffer.WriteString(msg + "\n")

	return nil
}

func (r *SingleSimRecorder) GetDirectory() string {
	return ""
}
