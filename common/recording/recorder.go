package recording

import (
	"os"

	"github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/common/utils"
)

type Recorder interface {
	RecordMetadata(UUID string, scenario *types.ScenarioInfo) error
	Record(UUID string, msg string) error
	Close(UUID string)
	Stop()
	GetDirectory() string
}

type RecordMetadata struct {
	Scenario *types.ScenarioInfo `json:"scenario"`
	Date     string              `json:"date"`
}

func createFileIfNotExists(path string) {
	var _, err = os.Stat(path)

	if os.IsNotExist(err) {
		var file, err = os.Create(path)
		utils.Check(err, "Could not create file")

		defer file.Close()
	}
}
