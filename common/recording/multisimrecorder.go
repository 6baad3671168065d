package recording

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Morshead-Consulting/RET/common/types"
	"github.com/Morshead-Consulting/RET/common/utils"
)

// MultiSimRecorder records any number of concurrent simulation runs into a
// directory, one record archive per run UUID.
type MultiSimRecorder struct {
	directory                 string
	recordFileHandles         map[string]*os.File
	recordMetadataFileHandles map[string]*os.File
}

func MakeMultiSimRecorder(directory string) *MultiSimRecorder {
	return &MultiSimRecorder{
		recordFileHandles:         make(map[string]*os.File),
		recordMetadataFileHandles: make(map[string]*os.File),
		directory:                 directory,
	}
}

func (r *MultiSimRecorder) Record(UUID string, msg string) error {
	handle, ok := r.recordFileHandles[UUID]

	if !ok {
		filename := r.directory + "/" + UUID + "-json"
		createFileIfNotExists(filename)

		var err error
		handle, err = os.OpenFile(filename, os.O_RDWR, 0600)
		utils.Check(err, "Could not open record file")

		r.recordFileHandles[UUID] = handle
	}

	_, err := handle.WriteString(msg + "\n")
	utils.Check(err, "Could not write record entry")

	err = handle.Sync()
	utils.Check(err, "Could not flush record to disk")

	return err
}

func (r *MultiSimRecorder) RecordMetadata(UUID string, scenario *types.ScenarioInfo) error {
	_, ok := r.recordMetadataFileHandles[UUID]

	if !ok {
		filename := r.directory + "/" + UUID + "-json.meta"
		createFileIfNotExists(filename)

		file, err := os.OpenFile(filename, os.O_RDWR, 0644)
		utils.Check(err, "Could not open RecordMetadata file")

		metadata := RecordMetadata{
			Scenario: scenario,
			Date:     time.Now().Format(time.RFC3339),
		}

		data, err := json.Marshal(metadata)
		utils.Check(err, "Could not marshal RecordMetadata")

		_, err = file.Write(data)
		utils.Check(err, "Could not write RecordMetadata file")

		err = file.Sync()
		utils.Check(err, "Could not flush RecordMetadata to disk")

		utils.Debug("MultiSimRecorder", "wrote record metadata for sim "+UUID)

		r.recordMetadataFileHandles[UUID] = file
	}

	return nil
}

func (r *MultiSimRecorder) GetDirectory() string {
	return r.directory
}

func (r *MultiSimRecorder) Close(UUID string) {
	recordHandle, okRecord := r.recordFileHandles[UUID]
	metadataHandle, okRecordMetadata := r.recordMetadataFileHandles[UUID]

	if okRecord && okRecordMetadata {

		// Rewind both handles; they were left at EOF by the writes above
		recordHandle.Seek(0, 0)
		metadataHandle.Seek(0, 0)

		files := []ArchiveFile{
			{Name: "RecordMetadata", Body: metadataHandle},
			{Name: "Record", Body: recordHandle},
		}

		err := MakeArchive(r.directory+"/"+UUID, files)
		utils.CheckWithFunc(err, func() string {
			return "could not create record archive: " + err.Error()
		})

		recordHandle.Close()
		metadataHandle.Close()

		delete(r.recordFileHandles, UUID)
		delete(r.recordMetadataFileHandles, UUID)

		os.Remove(r.directory + "/" + UUID + "-json")
		os.Remove(r.directory + "/" + UUID + "-json.meta")

		utils.Debug("MultiSimRecorder", "stopped recording for sim "+UUID)
	} else {
		utils.Debug("MultiSimRecorder", "no running recording for sim "+UUID)
	}
}

func (r *MultiSimRecorder) Stop() {
	for _, handle := range r.recordFileHandles {
		handle.Close()
	}

	for _, handle := range r.recordMetadataFileHandles {
		handle.Close()
	}
}
