package replay

import (
	"archive/zip"
	"bufio"
	"errors"
	"io"

	"github.com/Morshead-Consulting/RET/common/utils"
)

type rawRecordHandles struct {
	recordMetadata io.ReadCloser
	record         io.ReadCloser
	zip            *zip.ReadCloser
}

type ReplayMessage struct {
	Line string
	UUID string
}

type Replayer struct {
	debug            bool
	UUID             string
	filename         string
	streamingChannel chan *ReplayMessage
	rawRecordHandles rawRecordHandles
}

func NewReplayer(filename string, debug bool, UUID string) *Replayer {
	err, rawRecordHandles := unzip(filename)
	utils.Check(err, "Could not decode record archive")

	return &Replayer{
		streamingChannel: make(chan *ReplayMessage),
		debug:            debug,
		UUID:             UUID,
		filename:         filename,
		rawRecordHandles: *rawRecordHandles,
	}
}

// ReadMetadata streams the RecordMetadata entry of the archive.
func (r *Replayer) ReadMetadata() chan string {
	metadataChannel := make(chan string)

	go func() {
		reader := bufio.NewReader(r.rawRecordHandles.recordMetadata)
		metadata, err := io.ReadAll(reader)

		utils.Check(err, "Could not read record metadata")

		metadataChannel <- string(metadata)

		defer r.rawRecordHandles.recordMetadata.Close()
	}()

	return metadataChannel
}

// Read streams the recorded frames, one message per line; a nil message
// marks the end of the record.
func (r *Replayer) Read() chan *ReplayMessage {
	reader := bufio.NewReader(r.rawRecordHandles.record)

	go func() {
		for {
			line, isPrefix, readErr := reader.ReadLine()

			if len(line) == 0 && readErr != io.EOF {
				continue
			}

			if readErr == io.EOF {
				r.rawRecordHandles.zip.Close()
				r.rawRecordHandles.record.Close()
				r.streamingChannel <- nil
				return
			}

			if !isPrefix {
				r.streamingChannel <- &ReplayMessage{
					Line: string(line),
					UUID: r.UUID,
				}
			} else {
				buf := append([]byte(nil), line...)

				for isPrefix && readErr == nil {
					line, isPrefix, readErr = reader.ReadLine()
					buf = append(buf, line...)
				}

				r.streamingChannel <- &ReplayMessage{
					Line: string(buf),
					UUID: r.UUID,
				}
			}
		}
	}()

	return r.streamingChannel
}

// Read opens a record archive and streams its frames; the metadata entry is
// handed to onMetadata before the first frame.
func Read(filename string, debug bool, UUID string, onMetadata func(body string, debug bool, UUID string)) chan *ReplayMessage {
	replayer := NewReplayer(filename, debug, UUID)

	metadata := <-replayer.ReadMetadata()
	onMetadata(metadata, debug, UUID)

	return replayer.Read()
}

func unzip(filename string) (error, *rawRecordHandles) {
	rawRecordHandles := &rawRecordHandles{}

	reader, err := zip.OpenReader(filename)

	if err != nil {
		return errors.New("could not open record archive (" + err.Error() + ")"), nil
	}

	rawRecordHandles.zip = reader

	for _, file := range reader.File {
		fd, err := file.Open()

		if err != nil {
			return err, nil
		}

		if file.Name == "Record" {
			rawRecordHandles.record = fd
		} else if file.Name == "RecordMetadata" {
			rawRecordHandles.recordMetadata = fd
		}
	}

	if rawRecordHandles.record == nil || rawRecordHandles.recordMetadata == nil {
		return errors.New("record archive is missing Record or RecordMetadata"), nil
	}

	return nil, rawRecordHandles
}
