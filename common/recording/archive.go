package recording

import (
	"archive/zip"
	"io"
	"os"
)

type ArchiveFile struct {
	Name string
	Body io.Reader
}

// MakeArchive zips the given files into filename. Record archives hold two
// entries: "RecordMetadata" and "Record".
func MakeArchive(filename string, files []ArchiveFile) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}

	defer out.Close()

	writer := zip.NewWriter(out)

	for _, file := range files {
		fd, err := writer.Create(file.Name)
		if err != nil {
			return err
		}

		if _, err := io.Copy(fd, file.Body); err != nil {
			return err
		}
	}

	return writer.Close()
}
