package utils

import (
	"os"
	"path/filepath"
)

// Set at build time with -ldflags "-X github.com/Morshead-Consulting/RET/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}

func GetExecutableDir() string {
	ex, err := os.Executable()
	Check(err, "Could not determine executable path")

	return filepath.Dir(ex)
}
