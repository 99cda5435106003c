package pipeline

import (
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/matzehuels/hpudiagram/pkg/errors"
)

// writeFileAtomic replaces path with data through a temporary file and a
// rename, so readers never observe a partial image. The temporary file never
// outlives the call.
func writeFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
