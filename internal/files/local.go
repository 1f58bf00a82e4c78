package files

import (
	"os"

	"github.com/pkg/errors"
)

// LocalFiles reads source files straight from the local disk. Relative paths
// are resolved against the working directory.
type LocalFiles struct{}

func NewLocalFiles() LocalFiles {
	return LocalFiles{}
}

func (l LocalFiles) GetFile(path string) ([]byte, error) {
	stats, err := os.Stat(path)

	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "cannot locate file")
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to stat file")
	}

	if stats.IsDir() {
		return nil, errors.New("path is a directory")
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, errors.Wrap(err, "failed to read the local file")
	}

	return data, nil
}
