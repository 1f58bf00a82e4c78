package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFilesGetFile(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "source.js")
	require.NoError(t, os.WriteFile(source, []byte("var x=1;   var y=2;"), 0o600))

	empty := filepath.Join(dir, "empty.js")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{{
		name: "should return the full contents of the file",
		path: source,
		want: "var x=1;   var y=2;",
	}, {
		name: "should return no contents for an empty file",
		path: empty,
		want: "",
	}, {
		name:    "should fail if the file does not exist",
		path:    filepath.Join(dir, "missing.js"),
		wantErr: "cannot locate file",
	}, {
		name:    "should fail if the path is a directory",
		path:    dir,
		wantErr: "is a directory",
	}}

	local := NewLocalFiles()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := local.GetFile(tt.path)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLocalFilesMissingFileIsNotExist(t *testing.T) {
	_, err := NewLocalFiles().GetFile(filepath.Join(t.TempDir(), "missing.js"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalFilesErrorsNameThePathOnce(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{{
		name: "should name a missing path once",
		path: filepath.Join(dir, "missing.js"),
	}, {
		name: "should not name a directory path",
		path: dir,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalFiles().GetFile(tt.path)

			assert.Error(t, err)
			assert.LessOrEqual(t, strings.Count(err.Error(), tt.path), 1, err.Error())
		})
	}
}
