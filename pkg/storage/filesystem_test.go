package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalFileWriteAtomicAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	file := NewLocalFile(path)
	require.False(t, file.Exists())

	require.NoError(t, file.WriteAtomic([]byte(`{"name":"first"}`)))
	require.True(t, file.Exists())
	require.NoError(t, file.WriteAtomic([]byte(`{"name":"second"}`)))

	data, err := file.Read()
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"second"}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLocalFileReadMissing(t *testing.T) {
	file := NewLocalFile(filepath.Join(t.TempDir(), "missing.json"))
	_, err := file.Read()
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}
