package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStorage(fs)

	size, err := store.Save("abc_report.pdf", strings.NewReader("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)

	file, err := store.Open("abc_report.pdf")
	require.NoError(t, err)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "%PDF-1.4 test", string(content))

	require.NoError(t, store.Remove("abc_report.pdf"))
	exists, err := afero.Exists(fs, "abc_report.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// removing twice is fine
	assert.NoError(t, store.Remove("abc_report.pdf"))
}

func TestLocalStorage_SaveDoesNotOverwrite(t *testing.T) {
	store := NewStorage(afero.NewMemMapFs())

	_, err := store.Save("same.png", strings.NewReader("one"))
	require.NoError(t, err)

	_, err = store.Save("same.png", strings.NewReader("two"))
	assert.Error(t, err)
}

func TestLocalStorage_RejectsPaths(t *testing.T) {
	store := NewStorage(afero.NewMemMapFs())

	for _, name := range []string{"", "..", "../escape.pdf", "dir/file.pdf", `dir\file.pdf`} {
		_, err := store.Save(name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)

		_, err = store.Open(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
