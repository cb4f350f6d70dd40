package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestOSFileSource_ReadFile(t *testing.T) {
	path := writeTempFile(t, "FOO=BAR\n# comment\nBAZ")

	content, err := NewOSFileSource().ReadFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "FOO=BAR\n# comment\nBAZ", content)
}

func TestOSFileSource_ReadFile_Empty(t *testing.T) {
	path := writeTempFile(t, "")

	content, err := NewOSFileSource().ReadFile(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestOSFileSource_ReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.env")

	content, err := NewOSFileSource().ReadFile(context.Background(), path)

	require.Error(t, err)
	assert.Empty(t, content)
	assert.ErrorIs(t, err, ErrFileRead)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func TestOSFileSource_ReadFile_Directory(t *testing.T) {
	_, err := NewOSFileSource().ReadFile(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestOSFileSource_ReadFile_CancelledContext(t *testing.T) {
	path := writeTempFile(t, "FOO=BAR")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	content, err := NewOSFileSource().ReadFile(ctx, path)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, content)
}
