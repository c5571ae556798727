package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPositions_WhitespaceSeparated(t *testing.T) {
	// GIVEN tokens split across spaces, tabs and newlines
	input := "98 183\t37\n122  14\n"

	positions, err := ReadPositions(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []int{98, 183, 37, 122, 14}, positions)
}

func TestReadPositions_NegativeValuesPassThrough(t *testing.T) {
	// Range screening happens later; the reader accepts any integer.
	positions, err := ReadPositions(strings.NewReader("-5 70000"))

	require.NoError(t, err)
	assert.Equal(t, []int{-5, 70000}, positions)
}

func TestReadPositions_MalformedToken(t *testing.T) {
	_, err := ReadPositions(strings.NewReader("10 20 abc 30"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token 3")
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestReadPositions_EmptyInput(t *testing.T) {
	positions, err := ReadPositions(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestReadPositionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3"), 0o644))

	positions, err := ReadPositionsFile(path)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, positions)
}

func TestReadPositionsFile_Missing(t *testing.T) {
	_, err := ReadPositionsFile(filepath.Join(t.TempDir(), "absent.txt"))

	assert.Error(t, err)
}

func TestReadPositionsFile_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

	_, err := ReadPositionsFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt")
}
