package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/karlseguin/slist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReplayDemo(t *testing.T) {
	results, err := Replay(demoScript(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 11)

	lists := make([]string, len(results))
	for i, r := range results {
		lists[i] = r.List
	}
	assert.Equal(t, "3: 1 2 3 ", lists[2])
	assert.Equal(t, "4: 1 9 2 3 ", lists[3])
	assert.Equal(t, "3: 9 2 3 ", lists[4])
	assert.Equal(t, "found at 1", results[5].Output)
	assert.Equal(t, "not found", results[6].Output)
	assert.Equal(t, "3: 2 3 9 ", lists[7])

	assert.ErrorIs(t, results[8].Err, slist.ErrOutOfRange)
	assert.Equal(t, "popped=2", results[9].Output)
	assert.Equal(t, "front=3", results[10].Output)
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
values: [5, 1, 4]
steps:
  - op: sort
  - op: insert
    pos: 3
    value: 7
  - op: set
    pos: 0
    value: 2
  - op: clear
  - op: pop_front
  - op: explode
`))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 4}, script.Values.Values())

	results, err := Replay(script, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Equal(t, "3: 1 4 5 ", results[0].List)
	assert.Equal(t, "4: 1 4 5 7 ", results[1].List)
	assert.Equal(t, "4: 2 4 5 7 ", results[2].List)
	assert.Equal(t, "0: ", results[3].List)
	assert.ErrorIs(t, results[4].Err, slist.ErrEmpty)
	assert.EqualError(t, results[5].Err, `unknown op "explode"`)
}

func TestParseScriptInvalid(t *testing.T) {
	_, err := ParseScript([]byte("values: [a, b]"))
	require.Error(t, err)
}

func TestReplayDoesNotMutateScriptValues(t *testing.T) {
	script, err := ParseScript([]byte("values: [2, 1]\nsteps: [{op: sort}]"))
	require.NoError(t, err)
	_, err = Replay(script, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, script.Values.Values())
}

func TestRunCommandPlainOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: push_front\n    value: 4\n  - op: erase\n    pos: 3\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--no-color", path})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "push_front(4) -> 1: 4 \nerase(3) error: slist: erase: position 3 out of range [0, 1)\n", out.String())
}
