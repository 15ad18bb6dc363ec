package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Testdata(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			s, err := Load(file)
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.Equal(t, s.Name, result.Name)
			assert.Len(t, result.Steps, len(s.Steps))
		})
	}
}

func TestRun_OrderedScenario(t *testing.T) {
	s, err := Load("testdata/ordered_dedup.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "3", "5"}, result.Items)
	assert.Equal(t, 6, result.Capacity)
	assert.False(t, result.Steps[3].OK)
	assert.True(t, result.Steps[4].Found)
	assert.Equal(t, 1, result.Steps[4].Index)
	assert.Equal(t, 3, result.Steps[4].Size)
}

func TestRun_ChainScenario(t *testing.T) {
	s, err := Load("testdata/chain_remove_at.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, result.Items)
	assert.Equal(t, 0, result.Capacity)
}

func TestRun_FailedStepExpectation(t *testing.T) {
	s, err := Parse([]byte(`
name: refused
store: unordered
elements: int
duplicates: false
steps:
  - {op: append, item: "1"}
  - {op: append, item: "1"}
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.ErrorIs(t, err, ErrExpectation)
	assert.Contains(t, err.Error(), "steps[1]")
	assert.Equal(t, []string{"1"}, result.Items)
}

func TestRun_FailedFinalExpectation(t *testing.T) {
	s, err := Parse([]byte(`
name: wrong-size
store: ordered
elements: string
order: descending
steps:
  - {op: insert, item: a}
  - {op: insert, item: c}
  - {op: insert, item: b}
expect:
  items: [c, b, a]
  size: 2
`))
	require.NoError(t, err)

	result, err := Run(s)
	require.ErrorIs(t, err, ErrExpectation)
	assert.Equal(t, []string{"c", "b", "a"}, result.Items)
}

func TestRun_InvalidItem(t *testing.T) {
	s, err := Parse([]byte(`
name: not-a-number
store: chain
elements: int
steps:
  - {op: prepend, item: "one"}
`))
	require.NoError(t, err)

	_, err = Run(s)
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		yaml     string
		expected error
	}{
		{
			name:     "missing name",
			yaml:     "store: chain\nelements: int\nsteps: [{op: clear}]\n",
			expected: ErrInvalidScript,
		},
		{
			name:     "unknown store",
			yaml:     "name: x\nstore: hash\nelements: int\nsteps: [{op: clear}]\n",
			expected: ErrUnknownStore,
		},
		{
			name:     "unknown elements",
			yaml:     "name: x\nstore: chain\nelements: float\nsteps: [{op: clear}]\n",
			expected: ErrUnknownElements,
		},
		{
			name:     "unknown operation",
			yaml:     "name: x\nstore: chain\nelements: int\nsteps: [{op: sort}]\n",
			expected: ErrUnknownOperation,
		},
		{
			name:     "insert without index",
			yaml:     "name: x\nstore: unordered\nelements: int\nsteps: [{op: insert, item: \"1\"}]\n",
			expected: ErrInvalidScript,
		},
		{
			name:     "chain without duplicates",
			yaml:     "name: x\nstore: chain\nelements: int\nduplicates: false\nsteps: [{op: clear}]\n",
			expected: ErrInvalidScript,
		},
		{
			name:     "chain capacity",
			yaml:     "name: x\nstore: chain\nelements: int\nsteps: [{op: clear}]\nexpect: {capacity: 3}\n",
			expected: ErrInvalidScript,
		},
		{
			name:     "order on unordered store",
			yaml:     "name: x\nstore: unordered\nelements: int\norder: desc\nsteps: [{op: clear}]\n",
			expected: ErrInvalidScript,
		},
		{
			name:     "no steps",
			yaml:     "name: x\nstore: chain\nelements: int\n",
			expected: ErrInvalidScript,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("name: x\nstore: chain\nelements: int\nstep: [{op: clear}]\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
