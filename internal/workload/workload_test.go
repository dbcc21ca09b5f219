package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsim/internal/sched"
)

func TestReadCSV(t *testing.T) {
	in := "name,arrival,burst\n# comment\nP1, 0, 3\nP2,1,2\n"

	procs, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{
		{Name: "P1", Arrival: 0, Burst: 3},
		{Name: "P2", Arrival: 1, Burst: 2},
	}, procs)
}

func TestReadCSV_NoHeader(t *testing.T) {
	procs, err := ReadCSV(strings.NewReader("A,2,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{{Name: "A", Arrival: 2, Burst: 1}}, procs)
}

func TestReadCSV_Malformed(t *testing.T) {
	for _, in := range []string{
		"P1,0\n",
		"P1,0,3\nP2,x,2\n",
		"P1,0,3,9\n",
	} {
		_, err := ReadCSV(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestReadYAML(t *testing.T) {
	in := `
processes:
  - name: P1
    arrival: 0
    burst: 4
  - {name: P2, arrival: 1, burst: 2}
`
	procs, err := ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []sched.Process{
		{Name: "P1", Arrival: 0, Burst: 4},
		{Name: "P2", Arrival: 1, Burst: 2},
	}, procs)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "procs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("P1,0,3\n"), 0o644))
	procs, err := Load(csvPath)
	require.NoError(t, err)
	assert.Len(t, procs, 1)

	yamlPath := filepath.Join(dir, "procs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("processes:\n  - {name: A, arrival: 1, burst: 1}\n"), 0o644))
	procs, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "A", procs[0].Name)
}

func TestLoad_Validates(t *testing.T) {
	dir := t.TempDir()

	dup := filepath.Join(dir, "dup.csv")
	require.NoError(t, os.WriteFile(dup, []byte("P1,0,3\nP1,1,2\n"), 0o644))
	_, err := Load(dup)
	assert.ErrorIs(t, err, sched.ErrDuplicateProcessName)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("name,arrival,burst\n"), 0o644))
	_, err = Load(empty)
	assert.ErrorIs(t, err, sched.ErrEmptyProcessSet)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
