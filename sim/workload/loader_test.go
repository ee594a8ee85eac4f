package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProcessFile_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeTemp(t, `#etiqueta; burst time (BT); arrival time (AT); Queue (Q): Priority(5>1)
A;6;0;1;5

B;9;0;1;4
# trailing comment
`)

	procs, err := LoadProcessFile(path)

	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, "A", procs[0].ID)
	assert.Equal(t, "B", procs[1].ID)
}

func TestLoadProcessFile_SkipsMalformedLines(t *testing.T) {
	path := writeTemp(t, `A;6;0;1;5
too;few;fields
B;not-a-number;0;1;4
C;5;-1;1;4
D;5;0;7;4
E;0;0;1;4
F;8;2;3;1
`)

	procs, err := LoadProcessFile(path)

	require.NoError(t, err)
	require.Len(t, procs, 2, "only the well-formed records survive")
	assert.Equal(t, "A", procs[0].ID)
	assert.Equal(t, "F", procs[1].ID)
}

func TestLoadProcessFile_TrimsFieldWhitespace(t *testing.T) {
	path := writeTemp(t, "A ; 6 ; 0 ; 1 ; 5\n")

	procs, err := LoadProcessFile(path)

	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, "A", procs[0].ID)
	assert.Equal(t, int64(6), procs[0].BurstTime)
	assert.Equal(t, 5, procs[0].Priority)
}

func TestLoadProcessFile_SortsByArrival_StableOnTies(t *testing.T) {
	path := writeTemp(t, `late;3;9;1;0
tie1;3;4;1;0
tie2;3;4;2;0
early;3;1;3;0
`)

	procs, err := LoadProcessFile(path)

	require.NoError(t, err)
	want := []string{"early", "tie1", "tie2", "late"}
	require.Len(t, procs, len(want))
	for i, id := range want {
		assert.Equal(t, id, procs[i].ID, "position %d", i)
	}
}

func TestLoadProcessFile_MissingFile(t *testing.T) {
	_, err := LoadProcessFile(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestParseLine_ValidRecord(t *testing.T) {
	p, err := ParseLine("A;6;0;1;5")

	require.NoError(t, err)
	assert.Equal(t, "A", p.ID)
	assert.Equal(t, int64(6), p.BurstTime)
	assert.Equal(t, int64(0), p.ArrivalTime)
	assert.Equal(t, 1, p.Queue)
	assert.Equal(t, 5, p.Priority)
	assert.Equal(t, int64(6), p.RemainingTime, "remaining starts at burst")
}
