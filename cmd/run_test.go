package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlq-sim/mlq-sim/sim/workload"
)

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "mlq001_output.txt", defaultOutputPath("mlq001.txt"))
	assert.Equal(t, "runs/mlq001_output.txt", defaultOutputPath("runs/mlq001.txt"))
	assert.Equal(t, "scenario_output.txt", defaultOutputPath("scenario.yaml"))
	assert.Equal(t, "bare_output.txt", defaultOutputPath("bare"))
}

func TestSampleInput_LoadsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlq001.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	procs, err := workload.LoadProcessFile(path)

	require.NoError(t, err)
	assert.Len(t, procs, 5, "every sample record is valid")
}
