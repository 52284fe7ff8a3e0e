package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "setup.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalRoundTrip(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.BeginRun("windows")
	require.NoError(t, err)

	require.NoError(t, j.RecordStep(id, "create install directory", StatusSucceeded, ""))
	require.NoError(t, j.RecordStep(id, "clear download mark", StatusIgnored, "access denied"))
	require.NoError(t, j.RecordStep(id, "copy executable", StatusSucceeded, ""))
	require.NoError(t, j.FinishRun(id, StatusSucceeded, ""))

	runs, err := j.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "windows", run.Platform)
	assert.Equal(t, StatusSucceeded, run.Status)
	assert.False(t, run.StartedAt.IsZero())
	assert.False(t, run.FinishedAt.IsZero())

	steps, err := j.RunSteps(id)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "create install directory", steps[0].Name)
	assert.Equal(t, "clear download mark", steps[1].Name)
	assert.Equal(t, StatusIgnored, steps[1].Status)
	assert.Equal(t, "access denied", steps[1].Error)
	assert.Equal(t, "copy executable", steps[2].Name)
}

func TestRecentRunsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	first, err := j.BeginRun("darwin")
	require.NoError(t, err)
	second, err := j.BeginRun("darwin")
	require.NoError(t, err)
	third, err := j.BeginRun("darwin")
	require.NoError(t, err)

	require.NoError(t, j.FinishRun(first, StatusFailed, "copy failed"))
	require.NoError(t, j.FinishRun(second, StatusSucceeded, ""))

	runs, err := j.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, third, runs[0].ID)
	assert.Equal(t, StatusStarted, runs[0].Status)
	assert.True(t, runs[0].FinishedAt.IsZero())
	assert.Equal(t, second, runs[1].ID)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "setup.db")
	j, err := Open(path)
	require.NoError(t, err)
	defer j.Close()

	assert.Equal(t, path, j.Path())

	_, err = j.BeginRun("linux")
	require.NoError(t, err)
}

func TestUnknownRunHasNoSteps(t *testing.T) {
	j := openTestJournal(t)

	steps, err := j.RunSteps(42)
	require.NoError(t, err)
	assert.Empty(t, steps)
}
