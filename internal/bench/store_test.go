package bench

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "bench.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestRecordAndHistory(t *testing.T) {
	st := openTestStore(t)

	seq1, err := st.Record(Run{
		Solver: "dial", InputSHA: "abc", Answer: "3",
		Runs: 5, Mean: 120 * time.Microsecond, RecordedAt: time.Now(),
	})
	require.NoError(t, err)
	seq2, err := st.Record(Run{
		Solver: "dial", InputSHA: "abc", Answer: "3",
		Runs: 5, Mean: 110 * time.Microsecond, RecordedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Greater(t, seq2, seq1)

	runs, err := st.History("dial", "abc")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, seq1, runs[0].Seq)
	assert.Equal(t, 120*time.Microsecond, runs[0].Mean)
	assert.Equal(t, "3", runs[0].Answer)
	assert.Equal(t, seq2, runs[1].Seq)
}

func TestHistoryIsKeyedBySolverAndInput(t *testing.T) {
	st := openTestStore(t)

	_, err := st.Record(Run{Solver: "dial", InputSHA: "a", Answer: "1", Runs: 1, Mean: time.Millisecond, RecordedAt: time.Now()})
	require.NoError(t, err)
	_, err = st.Record(Run{Solver: "dial", InputSHA: "b", Answer: "2", Runs: 1, Mean: time.Millisecond, RecordedAt: time.Now()})
	require.NoError(t, err)
	_, err = st.Record(Run{Solver: "ids-doubled", InputSHA: "a", Answer: "9", Runs: 1, Mean: time.Millisecond, RecordedAt: time.Now()})
	require.NoError(t, err)

	runs, err := st.History("dial", "a")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "1", runs[0].Answer)
}

func TestBaselineIsEarliestRun(t *testing.T) {
	st := openTestStore(t)

	baseline, err := st.Baseline("dial", "abc")
	require.NoError(t, err)
	assert.Nil(t, baseline)

	_, err = st.Record(Run{Solver: "dial", InputSHA: "abc", Answer: "3", Runs: 5, Mean: 200 * time.Microsecond, RecordedAt: time.Now()})
	require.NoError(t, err)
	_, err = st.Record(Run{Solver: "dial", InputSHA: "abc", Answer: "3", Runs: 5, Mean: 100 * time.Microsecond, RecordedAt: time.Now()})
	require.NoError(t, err)

	baseline, err = st.Baseline("dial", "abc")
	require.NoError(t, err)
	require.NotNil(t, baseline)
	assert.Equal(t, 200*time.Microsecond, baseline.Mean)
}
