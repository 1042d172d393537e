package statslog

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return log
}

var sample = []Observation{
	{PointValue: 5, RespondedValue: 12, Weight: 4},
	{PointValue: 5, RespondedValue: 7, Weight: 1},
	{PointValue: -3, RespondedValue: 1, Weight: 2},
}

func TestFileSinkLineFormat(t *testing.T) {
	// GIVEN a fresh stats file
	path := filepath.Join(t.TempDir(), "stats.txt")
	sink, err := OpenFile(path)
	require.NoError(t, err)

	// WHEN observations are exported and the sink closed
	n := Export(sink, sample, quietLogger())
	require.NoError(t, sink.Close())

	// THEN each one is a "<point>, <response>, <weight>" line
	assert.Equal(t, 3, n)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5, 12, 4\n5, 7, 1\n-3, 1, 2\n", string(data))
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.txt")
	for i := 0; i < 2; i++ {
		sink, err := OpenFile(path)
		require.NoError(t, err)
		Export(sink, sample[:1], quietLogger())
		require.NoError(t, sink.Close())
	}

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Observation{sample[0], sample[0]}, got)
}

func TestReadFile(t *testing.T) {
	t.Run("it round-trips the written format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stats.txt")
		require.NoError(t, os.WriteFile(path, []byte("5, 12, 4\n\n5,7,1\n-3, 1, 2\n"), 0o644))

		got, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sample, got)
	})

	t.Run("it reports the offending line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stats.txt")
		require.NoError(t, os.WriteFile(path, []byte("5, 12, 4\n5, x, 1\n"), 0o644))

		_, err := ReadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ":2:")
	})

	t.Run("it rejects short lines", func(t *testing.T) {
		_, err := parseLine("1, 2")
		assert.Error(t, err)
	})
}

type failingSink struct{ calls int }

func (f *failingSink) Append(Observation) error {
	f.calls++
	if f.calls == 2 {
		return errors.New("disk full")
	}
	return nil
}
func (f *failingSink) Close() error { return nil }

func TestExportSwallowsFailures(t *testing.T) {
	sink := &failingSink{}

	n := Export(sink, sample, quietLogger())

	assert.Equal(t, 3, sink.calls, "every observation is attempted")
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, Export(nil, sample, quietLogger()))
}

func TestMultiSinkJoinsErrors(t *testing.T) {
	ok := &failingSink{}
	bad := &failingSink{calls: 1}
	m := MultiSink{ok, bad}

	err := m.Append(sample[0])

	assert.Error(t, err)
	assert.Equal(t, 1, ok.calls)
	assert.NoError(t, m.Close())
}

func TestSQLiteSink(t *testing.T) {
	// GIVEN an in-memory database
	sink, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer sink.Close()

	// WHEN a match's observations are exported
	n := Export(sink, sample, quietLogger())

	// THEN they can be read back under the sink's match id
	assert.Equal(t, 3, n)
	got, err := sink.Match(sink.MatchID())
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
	assert.Equal(t, "file:stats.db?_busy_timeout=5000", sqliteDSN("stats.db"))
}
