package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T, path string) *Journal {
	t.Helper()
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestOpen_CreatesDatabase(t *testing.T) {
	j := openTestJournal(t, filepath.Join(t.TempDir(), "journal.db"))
	n, err := j.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeen_UnknownFingerprint(t *testing.T) {
	j := openTestJournal(t, filepath.Join(t.TempDir(), "journal.db"))

	seen, err := j.Seen("example.com.|www.example.com.|A|300|1.2.3.4")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRecordAndSeen(t *testing.T) {
	j := openTestJournal(t, filepath.Join(t.TempDir(), "journal.db"))

	fps := []string{
		"example.com.|www.example.com.|A|300|1.2.3.4",
		"example.com.|mail.example.com.|MX|3600|10 mail.example.com.",
	}
	require.NoError(t, j.Record(fps, "13"))

	for _, fp := range fps {
		seen, err := j.Seen(fp)
		require.NoError(t, err)
		assert.True(t, seen, "expected %s to be recorded", fp)
	}

	id, found, err := j.ChangeID(fps[0])
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "13", id)

	n, err := j.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecord_EmptyIsNoop(t *testing.T) {
	j := openTestJournal(t, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, j.Record(nil, "13"))
	n, err := j.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestChangeID_Unknown(t *testing.T) {
	j := openTestJournal(t, filepath.Join(t.TempDir(), "journal.db"))
	_, found, err := j.ChangeID("nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReopen_SeedsBloomFromStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Record([]string{"fp-1", "fp-2"}, "7"))
	require.NoError(t, j.Close())

	// reopen: the bloom filter must be rebuilt from disk, so lookups still
	// find the recorded fingerprints without write traffic
	j2 := openTestJournal(t, path)
	for _, fp := range []string{"fp-1", "fp-2"} {
		seen, err := j2.Seen(fp)
		require.NoError(t, err)
		assert.True(t, seen)
	}
	seen, err := j2.Seen("fp-3")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "journal.db"))
	assert.Error(t, err)
}
