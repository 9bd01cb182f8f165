package repository

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenRepositoryPersists(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo, err := NewSeenRepository(fs, "/data/seen.json", 0)
	require.NoError(t, err)

	first, err := repo.MarkSeen("a")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.MarkSeen("a")
	require.NoError(t, err)
	assert.False(t, again)

	// 重新打开后记录仍在
	reopened, err := NewSeenRepository(fs, "/data/seen.json", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	seen, err := reopened.MarkSeen("a")
	require.NoError(t, err)
	assert.False(t, seen)

	exists, err := afero.Exists(fs, "/data/seen.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeenRepositoryEvictsOldest(t *testing.T) {
	repo, err := NewSeenRepository(afero.NewMemMapFs(), "/seen.json", 2)
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, gid := range []string{"a", "b", "c"} {
		at := base.Add(time.Duration(i) * time.Minute)
		repo.now = func() time.Time { return at }
		_, err := repo.MarkSeen(gid)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, repo.Len())
	// 最旧的 a 被淘汰,再次出现视为新任务
	first, err := repo.MarkSeen("a")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestSeenRepositoryCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seen.json", []byte("{not json"), 0o644))

	_, err := NewSeenRepository(fs, "/seen.json", 0)
	assert.Error(t, err)
}
