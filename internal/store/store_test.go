package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/domain"
)

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	doc := s.Doc()
	assert.Empty(t, doc.Teams)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Tasks)
	assert.Empty(t, doc.Comments)
}

func TestOpen_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)

	now := time.Now()
	s.Doc().Teams = append(s.Doc().Teams, &domain.Team{
		ID:        "t1",
		Name:      "platform",
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.Doc().Tasks = append(s.Doc().Tasks, &domain.Task{
		ID:        "task1",
		Title:     "ship it",
		TeamID:    "t1",
		Status:    domain.StatusNotStarted,
		Priority:  domain.PriorityP3,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)

	require.Len(t, reopened.Doc().Teams, 1)
	assert.Equal(t, "platform", reopened.Doc().Teams[0].Name)
	require.Len(t, reopened.Doc().Tasks, 1)
	assert.Equal(t, "ship it", reopened.Doc().Tasks[0].Title)
	assert.Equal(t, domain.PriorityP3, reopened.Doc().Tasks[0].Priority)
}

func TestOpen_CorruptDocumentFallsBackToEmpty(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o644))

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Empty(t, s.Doc().Teams)
	})

	t.Run("wrong document shape", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fileName),
			[]byte(`{"teams":{},"users":[],"tasks":[],"comments":[]}`), 0o644))

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Empty(t, s.Doc().Teams)
	})

	t.Run("missing collection", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, fileName),
			[]byte(`{"teams":[],"users":[]}`), 0o644))

		s, err := Open(dir)
		require.NoError(t, err)
		assert.NotNil(t, s.Doc().Tasks)
	})
}

func TestReset_ClearsAndPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	s.Doc().Teams = append(s.Doc().Teams, &domain.Team{ID: "t1", Name: "x"})
	require.NoError(t, s.Save())

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Doc().Teams)

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, reopened.Doc().Teams)
}

func TestMemoryOnly_DisablesPersistence(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	s.MemoryOnly()

	s.Doc().Teams = append(s.Doc().Teams, &domain.Team{ID: "t1", Name: "x"})
	require.NoError(t, s.Save())

	_, statErr := os.Stat(filepath.Join(dir, fileName))
	assert.True(t, os.IsNotExist(statErr), "memory-only store must not write a file")
}

func TestNewMemory_SaveIsNoop(t *testing.T) {
	s := NewMemory()
	s.Doc().Users = append(s.Doc().Users, &domain.User{ID: "u1", Email: "a@x.com", Name: "A"})
	assert.NoError(t, s.Save())
}
