package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lovequest/internal/quest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))
	require.NoError(t, kv.Set(ctx, "a", "3"))

	v, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v, "set overwrites")

	require.NoError(t, kv.Delete(ctx, "a", "b", "never-set"))
	_, ok, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Delete(ctx))
}

func TestSQLiteKV(t *testing.T) {
	testKVContract(t, openTestStore(t).KV())
}

func TestMemoryKV(t *testing.T) {
	testKVContract(t, NewMemoryKV())
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "p.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.FileExists(t, path)
}

func TestDefaultDBPathIsSideEffectFree(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("LOVEQUEST_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "lovequest", "lovequest.db"), p)
	assert.NoDirExists(t, filepath.Dir(p))
}

func TestSQLiteKVDeletesSeveralKeys(t *testing.T) {
	ctx := context.Background()
	kv := openTestStore(t).KV()
	for _, k := range []string{"x", "y", "z"} {
		require.NoError(t, kv.Set(ctx, k, k))
	}

	require.NoError(t, kv.Delete(ctx, "x", "z"))
	_, ok, err := kv.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)
	v, ok, err := kv.Get(ctx, "y")
	require.NoError(t, err)
	assert.True(t, ok, "keys outside the delete set survive")
	assert.Equal(t, "y", v)
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.KV().Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestProgressSaveLoad(t *testing.T) {
	ctx := context.Background()
	ps := NewProgressStore(openTestStore(t).KV(), nil)

	_, ok := ps.Load(ctx)
	assert.False(t, ok, "no record yet")

	rec := ProgressRecord{
		CurrentStage:      quest.StageQuest2,
		CompletedQuestIDs: []string{"quest-1"},
		UnlockedStageIDs:  []string{"quest-1", "quest-2", "quest-3"},
	}
	ps.Save(ctx, rec)

	for i := 0; i < 3; i++ {
		got, ok := ps.Load(ctx)
		require.True(t, ok)
		assert.Equal(t, rec, got)
	}
}

func TestProgressSaveNormalizesNilSlices(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	ps := NewProgressStore(kv, nil)

	ps.Save(ctx, ProgressRecord{CurrentStage: quest.StageQuest1})
	raw, _, _ := kv.Get(ctx, ProgressKey)
	assert.JSONEq(t, `{"currentStage":"quest-1","completedQuests":[],"unlockedStages":[]}`, raw)

	got, ok := ps.Load(ctx)
	require.True(t, ok)
	assert.Empty(t, got.CompletedQuestIDs)
}

func TestProgressLoadRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{oops"},
		{"unknown stage", `{"currentStage":"quest-9","completedQuests":[]}`},
		{"wrong type", `{"currentStage":"quest-1","completedQuests":"quest-1"}`},
		{"missing stage", `{"completedQuests":[]}`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(ctx, ProgressKey, tt.raw))

			_, ok := NewProgressStore(kv, nil).Load(ctx)
			assert.False(t, ok)
		})
	}
}

func TestProgressStartedMarker(t *testing.T) {
	ctx := context.Background()
	ps := NewProgressStore(NewMemoryKV(), nil)
	fixed := time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC)
	ps.now = func() time.Time { return fixed }

	assert.False(t, ps.HasStarted(ctx))
	ps.MarkStarted(ctx)
	assert.True(t, ps.HasStarted(ctx))

	at, ok := ps.StartedAt(ctx)
	require.True(t, ok)
	assert.True(t, fixed.Equal(at))
}

func TestProgressClear(t *testing.T) {
	ctx := context.Background()
	ps := NewProgressStore(openTestStore(t).KV(), nil)

	ps.MarkStarted(ctx)
	ps.Save(ctx, ProgressRecord{CurrentStage: quest.StageQuest3, CompletedQuestIDs: []string{"quest-1", "quest-2"}})
	ps.Clear(ctx)

	_, ok := ps.Load(ctx)
	assert.False(t, ok)
	assert.False(t, ps.HasStarted(ctx))
}

func TestProgressFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage disabled")
	kv := &MemoryKV{data: map[string]string{}, FailGet: boom, FailSet: boom, FailDelete: boom}
	ps := NewProgressStore(kv, nil)

	assert.NotPanics(t, func() {
		ps.Save(ctx, ProgressRecord{CurrentStage: quest.StageQuest1})
		ps.MarkStarted(ctx)
		ps.Clear(ctx)
	})

	_, ok := ps.Load(ctx)
	assert.False(t, ok)
	assert.False(t, ps.HasStarted(ctx))
	_, ok = ps.StartedAt(ctx)
	assert.False(t, ok)
}
