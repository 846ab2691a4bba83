package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_GetMissing(t *testing.T) {
	kv := openTestSQLite(t)

	_, ok, err := kv.Get(context.Background(), "shareSteps:missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKV_PutGetOverwrite(t *testing.T) {
	kv := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "shareSteps:C1", `{"a":1}`))

	v, ok, err := kv.Get(ctx, "shareSteps:C1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, kv.Put(ctx, "shareSteps:C1", `{"a":2}`))

	v, ok, err = kv.Get(ctx, "shareSteps:C1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":2}`, v)
}

func TestSQLiteKV_OpenEmptyPath(t *testing.T) {
	kv, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, kv)
}

func TestStore_RoundTripOverSQLite(t *testing.T) {
	kv := openTestSQLite(t)
	store := NewStore(kv)
	store.Now = func() time.Time { return time.UnixMilli(42000) }
	ctx := context.Background()

	store.Save(ctx, "shareSteps:C1", StepProfile, true)

	rec := store.Load(ctx, "shareSteps:C1")
	assert.True(t, rec.Step1.Completed)
	require.NotNil(t, rec.Step1.Timestamp)
	assert.Equal(t, int64(42000), *rec.Step1.Timestamp)
}
