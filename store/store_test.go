package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	st, err := New(DriverMemory)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()

	_, err = st.Load(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, "user", []byte(`{"a":1}`)))
	got, err := st.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// overwrite is last-write-wins
	require.NoError(t, st.Save(ctx, "user", []byte(`{"a":2}`)))
	got, err = st.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, st.Delete(ctx, "user"))
	_, err = st.Load(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, st.Delete(ctx, "user"))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := New(DriverFile, WithDir(dir))
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, "user", []byte(`{"identifier":"a@gmail.com"}`)))
	require.NoError(t, st.Close())

	// a fresh store over the same dir sees the value: the reload analog
	st2, err := New(DriverFile, WithDir(dir))
	require.NoError(t, err)
	defer st2.Close()

	got, err := st2.Load(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"identifier":"a@gmail.com"}`), got)

	require.NoError(t, st2.Delete(ctx, "user"))
	_, err = st2.Load(ctx, "user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	st, err := New(DriverFile, WithDir(t.TempDir()))
	require.NoError(t, err)
	defer st.Close()

	err = st.Save(context.Background(), "../escape", []byte("x"))
	assert.Error(t, err)
}

func TestFileStore_Permissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	st, err := New(DriverFile, WithDir(dir))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(context.Background(), "user", []byte("x")))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	finfo, err := os.Stat(filepath.Join(dir, "user.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), finfo.Mode().Perm())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(DriverFile)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(DriverRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Driver("bolt"))
	assert.ErrorIs(t, err, ErrInvalidDriver)
}
