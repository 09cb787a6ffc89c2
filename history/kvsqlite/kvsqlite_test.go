package kvsqlite_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosom/google-maps-coordinates/history/kvsqlite"
)

func Test_KV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	kv, err := kvsqlite.New(path)
	require.NoError(t, err)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", []byte(`[{"a":1}]`)))

	value, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"a":1}]`), value)

	// Overwrite
	require.NoError(t, kv.Set(ctx, "k", []byte(`[]`)))

	value, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, kv.Remove(ctx, "k"))

	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_KV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	kv, err := kvsqlite.New(path)
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))

	closer, ok := kv.(io.Closer)
	require.True(t, ok)
	require.NoError(t, closer.Close())

	reopened, err := kvsqlite.New(path)
	require.NoError(t, err)

	value, found, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v"), value)
}
