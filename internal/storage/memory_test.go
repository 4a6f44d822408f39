package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory().For("client-a")

	_, ok, err := s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "user", []byte(`{"id":1}`)))
	v, ok, err := s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, string(v))

	require.NoError(t, s.RemoveItem(ctx, "user"))
	_, ok, err = s.GetItem(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ClientsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.For("a").SetItem(ctx, "user", []byte("a")))

	_, ok, err := m.For("b").GetItem(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := m.For("a").GetItem(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", string(v))
}

func TestMemory_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemory().For("a")

	in := []byte("value")
	require.NoError(t, s.SetItem(ctx, "k", in))
	in[0] = 'X'

	out, _, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "value", string(out))
	out[0] = 'Y'

	again, _, _ := s.GetItem(ctx, "k")
	assert.Equal(t, "value", string(again))
}

func TestMemory_RemoveMissingIsNoop(t *testing.T) {
	assert.NoError(t, NewMemory().For("nobody").RemoveItem(context.Background(), "user"))
}
