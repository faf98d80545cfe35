package inmem

import (
	"testing"
	"time"

	"github.com/derWhity/greentable/internal/repos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestSessionLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := New(ctx, time.Hour)

	sess, err := r.CreateFor(7)
	require.NoError(t, err)
	assert.Len(t, sess.ID, 64)
	assert.Equal(t, uint(7), sess.UserID)

	got, err := r.GetByID(sess.ID, true)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.False(t, got.ExpiresAt.Before(sess.ExpiresAt))

	require.NoError(t, r.Delete(sess.ID))
	_, err = r.GetByID(sess.ID, false)
	assert.Equal(t, repos.ErrEntityNotExisting, err)
}

func TestSessionTokensDiffer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := New(ctx, time.Hour)
	a, err := r.CreateFor(1)
	require.NoError(t, err)
	b, err := r.CreateFor(1)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionExpires(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := New(ctx, time.Millisecond)
	sess, err := r.CreateFor(1)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = r.GetByID(sess.ID, true)
	assert.Equal(t, repos.ErrEntityNotExisting, err)
}

func TestSessionRepoStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(ctx, time.Hour)
	cancel()
	<-r.done
	_, err := r.CreateFor(1)
	assert.Equal(t, repos.ErrEntityNotExisting, err)
}
