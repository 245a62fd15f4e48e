package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records frames and can be told to fail writes.
type fakeConn struct {
	mu      sync.Mutex
	frames  [][]byte
	fail    bool
	closed  bool
	reasons []string
}

func (f *fakeConn) WriteText(ctx context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail || f.closed {
		return errors.New("broken pipe")
	}
	f.frames = append(f.frames, append([]byte(nil), data...))
	return nil
}

func (f *fakeConn) Close(reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.reasons = append(f.reasons, reason)
	return nil
}

func (f *fakeConn) Frames() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.frames...)
}

func (f *fakeConn) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub(time.Second)
	a := NewClient("a", "1", &fakeConn{})
	b := NewClient("b", "1", &fakeConn{})
	c := NewClient("c", "2", &fakeConn{})

	hub.Register(a)
	hub.Register(b)
	hub.Register(c)
	assert.Equal(t, 2, hub.Subscribers("1"))
	assert.Equal(t, 1, hub.Subscribers("2"))
	assert.Equal(t, 2, hub.Buckets())

	hub.Unregister(a)
	assert.Equal(t, 1, hub.Subscribers("1"))

	hub.Unregister(b)
	assert.Equal(t, 0, hub.Subscribers("1"))
	assert.Equal(t, 1, hub.Buckets(), "empty bucket must be removed")

	// double unregister is a no-op
	hub.Unregister(b)
	assert.Equal(t, 1, hub.Buckets())
}

func TestHubOnEmpty(t *testing.T) {
	hub := NewHub(time.Second)
	var emptied []string
	hub.OnEmpty(func(id string) { emptied = append(emptied, id) })

	a := NewClient("a", "1", &fakeConn{})
	b := NewClient("b", "1", &fakeConn{})
	hub.Register(a)
	hub.Register(b)

	hub.Unregister(a)
	assert.Empty(t, emptied)
	hub.Unregister(b)
	assert.Equal(t, []string{"1"}, emptied)
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(time.Second)
	okConn := &fakeConn{}
	badConn := &fakeConn{fail: true}
	other := &fakeConn{}

	good := NewClient("good", "1", okConn)
	bad := NewClient("bad", "1", badConn)
	hub.Register(good)
	hub.Register(bad)
	hub.Register(NewClient("other", "2", other))

	delivered := hub.Broadcast(context.Background(), "1", []byte(`{"type":"transcript"}`))
	assert.Equal(t, 1, delivered)
	assert.Len(t, okConn.Frames(), 1)
	assert.Empty(t, other.Frames(), "other interviews are not affected")

	assert.Equal(t, 1, hub.Subscribers("1"), "failed subscriber is pruned")
	assert.True(t, badConn.closed)

	// next round still reaches the healthy subscriber
	hub.Broadcast(context.Background(), "1", []byte(`{"type":"metrics"}`))
	assert.Len(t, okConn.Frames(), 2)
}

func TestHubBroadcastPrunesLastSubscriber(t *testing.T) {
	hub := NewHub(time.Second)
	var emptied []string
	hub.OnEmpty(func(id string) { emptied = append(emptied, id) })

	hub.Register(NewClient("bad", "7", &fakeConn{fail: true}))
	assert.Equal(t, 0, hub.Broadcast(context.Background(), "7", []byte("x")))
	assert.Equal(t, 0, hub.Buckets())
	assert.Equal(t, []string{"7"}, emptied)
}

func TestHubBroadcastToNobody(t *testing.T) {
	hub := NewHub(time.Second)
	assert.Equal(t, 0, hub.Broadcast(context.Background(), "missing", []byte("x")))
	assert.Equal(t, 0, hub.Buckets())
}

// cancellingConn cancels the broadcast context during its write, like a
// run being cancelled while it is mid-broadcast.
type cancellingConn struct {
	fakeConn
	cancel context.CancelFunc
}

func (c *cancellingConn) WriteText(ctx context.Context, data []byte) error {
	c.cancel()
	return ctx.Err()
}

func TestHubBroadcastCancelledKeepsSubscribers(t *testing.T) {
	t.Run("Cancelled before send", func(t *testing.T) {
		hub := NewHub(time.Second)
		conn := &fakeConn{}
		hub.Register(NewClient("late", "3", conn))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, 0, hub.Broadcast(ctx, "3", []byte("x")))
		assert.Empty(t, conn.Frames())
		assert.False(t, conn.closed)
		assert.Equal(t, 1, hub.Subscribers("3"))
	})

	t.Run("Cancelled during send", func(t *testing.T) {
		hub := NewHub(time.Second)
		var emptied []string
		hub.OnEmpty(func(id string) { emptied = append(emptied, id) })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		conn := &cancellingConn{cancel: cancel}
		hub.Register(NewClient("joining", "3", conn))

		assert.Equal(t, 0, hub.Broadcast(ctx, "3", []byte("x")))
		assert.False(t, conn.closed, "subscriber is not blamed for a cancelled run")
		assert.Equal(t, 1, hub.Subscribers("3"))
		assert.Empty(t, emptied)
	})
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := NewHub(time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		c := NewClient("c", "1", &fakeConn{})
		go func() {
			defer wg.Done()
			hub.Register(c)
			hub.Unregister(c)
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast(context.Background(), "1", []byte("x"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, hub.Buckets())
}

func TestHubCloseAll(t *testing.T) {
	hub := NewHub(time.Second)
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(NewClient("a", "1", a))
	hub.Register(NewClient("b", "2", b))

	hub.CloseAll("shutdown")
	require.Equal(t, 0, hub.Buckets())
	assert.Equal(t, []string{"shutdown"}, a.reasons)
	assert.Equal(t, []string{"shutdown"}, b.reasons)
}
