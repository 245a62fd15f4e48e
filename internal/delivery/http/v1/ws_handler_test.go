package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

type streamFrame struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp float64         `json:"timestamp"`
}

func dial(t *testing.T, srv *httptest.Server, path string, opts *websocket.DialOptions) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+path, opts)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func readFrames(t *testing.T, conn *websocket.Conn, n int) []streamFrame {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	frames := make([]streamFrame, 0, n)
	for len(frames) < n {
		typ, data, err := conn.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, websocket.MessageText, typ)
		var f streamFrame
		require.NoError(t, json.Unmarshal(data, &f))
		frames = append(frames, f)
	}
	return frames
}

func TestInterviewStreamEndToEnd(t *testing.T) {
	s := newTestServer(t, testConfig())
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	conn := dial(t, srv, "/ws/interviews/1", nil)
	frames := readFrames(t, conn, 7)

	var timestamps []float64
	for _, f := range frames[:6] {
		assert.Equal(t, "transcript", f.Type)
		timestamps = append(timestamps, f.Timestamp)
	}
	assert.Equal(t, []float64{0, 5, 15, 20, 35, 40}, timestamps)
	assert.Equal(t, "metrics", frames[6].Type)
	assert.Equal(t, float64(50), frames[6].Timestamp)

	// the run is over: nothing follows the metrics frame
	quiet, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, extra, err := conn.Read(quiet)
	require.Error(t, err, "unexpected frame %s", extra)
	assert.ErrorIs(t, quiet.Err(), context.DeadlineExceeded)

	_ = conn.Close(websocket.StatusNormalClosure, "")
	require.Eventually(t, func() bool { return s.hub.Buckets() == 0 }, time.Second, 5*time.Millisecond)
}

func TestInterviewStreamEcho(t *testing.T) {
	cfg := testConfig()
	// keep the script out of the way of the echo
	cfg.SimulatorTick = time.Hour
	s := newTestServer(t, cfg)
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	conn := dial(t, srv, "/ws/interviews/2", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("привет")))
	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	assert.Equal(t, "Echo: привет", string(data))
	assert.True(t, s.sim.Running("2"))
}

func TestInterviewStreamSharedSession(t *testing.T) {
	s := newTestServer(t, testConfig())
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	stay := dial(t, srv, "/ws/interviews/1", nil)
	leave := dial(t, srv, "/ws/interviews/1", nil)
	require.Eventually(t, func() bool { return s.hub.Subscribers("1") == 2 }, time.Second, time.Millisecond)

	readFrames(t, leave, 1)
	_ = leave.Close(websocket.StatusNormalClosure, "bye")
	require.Eventually(t, func() bool { return s.hub.Subscribers("1") == 1 }, time.Second, time.Millisecond)

	frames := readFrames(t, stay, 7)
	assert.Equal(t, "metrics", frames[6].Type)
}

func TestInterviewStreamRejectsForeignOrigin(t *testing.T) {
	s := newTestServer(t, testConfig())
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, resp, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/interviews/1", &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"https://evil.example"}},
	})
	require.Error(t, err)
	if resp != nil {
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	}
	assert.Equal(t, 0, s.hub.Buckets())
}

func TestOriginPatterns(t *testing.T) {
	assert.Equal(t,
		[]string{"localhost:5173", "app.example.com"},
		originPatterns([]string{"http://localhost:5173", "https://app.example.com", "not a url"}))
}
