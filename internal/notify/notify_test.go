package notify

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/testutil"
	sioserver "github.com/zishang520/socket.io/v2/socket"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(ctx, sheet.New(1, "A")))
	assert.NoError(t, p.Close(ctx))
}

func TestTablePayload(t *testing.T) {
	tbl := sheet.New(2, "A").Set("A1", "1").SetFormula("A2", "=A1+1")
	tbl.Data["A2"].Value = sheet.StringPtr("2")

	payload, err := tablePayload(tbl)
	require.NoError(t, err)

	assert.Equal(t, float64(2), payload["rows"])
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	a2, ok := data["A2"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "=A1+1", a2["formula"])
	assert.Equal(t, "2", a2["value"])
	assert.NotContains(t, a2, "error")
}

func TestDial_InvalidURL(t *testing.T) {
	ctx, _ := testutil.Context(t)
	for _, raw := range []string{"localhost:3000", "/socket.io/", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Dial(ctx, Options{URL: raw, Timeout: 100 * time.Millisecond})
			assert.Error(t, err)
		})
	}
}

func TestDial_Unreachable(t *testing.T) {
	ctx, _ := testutil.Context(t)
	start := time.Now()
	_, err := Dial(ctx, Options{URL: "http://127.0.0.1:1/socket.io/", Timeout: 300 * time.Millisecond})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDial_CancelledContext(t *testing.T) {
	ctx, _ := testutil.Context(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err := Dial(ctx, Options{URL: "http://127.0.0.1:1/", Timeout: time.Minute})
	assert.Error(t, err)
}

// startServer runs a socket.io server that forwards the first payload
// received on DefaultEvent.
func startServer(t *testing.T) (string, <-chan map[string]any) {
	t.Helper()
	received := make(chan map[string]any, 1)

	io := sioserver.NewServer(nil, nil)
	io.On("connection", func(clients ...any) {
		client := clients[0].(*sioserver.Socket)
		client.On(DefaultEvent, func(args ...any) {
			if len(args) == 0 {
				return
			}
			if payload, ok := args[0].(map[string]any); ok {
				select {
				case received <- payload:
				default:
				}
			}
		})
	})

	srv := httptest.NewServer(io.ServeHandler(nil))
	t.Cleanup(func() {
		io.Close(nil)
		srv.Close()
	})
	return srv.URL + "/socket.io/", received
}

func TestSocketIO_PublishDeliversTable(t *testing.T) {
	url, received := startServer(t)
	ctx, logs := testutil.Context(t)

	pub, err := Dial(ctx, Options{URL: url, Timeout: 5 * time.Second})
	require.NoError(t, err)
	defer pub.Close(ctx)
	assert.Contains(t, logs.String(), "Notifier connected")

	tbl := sheet.New(1, "A", "B").Set("A1", "2").SetFormula("B1", "=A1*21")
	tbl.Data["B1"].Value = sheet.StringPtr("42")
	require.NoError(t, pub.Publish(ctx, tbl))

	select {
	case payload := <-received:
		assert.Equal(t, float64(1), payload["rows"])
		data, ok := payload["data"].(map[string]any)
		require.True(t, ok)
		b1, ok := data["B1"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "=A1*21", b1["formula"])
		assert.Equal(t, "42", b1["value"])
	case <-time.After(5 * time.Second):
		t.Fatal("evaluated table did not reach the server")
	}

	require.NoError(t, pub.Close(ctx))
	assert.Error(t, pub.Publish(ctx, tbl), "publishing after close fails")
}
