package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Options configures a socket.io publisher.
type Options struct {
	// URL of the socket.io endpoint, e.g. "http://localhost:3000/socket.io/".
	URL       string
	Namespace string
	// Event defaults to DefaultEvent.
	Event string
	// Timeout bounds the initial connection. Defaults to 10s.
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// SocketIO emits evaluated tables over a single socket.io connection.
type SocketIO struct {
	io     *socket.Socket
	event  string
	closed atomic.Bool
}

var _ Publisher = (*SocketIO)(nil)

// Dial connects to the socket.io endpoint and waits for the namespace to be
// joined.
func Dial(ctx context.Context, opts Options) (*SocketIO, error) {
	if opts.Event == "" {
		opts.Event = DefaultEvent
	}
	if opts.Namespace == "" {
		opts.Namespace = "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	logger := ctxlog.FromContext(ctx).With("notifier", "socketio", "url", opts.URL, "namespace", opts.Namespace)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("notify URL %q must be absolute", opts.URL)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	sopts := socket.DefaultOptions()
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		sopts.SetPath(parsedURL.Path)
	}
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(opts.Namespace, sopts)

	done := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Notifier connected", "sid", io.Id())
		select {
		case done <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connection refused")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case done <- err:
		default:
		}
	})

	io.Connect()

	timer := time.NewTimer(opts.Timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("failed to connect notifier: %w", err)
		}
	case <-timer.C:
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s while connecting notifier", opts.Timeout)
	case <-ctx.Done():
		io.Disconnect()
		return nil, ctx.Err()
	}

	return &SocketIO{io: io, event: opts.Event}, nil
}

// Publish emits tbl as a JSON object on the configured event.
func (s *SocketIO) Publish(ctx context.Context, tbl *sheet.Table) error {
	if s.closed.Load() {
		return errors.New("notifier is closed")
	}
	payload, err := tablePayload(tbl)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Emitting evaluated table.", "event", s.event, "cells", len(tbl.Data))
	s.io.Emit(s.event, payload)
	return nil
}

// Close disconnects the socket. It is safe to call more than once.
func (s *SocketIO) Close(ctx context.Context) error {
	if s.closed.Swap(true) {
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Disconnecting notifier.")
	s.io.Disconnect()
	return nil
}

// tablePayload converts tbl into the generic object form the socket.io
// encoder serializes.
func tablePayload(tbl *sheet.Table) (map[string]any, error) {
	raw, err := json.Marshal(tbl)
	if err != nil {
		return nil, fmt.Errorf("failed to encode table: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to encode table: %w", err)
	}
	return payload, nil
}
