package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/notify"
	"github.com/vk/gridcalc/internal/session"
	"github.com/vk/gridcalc/internal/sheet"
)

const (
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 5 * time.Second

	msgReceived     = "Evaluation received"
	msgMissingData  = "Malformed request: 'data' property is missing or invalid."
	msgInvalidJSON  = "Malformed request: body is not valid JSON."
	msgTooMany      = "Too many requests."
	msgEvalFailed   = "Evaluation failed."
	msgBodyTooLarge = "Request body is too large."
)

type messageResponse struct {
	Message string `json:"message"`
}

type evaluateResponse struct {
	Message string       `json:"message"`
	Table   *sheet.Table `json:"table"`
}

// Handler returns the HTTP API: POST /api/evaluate and GET /health, with
// CORS for browser grids.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.Handle("POST /api/evaluate", a.withRateLimit(http.HandlerFunc(a.evaluateHandler)))
	return a.withCORS(a.withLogger(mux))
}

// Serve runs the HTTP server on the configured port until ctx is cancelled,
// then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.config.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	ctx = a.Context(ctx)

	if err := a.connectNotifier(ctx); err != nil {
		ln.Close()
		return err
	}
	defer func() {
		if err := a.publisher.Close(ctx); err != nil {
			a.logger.Warn("Failed to close notifier.", "error", err)
		}
	}()

	a.httpServer = &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.logger.Info("HTTP server starting", "address", fmt.Sprintf("http://%s", ln.Addr()))
	errCh := make(chan error, 1)
	go func() {
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("HTTP server failed unexpectedly", "error", err)
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.shutdown()
}

func (a *App) shutdown() error {
	a.logger.Debug("Closing HTTP server...")
	if a.httpServer == nil {
		a.logger.Debug("HTTP server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down HTTP server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("HTTP server shut down gracefully.")
	return nil
}

// connectNotifier dials the configured socket.io endpoint unless a
// publisher was injected.
func (a *App) connectNotifier(ctx context.Context) error {
	if a.publisher != nil {
		return nil
	}
	if a.config.NotifyURL == "" {
		a.publisher = notify.Noop{}
		return nil
	}
	p, err := notify.Dial(ctx, notify.Options{
		URL:       a.config.NotifyURL,
		Namespace: a.config.NotifyNamespace,
		Event:     a.config.NotifyEvent,
	})
	if err != nil {
		return err
	}
	a.publisher = p
	return nil
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) evaluateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse{Message: msgBodyTooLarge})
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidJSON})
		return
	}

	tbl, msg := decodeTable(body)
	if msg != "" {
		logger.Debug("Rejected evaluation request.", "reason", msg)
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msg})
		return
	}

	out, err := session.Evaluate(ctx, a.sessions, tbl)
	if err != nil {
		if errors.Is(err, sheet.ErrInvalidTable) {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		logger.Error("Evaluation failed.", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msgEvalFailed})
		return
	}

	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, out); err != nil {
			logger.Warn("Failed to publish evaluated table.", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, evaluateResponse{Message: msgReceived, Table: out})
}

// decodeTable parses a request body. The returned message is non-empty when
// the request is malformed.
func decodeTable(body []byte) (*sheet.Table, string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, msgInvalidJSON
	}
	data := bytes.TrimSpace(fields["data"])
	if len(data) == 0 || data[0] != '{' {
		return nil, msgMissingData
	}

	var tbl sheet.Table
	if err := json.Unmarshal(body, &tbl); err != nil {
		return nil, fmt.Sprintf("Malformed request: %v", err)
	}
	return &tbl, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
