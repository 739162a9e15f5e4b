package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
	retention     = 30 * 24 * time.Hour
)

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type systemLog struct {
	ID        uuid.UUID
	Timestamp time.Time
	Level     string
	Message   string
	RequestID *string
	UserID    *string
	Error     *string
	Extra     []byte
}

// PGHandler batches ERROR+ records into the system_logs table. Raw model
// output that failed to parse ends up here for diagnosis.
type PGHandler struct {
	conn   Execer
	attrs  []slog.Attr
	state  *pgState
	ticker *time.Ticker
}

type pgState struct {
	mu     sync.Mutex
	buffer []systemLog
	done   chan struct{}
	wg     sync.WaitGroup
	// failed inserts are reported here, not through slog
	fallback io.Writer
}

func NewPGHandler(conn Execer) *PGHandler {
	h := &PGHandler{
		conn: conn,
		state: &pgState{
			buffer:   make([]systemLog, 0, batchSize),
			done:     make(chan struct{}),
			fallback: os.Stderr,
		},
		ticker: time.NewTicker(flushInterval),
	}
	h.state.wg.Add(1)
	go h.flushLoop()
	return h
}

// WithFallback redirects flush failures, stderr by default
func (h *PGHandler) WithFallback(w io.Writer) *PGHandler {
	h.state.mu.Lock()
	h.state.fallback = w
	h.state.mu.Unlock()
	return h
}

func (h *PGHandler) flushLoop() {
	defer h.state.wg.Done()
	for {
		select {
		case <-h.ticker.C:
			h.Flush()
		case <-h.state.done:
			h.Flush()
			return
		}
	}
}

func (h *PGHandler) Flush() {
	h.state.mu.Lock()
	if len(h.state.buffer) == 0 {
		h.state.mu.Unlock()
		return
	}
	batch := h.state.buffer
	fallback := h.state.fallback
	h.state.buffer = make([]systemLog, 0, batchSize)
	h.state.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, entry := range batch {
		_, err := h.conn.Exec(ctx,
			`INSERT INTO system_logs (id, ts, level, message, request_id, user_id, error, extra) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			entry.ID, entry.Timestamp, entry.Level, entry.Message, entry.RequestID, entry.UserID, entry.Error, entry.Extra,
		)
		if err != nil {
			// Not through slog, it would come back here
			fmt.Fprintln(fallback, "failed to flush system log: "+err.Error())
		}
	}
}

// Stop flushes what is buffered and stops the background loop
func (h *PGHandler) Stop() error {
	h.ticker.Stop()
	close(h.state.done)
	h.state.wg.Wait()
	return nil
}

// Enabled only handles ERROR and above.
func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := systemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}
	extra := make(map[string]any)
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			s := a.Value.String()
			entry.RequestID = &s
		case "uid":
			s := a.Value.String()
			entry.UserID = &s
		case "error":
			s := a.Value.String()
			entry.Error = &s
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)
	if len(extra) > 0 {
		if b, err := sonic.Marshal(extra); err == nil {
			entry.Extra = b
		}
	}

	h.state.mu.Lock()
	h.state.buffer = append(h.state.buffer, entry)
	needFlush := len(h.state.buffer) >= batchSize
	h.state.mu.Unlock()

	if needFlush {
		go h.Flush()
	}
	return nil
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PGHandler{conn: h.conn, attrs: merged, state: h.state, ticker: h.ticker}
}

func (h *PGHandler) WithGroup(name string) slog.Handler {
	return h
}

// StartCleanup deletes system logs older than the retention window once a day.
func StartCleanup(conn Execer, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				ct, err := conn.Exec(ctx, `DELETE FROM system_logs WHERE ts < $1;`, time.Now().Add(-retention))
				cancel()
				if err != nil {
					slog.Warn("log cleanup failed", slog.String("err", err.Error()))
				} else if ct.RowsAffected() > 0 {
					slog.Info("log cleanup completed", slog.Int64("deleted", ct.RowsAffected()))
				}
			case <-done:
				return
			}
		}
	}()
}
