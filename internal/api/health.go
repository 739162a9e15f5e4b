package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/fittrack/pkg/httputil"
)

type HealthResponse struct {
	Status   string     `json:"status"`
	Database string     `json:"database"`
	Pool     *PoolStats `json:"pool,omitempty"`
}

type PoolStats struct {
	Total    int32 `json:"total_conns"`
	Idle     int32 `json:"idle_conns"`
	Acquired int32 `json:"acquired_conns"`
	Max      int32 `json:"max_conns"`
}

type poolStatter interface {
	Stat() *pgxpool.Stat
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok"}
	if s.health == nil {
		resp.Database = "not configured"
		httputil.WriteJSONResponse(w, http.StatusOK, resp)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.health.Ping(ctx); err != nil {
		GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
		resp.Status = "degraded"
		resp.Database = "unreachable"
		httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	if p, ok := s.health.(poolStatter); ok {
		stat := p.Stat()
		resp.Pool = &PoolStats{
			Total:    stat.TotalConns(),
			Idle:     stat.IdleConns(),
			Acquired: stat.AcquiredConns(),
			Max:      stat.MaxConns(),
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}
