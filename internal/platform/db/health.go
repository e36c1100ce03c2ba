package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/docdor/docdor/internal/platform/docstore"
)

// PoolStats represents database connection pool statistics.
type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
	Healthy         bool   `json:"healthy"`
}

// GetPoolStats returns connection pool statistics.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
		Healthy:         stat.TotalConns() > 0,
	}
}

// StatusReport is the shape of the /test diagnostics endpoint: a quick
// backend-and-database availability summary for frontend tooling.
type StatusReport struct {
	Backend          string     `json:"backend"`
	Database         string     `json:"database"`
	DatabaseURL      string     `json:"database_url"`
	DatabaseName     string     `json:"database_name"`
	ConnectionStatus string     `json:"connection_status"`
	Collections      []string   `json:"collections"`
	Pool             *PoolStats `json:"pool,omitempty"`
}

// StatusHandler returns the handler for the /test diagnostics endpoint. It
// pings the store and lists up to ten collection names. Failures are
// reported inside the body rather than as an error status: the endpoint
// exists to describe availability, not to enforce it.
func StatusHandler(pool *pgxpool.Pool, store docstore.Store, databaseURL, databaseName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		report := StatusReport{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      "not set",
			DatabaseName:     "not set",
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}
		if databaseURL != "" {
			report.DatabaseURL = "set"
		}
		if databaseName != "" {
			report.DatabaseName = "set"
		}

		if err := store.Ping(ctx); err != nil {
			report.Database = "error: " + err.Error()
			return c.JSON(http.StatusOK, report)
		}
		report.Database = "available"
		report.ConnectionStatus = "connected"
		if pool != nil {
			report.Pool = GetPoolStats(pool)
		}

		names, err := store.Collections(ctx)
		if err != nil {
			report.Database = "connected but error: " + err.Error()
			return c.JSON(http.StatusOK, report)
		}
		if len(names) > 10 {
			names = names[:10]
		}
		report.Collections = names
		report.Database = "connected and working"

		return c.JSON(http.StatusOK, report)
	}
}
