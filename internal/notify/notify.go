// Package notify forwards errors caught by HTTP handlers to operators.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xblinx/attachments/internal/logging"
)

// Notifier receives every error a handler converts into an ERROR response.
type Notifier interface {
	Notify(r *http.Request, err error)
}

// Func adapts a plain function to Notifier.
type Func func(r *http.Request, err error)

// Notify calls f.
func (f Func) Notify(r *http.Request, err error) { f(r, err) }

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

// Notify forwards to every notifier.
func (m Multi) Notify(r *http.Request, err error) {
	for _, n := range m {
		n.Notify(r, err)
	}
}

// Log writes the error to the process logger.
type Log struct{}

// Notify logs err with the request coordinates.
func (Log) Notify(r *http.Request, err error) {
	logging.Error("server error",
		"method", r.Method,
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"request_id", chiMiddleware.GetReqID(r.Context()),
		"error", err,
	)
}

// Recorder persists errors to the server_errors table.
type Recorder struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewRecorder creates a Recorder backed by db.
func NewRecorder(db *pgxpool.Pool) *Recorder {
	return &Recorder{db: db, timeout: 5 * time.Second}
}

// Notify inserts a row describing err. The insert uses its own deadline so a
// cancelled request still gets recorded.
func (rec *Recorder) Notify(r *http.Request, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), rec.timeout)
	defer cancel()

	id := uuid.NewString()
	if ierr := rec.insert(ctx, id, r, err); ierr != nil {
		logging.Warn("record server error failed", "incident", id, "error", ierr)
	}
}

func (rec *Recorder) insert(ctx context.Context, id string, r *http.Request, err error) error {
	_, ierr := rec.db.Exec(ctx,
		`INSERT INTO server_errors (id, request_id, method, path, query, message)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, chiMiddleware.GetReqID(r.Context()), r.Method, r.URL.Path, r.URL.RawQuery, err.Error(),
	)
	if ierr != nil {
		return fmt.Errorf("insert server error: %w", ierr)
	}
	return nil
}
