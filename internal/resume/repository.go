// Package resume manages candidate resumes and the candidate records they
// belong to.
package resume

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CandidateStore deletes candidate records.
type CandidateStore interface {
	// DeleteCandidate removes the candidate with id and reports how many
	// rows were deleted.
	DeleteCandidate(ctx context.Context, id int64) (int64, error)
}

// Repository handles candidate database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// DeleteCandidate deletes the candidate row with id.
func (r *Repository) DeleteCandidate(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete candidate %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}
