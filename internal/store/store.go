package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrCharacterNotFound indicates the referenced character does not exist.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrLocationNotFound indicates the referenced location does not exist.
	ErrLocationNotFound = errors.New("location not found")
	// ErrEpisodeNotFound indicates the referenced episode does not exist.
	ErrEpisodeNotFound = errors.New("episode not found")
	// ErrFavoriteExists signals the (user, target) pair is already favorited.
	ErrFavoriteExists = errors.New("already in favorites")
)

const defaultQueryTimeout = 5 * time.Second

// Store provides persistence backed by Postgres.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, timeout: defaultQueryTimeout}
}

// NewWithTimeout sets up a Store with a custom per-statement timeout.
func NewWithTimeout(db *sql.DB, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &Store{db: db, timeout: timeout}
}

// opCtx bounds a single store operation so no persistence call can block
// indefinitely.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// fkViolationConstraint returns the violated foreign key constraint name,
// or "" when the error is not a foreign key violation.
func fkViolationConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return pgErr.ConstraintName
	}
	return ""
}
