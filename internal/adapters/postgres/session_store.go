package postgres

// Package postgres provides a Postgres-backed session store for deployments
// that already run Postgres and do not want a Redis dependency.

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	token      TEXT NOT NULL,
	user_id    BIGINT NOT NULL,
	email      TEXT NOT NULL,
	role       TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);
`

// SessionStore persists sessions in a sessions table. Expired rows are
// filtered on read and reaped periodically via DeleteExpired.
type SessionStore struct {
	pool *pgxpool.Pool
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a Postgres session store on the given pool.
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// EnsureSchema creates the sessions table and its index if missing.
func (s *SessionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure sessions schema: %w", err)
	}
	return nil
}

// Save upserts the session row. Resume re-saves the session under the same
// ID after refreshing the identity, so plain INSERT would conflict.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	const query = `
		INSERT INTO sessions (id, token, user_id, email, role, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			token      = EXCLUDED.token,
			user_id    = EXCLUDED.user_id,
			email      = EXCLUDED.email,
			role       = EXCLUDED.role,
			expires_at = EXCLUDED.expires_at`

	_, err := s.pool.Exec(ctx, query,
		sess.ID, sess.Token, sess.UserID, sess.Email, string(sess.Role), sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save session: %w", classify(err))
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	const query = `
		SELECT id, token, user_id, email, role, expires_at
		FROM sessions
		WHERE id = $1 AND expires_at > now()`

	var (
		sess domainauth.Session
		role string
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&sess.ID, &sess.Token, &sess.UserID, &sess.Email, &role, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.Session{}, ports.ErrSessionNotFound
		}
		return domainauth.Session{}, fmt.Errorf("get session: %w", classify(err))
	}
	sess.Role = domainauth.Role(role)
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", classify(err))
	}
	return nil
}

// DeleteExpired removes rows past their expiry and returns the count. The
// reaper in the bootstrap calls this on a ticker.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", classify(err))
	}
	return tag.RowsAffected(), nil
}

// classify turns low-level Postgres errors into something actionable in
// logs. A missing table means EnsureSchema was skipped.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return fmt.Errorf("sessions table missing, run schema setup: %w", err)
	}
	return err
}

// Healthy reports whether the pool can reach the database within d.
func (s *SessionStore) Healthy(ctx context.Context, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return s.pool.Ping(ctx)
}
