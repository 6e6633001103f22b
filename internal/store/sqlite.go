package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/ykvlv/pomodoro-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// Get returns the user's timer, or nil if there is none.
func (r *SQLiteRepo) Get(ctx context.Context, user string) (*domain.Timer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_name, started_at, length_minutes, notify_target
		FROM timers
		WHERE user_name = ?`,
		user,
	)
	t, err := scanTimer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get timer %s: %w", user, err)
	}
	return t, nil
}

// Set replaces the user's timer. A nil timer deletes it.
func (r *SQLiteRepo) Set(ctx context.Context, user string, t *domain.Timer) error {
	if t == nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM timers WHERE user_name = ?`, user); err != nil {
			return fmt.Errorf("delete timer %s: %w", user, err)
		}
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO timers (user_name, started_at, length_minutes, notify_target)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_name) DO UPDATE SET
			started_at     = excluded.started_at,
			length_minutes = excluded.length_minutes,
			notify_target  = excluded.notify_target`,
		user, toNullMillis(t.StartedAt), t.LengthMinutes, t.NotifyTarget,
	)
	if err != nil {
		return fmt.Errorf("upsert timer %s: %w", user, err)
	}
	return nil
}

// List returns all stored timers ordered by user.
func (r *SQLiteRepo) List(ctx context.Context) ([]domain.Timer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_name, started_at, length_minutes, notify_target
		FROM timers
		ORDER BY user_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer rows.Close()

	var res []domain.Timer
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		res = append(res, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTimer(s scanner) (*domain.Timer, error) {
	var (
		user      string
		startedNS sql.NullInt64
		lengthNF  sql.NullFloat64
		target    string
	)
	if err := s.Scan(&user, &startedNS, &lengthNF, &target); err != nil {
		return nil, err
	}
	return &domain.Timer{
		User:          user,
		StartedAt:     fromNullMillis(startedNS),
		LengthMinutes: fromNullFloat(lengthNF),
		NotifyTarget:  target,
	}, nil
}

