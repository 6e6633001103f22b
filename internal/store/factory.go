package store

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Backend identifies the timer store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend Backend
	DBPath  string
	Redis   RedisConfig
}

// Open creates the Repo for opts.Backend. An empty backend means SQLite.
func Open(ctx context.Context, opts Options) (Repo, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		r, err := OpenSQLite(ctx, opts.DBPath)
		if err != nil {
			return nil, err
		}
		return r, nil
	case BackendRedis:
		r, err := OpenRedis(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}
