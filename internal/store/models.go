package store

import (
	"database/sql"
	"time"
)

// Start times are stored as unix milliseconds; a zero time is stored as NULL
// so a malformed record survives a round trip as malformed.
func toNullMillis(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func fromNullMillis(ns sql.NullInt64) time.Time {
	if !ns.Valid || ns.Int64 == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ns.Int64)
}

func fromNullFloat(nf sql.NullFloat64) float64 {
	if !nf.Valid {
		return 0
	}
	return nf.Float64
}
