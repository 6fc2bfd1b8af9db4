package database

import (
	"database/sql"
	"time"
)

// Write side: zero values are stored as NULL so a snapshot of a sparse
// payload round-trips without inventing ids or timestamps.

func nullID(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}

func nullText(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullTime(v time.Time) sql.NullTime {
	return sql.NullTime{Time: v, Valid: !v.IsZero()}
}

// optional passes a nil pointer through as NULL.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Read side: columns are scanned into pointers and NULL becomes the zero value.
func valueOr[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
