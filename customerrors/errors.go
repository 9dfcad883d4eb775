package customerrors

import "errors"

var (
	ErrClientColumnMissing = errors.New("no resolvable CLIENT column in provider schema")
	ErrEmptySource         = errors.New("provider returned no deals")
	ErrNoTradingWindow     = errors.New("no trading window available")
	ErrSnapshotNotFound    = errors.New("no dashboard snapshot stored")
)
