package models

import "errors"

// Domain-specific errors shared by the lookup and storage layers
var (
	// ErrNotFound indicates an id or key that has no entry and no fallback value
	ErrNotFound = errors.New("not found")

	// ErrUnknownMergeStatus indicates a merge status outside the fixed set
	ErrUnknownMergeStatus = errors.New("unknown merge status")
)
