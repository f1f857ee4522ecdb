package repository

import "errors"

var (
	// ErrNotFound marks a missing project, version, or line item. Callers
	// branch with errors.Is; it is never retried.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness collision, most importantly two
	// writers computing the same version number for one project.
	ErrConflict = errors.New("conflict")
)
