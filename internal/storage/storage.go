// Package storage is the persistence gateway: the only place the rest of the
// bot reads or writes the database. Operations take an injected sqlx handle,
// run a single statement each, and report missing rows through ErrNotFound
// instead of collapsing them into faults.
package storage

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound reports that the requested row does not exist. Callers compare
// with errors.Is to tell "nothing to do" apart from a real storage fault.
var ErrNotFound = errors.New("storage: not found")

// Store executes gateway operations over a shared database handle.
type Store struct {
	db *sqlx.DB
}

// New wraps an already connected database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}
