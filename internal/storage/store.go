// Package storage provides the line-oriented stores that saved tasks are
// read from and written to. Stores know nothing about the record format.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by ReadLines when nothing has been saved yet.
var ErrNotExist = errors.New("no saved tasks")

// Store reads and writes the full set of persisted lines.
type Store interface {
	// ReadLines returns every stored line in order, or ErrNotExist.
	ReadLines(ctx context.Context) ([]string, error)

	// WriteLines replaces the stored lines with lines.
	WriteLines(ctx context.Context, lines []string) error

	Close() error
}
