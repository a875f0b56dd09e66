// Package store is the single handle to the hosted data store. Handlers never
// talk to the store directly; repositories select whole tables and insert
// rows through this interface.
package store

import (
	"context"
	"time"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/metrics"
)

// Store reads and writes whole rows of named tables.
type Store interface {
	// SelectAll decodes every row of table into dest, a pointer to a slice.
	SelectAll(ctx context.Context, table string, dest any) error
	// Insert writes one row; row is a pointer to a struct.
	Insert(ctx context.Context, table string, row any) error
	Ping(ctx context.Context) error
	Name() string
}

type instrumented struct {
	next Store
}

// Instrument records an operation metric for each call to s.
func Instrument(s Store) Store {
	return &instrumented{next: s}
}

func (s *instrumented) SelectAll(ctx context.Context, table string, dest any) error {
	err := s.next.SelectAll(ctx, table, dest)
	metrics.RecordStoreOperation(s.next.Name(), "select", table, err)
	return err
}

func (s *instrumented) Insert(ctx context.Context, table string, row any) error {
	err := s.next.Insert(ctx, table, row)
	metrics.RecordStoreOperation(s.next.Name(), "insert", table, err)
	return err
}

func (s *instrumented) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumented) Name() string {
	return s.next.Name()
}

const defaultTimeout = 30 * time.Second
