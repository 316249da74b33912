// Package store persists built skeletons so they can be re-plotted or
// re-exported without rebuilding. Two backends are provided: an
// in-memory store for tests and short-lived tools, and a SQLite store
// for durable catalogs.
//
// Skeleton geometry is stored as a CBOR blob; only catalog metadata
// (name, counts, timestamps) is kept queryable.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/turtle3d-xyz/go-turtle3d/skeleton"
)

// ErrNotFound is returned when no skeleton exists under the given ID.
var ErrNotFound = errors.New("skeleton not found")

// Meta is the catalog entry for a stored skeleton.
type Meta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Strands   int       `json:"strands"`
	Points    int       `json:"points"`
	Props     int       `json:"props"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence interface for skeletons. Implementations
// assign IDs on save and are safe for concurrent use.
type Store interface {
	// Save persists a skeleton under a fresh ID and returns its
	// catalog entry.
	Save(ctx context.Context, name string, skel *skeleton.Skeleton) (Meta, error)

	// Load retrieves a skeleton and its catalog entry by ID.
	Load(ctx context.Context, id string) (*skeleton.Skeleton, Meta, error)

	// List returns all catalog entries, newest first.
	List(ctx context.Context) ([]Meta, error)

	// Delete removes a skeleton by ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// metaFor builds a catalog entry for a skeleton about to be saved.
func metaFor(id, name string, skel *skeleton.Skeleton) Meta {
	return Meta{
		ID:        id,
		Name:      name,
		Strands:   len(skel.Strands),
		Points:    skel.PointCount(),
		Props:     len(skel.Props),
		CreatedAt: time.Now().UTC(),
	}
}
