// internal/core/db/store.go
package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/solatis/cartorule/internal/types"
)

/*
 * Collection snapshot store.
 *
 * Collections are stored as named documents; every save appends a complete
 * new revision holding the rule collection as a JSON document. Revisions are
 * append-only: the editing model's immutable-snapshot semantics carry over
 * directly, and undo in a host becomes "load an earlier revision".
 *
 * Rules are serialized opaquely. The store attaches no meaning to rule
 * contents, so schema migrations are only needed for the envelope, never for
 * style semantics.
 */

// Collection is the stored envelope for a rule collection.
type Collection struct {
	ID        types.CollectionID `db:"id"`
	Name      string             `db:"name"`
	CreatedAt time.Time          `db:"created_at"`
}

// Revision is one saved snapshot of a collection.
type Revision struct {
	CollectionID types.CollectionID `db:"collection_id"`
	Revision     int64              `db:"revision"`
	CreatedAt    time.Time          `db:"created_at"`
}

// Store persists rule collections.
type Store struct {
	db      *sqlx.DB
	queries *Queries
}

// NewStore wraps an open database handle.
func NewStore(db *sqlx.DB) (*Store, error) {
	q, err := LoadQueries(db)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, queries: q}, nil
}

// CreateCollection registers a new named collection and returns its ID.
func (s *Store) CreateCollection(name string) (types.CollectionID, error) {
	id := types.NewCollectionID()
	_, err := s.queries.Exec("insert-collection", string(id), name, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to create collection: %w", err)
	}
	return id, nil
}

// SaveRevision appends a complete snapshot as the next revision.
func (s *Store) SaveRevision(id types.CollectionID, rules []types.Rule) (int64, error) {
	doc, err := json.Marshal(rules)
	if err != nil {
		return 0, fmt.Errorf("failed to encode rules: %w", err)
	}

	var current sql.NullInt64
	if err := s.queries.Get("max-revision", &current, string(id)); err != nil {
		return 0, fmt.Errorf("failed to query revisions: %w", err)
	}
	next := current.Int64 + 1

	if _, err := s.queries.Exec("insert-revision", string(id), next, string(doc), time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to save revision: %w", err)
	}
	return next, nil
}

// LoadLatest returns the most recent snapshot of a collection.
// Returns types.ErrCollectionNotFound when the collection does not exist or
// has no revisions yet.
func (s *Store) LoadLatest(id types.CollectionID) ([]types.Rule, int64, error) {
	var row struct {
		Revision int64  `db:"revision"`
		Rules    string `db:"rules"`
	}
	if err := s.queries.Get("latest-revision", &row, string(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, types.ErrCollectionNotFound
		}
		return nil, 0, fmt.Errorf("failed to load collection: %w", err)
	}

	var rules []types.Rule
	if err := json.Unmarshal([]byte(row.Rules), &rules); err != nil {
		return nil, 0, fmt.Errorf("failed to decode rules: %w", err)
	}
	return rules, row.Revision, nil
}

// LoadRevision returns one specific snapshot of a collection.
func (s *Store) LoadRevision(id types.CollectionID, revision int64) ([]types.Rule, error) {
	var doc string
	if err := s.queries.Get("get-revision", &doc, string(id), revision); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to load revision: %w", err)
	}

	var rules []types.Rule
	if err := json.Unmarshal([]byte(doc), &rules); err != nil {
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	return rules, nil
}

// ListCollections returns all registered collections, newest first.
func (s *Store) ListCollections() ([]Collection, error) {
	var out []Collection
	if err := s.queries.Select("list-collections", &out); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return out, nil
}

// Revisions returns the revision history of a collection, newest first.
func (s *Store) Revisions(id types.CollectionID) ([]Revision, error) {
	var out []Revision
	if err := s.queries.Select("list-revisions", &out, string(id)); err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	return out, nil
}
