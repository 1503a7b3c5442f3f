// Package docstore is the record store abstraction: a set of named document
// collections supporting insert, equality filters (dotted paths allowed),
// single-field descending order, limits and bulk fetch.
package docstore

import (
	"context"
	"errors"
)

// ErrDuplicateID is returned when inserting a document whose id already exists.
var ErrDuplicateID = errors.New("docstore: duplicate document id")

// Filter is an equality condition on a (possibly dotted) field path.
type Filter struct {
	Field string
	Value any
}

// Eq builds a Filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

// Query selects documents from one collection.
type Query struct {
	Filters []Filter
	// OrderByDesc sorts matches by this field, newest/largest first.
	OrderByDesc string
	// Limit caps the number of results; zero means unlimited.
	Limit int
}

// Document is a fetched record that can be decoded into a model struct.
type Document interface {
	Decode(v any) error
}

// Store is implemented by the mongo, firestore and memory backends.
type Store interface {
	// Insert writes doc under id. The id must also be carried inside doc.
	Insert(ctx context.Context, collection, id string, doc any) error
	// Find returns every document matching q.
	Find(ctx context.Context, collection string, q Query) ([]Document, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Indexer is implemented by backends that can create secondary indexes.
type Indexer interface {
	EnsureIndex(ctx context.Context, collection string, fields ...string) error
}

// FindAll runs q and decodes every match into T.
func FindAll[T any](ctx context.Context, s Store, collection string, q Query) ([]T, error) {
	docs, err := s.Find(ctx, collection, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := d.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FindOne returns the first match of q, or false when nothing matches.
func FindOne[T any](ctx context.Context, s Store, collection string, q Query) (*T, bool, error) {
	q.Limit = 1
	found, err := FindAll[T](ctx, s, collection, q)
	if err != nil || len(found) == 0 {
		return nil, false, err
	}
	return &found[0], true, nil
}
