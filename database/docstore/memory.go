package docstore

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MemoryStore is an in-process backend. Documents are kept BSON-encoded so
// field paths and decoding behave as they do against MongoDB.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]memoryEntry
}

type memoryEntry struct {
	id  string
	raw bson.Raw
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]memoryEntry)}
}

func (s *MemoryStore) Insert(_ context.Context, collection, id string, doc any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.collections[collection] {
		if e.id == id {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
	}
	s.collections[collection] = append(s.collections[collection], memoryEntry{id: id, raw: raw})
	return nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, q Query) ([]Document, error) {
	want := make([]bson.RawValue, len(q.Filters))
	for i, f := range q.Filters {
		t, data, err := bson.MarshalValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("docstore: encode filter %s: %w", f.Field, err)
		}
		want[i] = bson.RawValue{Type: t, Value: data}
	}

	s.mu.RLock()
	var matched []bson.Raw
	for _, e := range s.collections[collection] {
		if matches(e.raw, q.Filters, want) {
			matched = append(matched, e.raw)
		}
	}
	s.mu.RUnlock()

	if q.OrderByDesc != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a, aok := lookup(matched[i], q.OrderByDesc)
			b, bok := lookup(matched[j], q.OrderByDesc)
			if !aok || !bok {
				return aok && !bok
			}
			return compareRaw(a, b) > 0
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	docs := make([]Document, 0, len(matched))
	for _, raw := range matched {
		docs = append(docs, mongoDocument{raw: raw})
	}
	return docs, nil
}

// Len reports how many documents a collection holds.
func (s *MemoryStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }

func lookup(raw bson.Raw, path string) (bson.RawValue, bool) {
	v, err := raw.LookupErr(strings.Split(path, ".")...)
	if err != nil {
		return bson.RawValue{}, false
	}
	return v, true
}

func matches(raw bson.Raw, filters []Filter, want []bson.RawValue) bool {
	for i, f := range filters {
		got, ok := lookup(raw, f.Field)
		if !ok || !equalRaw(got, want[i]) {
			return false
		}
	}
	return true
}

func equalRaw(a, b bson.RawValue) bool {
	if isNumber(a.Type) && isNumber(b.Type) {
		return compareRaw(a, b) == 0
	}
	return a.Type == b.Type && bytes.Equal(a.Value, b.Value)
}

func isNumber(t bsontype.Type) bool {
	return t == bsontype.Int32 || t == bsontype.Int64 || t == bsontype.Double
}

func asFloat(v bson.RawValue) float64 {
	switch v.Type {
	case bsontype.Int32:
		return float64(v.Int32())
	case bsontype.Int64:
		return float64(v.Int64())
	case bsontype.Double:
		return v.Double()
	}
	return 0
}

func compareRaw(a, b bson.RawValue) int {
	switch {
	case isNumber(a.Type) && isNumber(b.Type):
		return cmpOrdered(asFloat(a), asFloat(b))
	case a.Type == bsontype.DateTime && b.Type == bsontype.DateTime:
		return cmpOrdered(a.DateTime(), b.DateTime())
	case a.Type == bsontype.String && b.Type == bsontype.String:
		return strings.Compare(a.StringValue(), b.StringValue())
	}
	return 0
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
