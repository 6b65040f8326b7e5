package catalog

import (
	"slices"
)

// Course is one catalog entry. Key, Title and Prerequisites are set at
// ingestion and never change afterwards. Dependents is derived state owned
// by the graph engine: it is cleared and recomputed on every rebuild and
// must never be treated as input.
type Course struct {
	Key           string
	Title         string
	Prerequisites []string
	Dependents    KeySet
}

// NewCourse constructs an immutable course record.
func NewCourse(key, title string, prerequisites ...string) *Course {
	return &Course{
		Key:           key,
		Title:         title,
		Prerequisites: prerequisites,
		Dependents:    make(KeySet),
	}
}

// KeySet is a set of course keys.
type KeySet map[string]struct{}

// Add inserts a key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether the key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the set's keys in ascending lexicographic order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
