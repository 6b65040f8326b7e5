package catalog

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrInvalidKey is returned by Insert when a course key fails the
	// catalog's key format check.
	ErrInvalidKey = errors.New("invalid course key")

	// ErrDuplicateKey is returned by Insert when a course with the same key
	// is already present.
	ErrDuplicateKey = errors.New("duplicate course key")

	// ErrNotFound is returned by operations that require an existing course
	// key, such as graph traversals. Find does not use it: an absent key is
	// not an error there.
	ErrNotFound = errors.New("course not found")
)

// Catalog is an ordered, uniquely-keyed store of courses. It owns its
// courses exclusively: a map provides O(1) lookup by key and a sorted key
// slice preserves ascending lexicographic enumeration order regardless of
// insertion order.
//
// Catalog is not safe for concurrent use. A graph rebuild must not overlap
// with reads.
type Catalog struct {
	keyFormat KeyFormat
	courses   map[string]*Course
	keys      []string
}

// New creates an empty catalog using StandardKeyFormat.
func New() *Catalog {
	return NewWithKeyFormat(StandardKeyFormat{})
}

// NewWithKeyFormat creates an empty catalog that validates inserted keys
// with the given format.
func NewWithKeyFormat(format KeyFormat) *Catalog {
	return &Catalog{
		keyFormat: format,
		courses:   make(map[string]*Course),
	}
}

// Insert adds a course to the catalog. It fails with ErrInvalidKey if the
// key does not satisfy the catalog's key format, and with ErrDuplicateKey
// if a course with the same key already exists. A failed insert leaves the
// catalog exactly as it was.
func (c *Catalog) Insert(course *Course) error {
	if course == nil {
		return errors.New("cannot insert nil course")
	}
	if err := c.keyFormat.Validate(course.Key); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidKey, course.Key, err)
	}
	if _, ok := c.courses[course.Key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, course.Key)
	}
	if course.Dependents == nil {
		course.Dependents = make(KeySet)
	}

	c.courses[course.Key] = course
	i, _ := slices.BinarySearch(c.keys, course.Key)
	c.keys = slices.Insert(c.keys, i, course.Key)
	return nil
}

// Find returns the course stored under key, or (nil, false) when the key is
// absent. Absence is not an error.
func (c *Catalog) Find(key string) (*Course, bool) {
	course, ok := c.courses[key]
	return course, ok
}

// All returns a restartable sequence over every course in ascending
// lexicographic key order. Iteration has no side effects and may be stopped
// early.
func (c *Catalog) All() iter.Seq[*Course] {
	return func(yield func(*Course) bool) {
		for _, key := range c.keys {
			if !yield(c.courses[key]) {
				return
			}
		}
	}
}

// Keys returns a copy of all course keys in ascending order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}
