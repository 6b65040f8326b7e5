// Package catalog implements the ordered, uniquely-keyed course store.
//
// The catalog is the single arena for course records: every other component
// refers to courses by key only and resolves them here. Insertion validates
// the key format and rejects duplicates; enumeration always yields courses
// in ascending lexicographic key order, whatever the insertion order was.
//
// The catalog performs no I/O and holds no derived graph state of its own;
// the Dependents field on each Course belongs to the graph engine.
package catalog
