// Package graph derives the prerequisite dependency graph from the catalog
// and answers structural questions about it: reverse-edge (dependent)
// computation, cycle detection, and a prerequisites-first linearization.
//
// The graph is never stored separately. Forward edges are each course's
// Prerequisites list; reverse edges are the Dependents sets that Rebuild
// recomputes. All traversal state is local to a single call.
package graph
