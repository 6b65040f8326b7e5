package graph

import (
	"context"
	"errors"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
)

// ErrCycle is returned by PrerequisiteOrder when the prerequisite graph
// reachable from the start key contains a cycle.
var ErrCycle = errors.New("cycle detected in prerequisites")

// Engine derives and queries the prerequisite dependency graph. It is a
// view over the catalog: edges are key-to-key relations between courses in
// the one arena, never a second copy of the records.
//
// Engine mutates courses only inside Rebuild. In a concurrent host,
// Rebuild must not overlap with any other Engine or Catalog call.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates a graph engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Rebuild recomputes every course's Dependents set from scratch: the set is
// cleared, then for each course and each of its prerequisites that resolves
// to a catalog entry, the course's key is added to that prerequisite's
// Dependents. Prerequisite keys with no matching course are skipped here;
// Validate reports them.
//
// Rebuild is idempotent: with no catalog mutation in between, consecutive
// calls produce identical edge sets.
func (e *Engine) Rebuild(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	for course := range e.catalog.All() {
		course.Dependents = make(catalog.KeySet)
	}

	edges := 0
	for course := range e.catalog.All() {
		for _, prereqKey := range course.Prerequisites {
			prereq, ok := e.catalog.Find(prereqKey)
			if !ok {
				continue
			}
			prereq.Dependents.Add(course.Key)
			edges++
		}
	}

	logger.Debug("dependency graph rebuilt",
		"courses", e.catalog.Len(),
		"edges", edges,
	)
}
