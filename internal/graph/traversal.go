package graph

import (
	"context"
	"fmt"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
)

// visitState tracks a node's position in a depth-first traversal. The state
// lives in a map local to each call, never on the Course itself, so
// interleaved or retried traversals cannot see stale flags.
type visitState uint8

const (
	stateUnvisited visitState = iota
	stateOnStack              // currently on the active recursion path
	stateDone                 // fully explored, known cycle-free
)

// HasCycle reports whether a directed cycle is reachable from startKey by
// following prerequisite edges. It fails with catalog.ErrNotFound when
// startKey is absent.
//
// The traversal is a depth-first search: an edge into a node that is still
// on the recursion stack is a back-edge and answers true immediately; an
// edge into a finished node is skipped. Prerequisite keys that resolve to
// no course are treated as leaves.
func (e *Engine) HasCycle(ctx context.Context, startKey string) (bool, error) {
	start, ok := e.catalog.Find(startKey)
	if !ok {
		return false, fmt.Errorf("%w: %q", catalog.ErrNotFound, startKey)
	}

	state := make(map[string]visitState)

	var visit func(course *catalog.Course) bool
	visit = func(course *catalog.Course) bool {
		state[course.Key] = stateOnStack

		for _, prereqKey := range course.Prerequisites {
			prereq, ok := e.catalog.Find(prereqKey)
			if !ok {
				continue // dangling reference, nothing to descend into
			}
			switch state[prereqKey] {
			case stateOnStack:
				return true
			case stateDone:
				continue
			}
			if visit(prereq) {
				return true
			}
		}

		state[course.Key] = stateDone
		return false
	}

	cyclic := visit(start)
	if cyclic {
		ctxlog.FromContext(ctx).Debug("cycle found in prerequisite graph", "start", startKey)
	}
	return cyclic, nil
}

// PrerequisiteOrder returns every course in the prerequisite closure of
// startKey (startKey itself excluded) in an order where each course appears
// after all of its own prerequisites, direct or transitive. It fails with
// catalog.ErrNotFound when startKey is absent and with ErrCycle when the
// reachable graph is cyclic. A course with no prerequisites yields an empty
// slice. Dangling prerequisite keys are skipped.
func (e *Engine) PrerequisiteOrder(ctx context.Context, startKey string) ([]*catalog.Course, error) {
	start, ok := e.catalog.Find(startKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrNotFound, startKey)
	}

	// Linearizing a cyclic graph would loop or drop edges, so the cycle
	// check always runs first.
	cyclic, err := e.HasCycle(ctx, startKey)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, fmt.Errorf("%w: %q", ErrCycle, startKey)
	}

	visited := make(map[string]bool)
	order := make([]*catalog.Course, 0, len(start.Prerequisites))

	// Post-order DFS: a course is appended only after all of its
	// prerequisites have been appended, so the result is prerequisites-first.
	var visit func(course *catalog.Course)
	visit = func(course *catalog.Course) {
		visited[course.Key] = true
		for _, prereqKey := range course.Prerequisites {
			prereq, ok := e.catalog.Find(prereqKey)
			if !ok {
				continue
			}
			if !visited[prereqKey] {
				visit(prereq)
			}
		}
		order = append(order, course)
	}

	for _, prereqKey := range start.Prerequisites {
		prereq, ok := e.catalog.Find(prereqKey)
		if !ok {
			continue
		}
		if !visited[prereqKey] {
			visit(prereq)
		}
	}

	ctxlog.FromContext(ctx).Debug("prerequisite order computed",
		"start", startKey,
		"courses", len(order),
	)
	return order, nil
}
