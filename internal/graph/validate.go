package graph

import (
	"context"
	"fmt"

	"github.com/vk/courseplan/internal/ctxlog"
)

// ViolationKind classifies a prerequisite list defect.
type ViolationKind int

const (
	// SelfReference means a course lists itself as a prerequisite.
	SelfReference ViolationKind = iota
	// DuplicatePrerequisite means a key appears more than once in one
	// course's prerequisite list.
	DuplicatePrerequisite
	// UnknownPrerequisite means a prerequisite key resolves to no course in
	// the catalog.
	UnknownPrerequisite
)

func (k ViolationKind) String() string {
	switch k {
	case SelfReference:
		return "self-reference"
	case DuplicatePrerequisite:
		return "duplicate prerequisite"
	case UnknownPrerequisite:
		return "unknown prerequisite"
	default:
		return "unknown violation"
	}
}

// Violation is one defect found in one course's prerequisite list.
type Violation struct {
	CourseKey       string
	PrerequisiteKey string
	Kind            ViolationKind
}

func (v Violation) String() string {
	return fmt.Sprintf("course %s: %s %q", v.CourseKey, v.Kind, v.PrerequisiteKey)
}

// Validate checks every course's prerequisite list and returns all
// violations found, in catalog key order. A defective course never stops
// validation of the others, and violations are deliberately non-fatal: a
// catalog with some bad records still answers queries for the good ones.
//
// Note the split policy on unresolvable prerequisites: traversals skip them
// silently, while Validate reports them as UnknownPrerequisite.
func (e *Engine) Validate(ctx context.Context) []Violation {
	var violations []Violation

	for course := range e.catalog.All() {
		seen := make(map[string]bool, len(course.Prerequisites))
		for _, prereqKey := range course.Prerequisites {
			if prereqKey == course.Key {
				violations = append(violations, Violation{
					CourseKey:       course.Key,
					PrerequisiteKey: prereqKey,
					Kind:            SelfReference,
				})
			}
			if seen[prereqKey] {
				violations = append(violations, Violation{
					CourseKey:       course.Key,
					PrerequisiteKey: prereqKey,
					Kind:            DuplicatePrerequisite,
				})
				continue
			}
			seen[prereqKey] = true
			if _, ok := e.catalog.Find(prereqKey); !ok {
				violations = append(violations, Violation{
					CourseKey:       course.Key,
					PrerequisiteKey: prereqKey,
					Kind:            UnknownPrerequisite,
				})
			}
		}
	}

	ctxlog.FromContext(ctx).Debug("catalog validated", "violations", len(violations))
	return violations
}
