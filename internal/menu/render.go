package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/graph"
)

// PrintCourseList writes every course in the catalog, one per line, in
// ascending key order.
func PrintCourseList(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, headerStyle.Render("Course Catalog"))
	if cat.Len() == 0 {
		fmt.Fprintln(w, subtleStyle.Render("(no courses loaded)"))
		return
	}
	for course := range cat.All() {
		fmt.Fprintf(w, "%s, %s\n", course.Key, course.Title)
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d courses", cat.Len())))
}

// PrintCourseInfo writes one course's title, prerequisites and dependents.
func PrintCourseInfo(w io.Writer, course *catalog.Course) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s, %s", course.Key, course.Title)))

	if len(course.Prerequisites) == 0 {
		fmt.Fprintln(w, "Prerequisites: none")
	} else {
		fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(course.Prerequisites, ", "))
	}

	dependents := course.Dependents.Sorted()
	if len(dependents) == 0 {
		fmt.Fprintln(w, "Required by: none")
	} else {
		fmt.Fprintf(w, "Required by: %s\n", strings.Join(dependents, ", "))
	}
}

// PrintPlan writes a numbered prerequisites-first ordering for a course.
func PrintPlan(w io.Writer, key string, plan []*catalog.Course) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Prerequisite plan for %s", key)))
	if len(plan) == 0 {
		fmt.Fprintln(w, successStyle.Render("No prerequisites required."))
		return
	}
	for i, course := range plan {
		fmt.Fprintf(w, "%d. %s, %s\n", i+1, course.Key, course.Title)
	}
}

// PrintCycleResult writes the outcome of a cycle check for one course.
func PrintCycleResult(w io.Writer, key string, cyclic bool) {
	if cyclic {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Circular prerequisite dependency detected for %s.", key)))
	} else {
		fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("No prerequisite cycles reachable from %s.", key)))
	}
}

// PrintViolations writes a validation report, one violation per line.
func PrintViolations(w io.Writer, violations []graph.Violation) {
	fmt.Fprintln(w, headerStyle.Render("Validation Report"))
	if len(violations) == 0 {
		fmt.Fprintln(w, successStyle.Render("No violations found."))
		return
	}
	for _, v := range violations {
		fmt.Fprintln(w, warningStyle.Render(v.String()))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d violations", len(violations))))
}

// PrintError writes a styled error line.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}
