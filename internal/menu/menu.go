package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
	"github.com/vk/courseplan/internal/graph"
)

// Menu is the interactive prompt loop. All input and output goes through
// the injected reader and writer, so the loop is fully testable and the
// core stays free of console concerns.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *catalog.Catalog
	engine  *graph.Engine
}

// New creates a menu over an already-loaded catalog and its graph engine.
func New(in io.Reader, out io.Writer, cat *catalog.Catalog, eng *graph.Engine) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: cat,
		engine:  eng,
	}
}

// Run drives the prompt loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for {
		m.printOptions()

		choice, ok := m.readLine("Enter choice: ")
		if !ok {
			// Input exhausted; treat like a clean exit.
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		logger.Debug("menu choice entered", "choice", choice)

		switch choice {
		case "1":
			PrintCourseList(m.out, m.catalog)
		case "2":
			m.courseInfo(ctx)
		case "3":
			m.prerequisitePlan(ctx)
		case "4":
			m.cycleCheck(ctx)
		case "5":
			PrintViolations(m.out, m.engine.Validate(ctx))
		case "9":
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		default:
			PrintError(m.out, fmt.Sprintf("%s is not a valid option.", choice))
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, headerStyle.Render("Course Planner"))
	fmt.Fprintln(m.out, "  1. Print course list")
	fmt.Fprintln(m.out, "  2. Print course information")
	fmt.Fprintln(m.out, "  3. Print prerequisite plan")
	fmt.Fprintln(m.out, "  4. Check for prerequisite cycles")
	fmt.Fprintln(m.out, "  5. Validate catalog")
	fmt.Fprintln(m.out, "  9. Exit")
}

// readLine prompts and reads one trimmed input line. The second return is
// false when input is exhausted.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) courseInfo(ctx context.Context) {
	key, ok := m.readLine("Course key: ")
	if !ok || key == "" {
		return
	}
	course, found := m.catalog.Find(key)
	if !found {
		PrintError(m.out, fmt.Sprintf("Course %s not found.", key))
		return
	}
	PrintCourseInfo(m.out, course)
}

func (m *Menu) prerequisitePlan(ctx context.Context) {
	key, ok := m.readLine("Course key: ")
	if !ok || key == "" {
		return
	}
	plan, err := m.engine.PrerequisiteOrder(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			PrintError(m.out, fmt.Sprintf("Course %s not found.", key))
		case errors.Is(err, graph.ErrCycle):
			PrintError(m.out, fmt.Sprintf("Circular prerequisite dependency detected for %s.", key))
		default:
			PrintError(m.out, err.Error())
		}
		return
	}
	PrintPlan(m.out, key, plan)
}

func (m *Menu) cycleCheck(ctx context.Context) {
	key, ok := m.readLine("Course key: ")
	if !ok || key == "" {
		return
	}
	cyclic, err := m.engine.HasCycle(ctx, key)
	if err != nil {
		PrintError(m.out, fmt.Sprintf("Course %s not found.", key))
		return
	}
	PrintCycleResult(m.out, key, cyclic)
}
