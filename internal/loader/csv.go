package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
)

// CSVLoader reads the classic comma-separated catalog format: one course
// per line as KEY,Title[,PREREQ...]. Field counts vary per line, so the
// reader runs with FieldsPerRecord disabled.
type CSVLoader struct{}

// NewCSVLoader creates a CSV catalog loader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context, path string) ([]*catalog.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	courses, err := l.parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return courses, nil
}

// parse reads and shape-checks records from r. Lines with fewer than two
// fields are logged and skipped rather than failing the whole load; the
// catalog should come up with whatever valid records the file has.
func (l *CSVLoader) parse(ctx context.Context, r io.Reader) ([]*catalog.Course, error) {
	logger := ctxlog.FromContext(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var courses []*catalog.Course
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		fields := trimFields(record)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			logger.Warn("skipping malformed catalog line", "line", line, "fields", len(fields))
			continue
		}

		key, title := fields[0], fields[1]
		var prereqs []string
		for _, p := range fields[2:] {
			if p != "" {
				prereqs = append(prereqs, p)
			}
		}
		courses = append(courses, catalog.NewCourse(key, title, prereqs...))
	}

	logger.Debug("CSV catalog parsed", "courses", len(courses))
	return courses, nil
}

// trimFields trims whitespace from every field and drops trailing empty
// fields left behind by lines like "CS101,Intro,,".
func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
