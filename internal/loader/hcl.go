package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/courseplan/internal/catalog"
	"github.com/vk/courseplan/internal/ctxlog"
)

// HCLLoader reads catalogs written as HCL course blocks:
//
//	course "CS201" {
//	  title         = "Data Structures"
//	  prerequisites = ["CS101"]
//	}
//
// A directory path loads every .hcl file beneath it.
type HCLLoader struct{}

// NewHCLLoader creates an HCL catalog loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// courseBlock is the decode target for one course block.
type courseBlock struct {
	Key           string   `hcl:"key,label"`
	Title         string   `hcl:"title"`
	Prerequisites []string `hcl:"prerequisites,optional"`
}

// fileRoot decodes the top-level blocks of one catalog file.
type fileRoot struct {
	Courses []*courseBlock `hcl:"course,block"`
}

// Load implements Loader.
func (l *HCLLoader) Load(ctx context.Context, path string) ([]*catalog.Course, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered catalog files", "count", len(files))

	parser := hclparse.NewParser()
	var courses []*catalog.Course

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode catalog file %s: %w", file, diags)
		}

		for _, block := range root.Courses {
			var prereqs []string
			for _, p := range block.Prerequisites {
				if trimmed := strings.TrimSpace(p); trimmed != "" {
					prereqs = append(prereqs, trimmed)
				}
			}
			courses = append(courses, catalog.NewCourse(
				strings.TrimSpace(block.Key),
				strings.TrimSpace(block.Title),
				prereqs...,
			))
		}
	}

	logger.Debug("HCL catalog parsed", "courses", len(courses))
	return courses, nil
}

// findHCLFiles resolves a path to the list of .hcl files it names: the path
// itself for a regular file, or a recursive walk for a directory.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
