package scale

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/gradeadvisor/internal/ctxlog"
	"github.com/vk/gradeadvisor/internal/fsutil"
)

// Load reads the grading scale from path. An empty path yields the built-in
// default scale. A file path is parsed directly; a directory is merged file
// by file in sorted path order, later files overriding earlier ones.
func Load(ctx context.Context, path string) (*Scale, error) {
	logger := ctxlog.FromContext(ctx)

	s := Default()
	if path == "" {
		logger.Debug("No scale path provided, using the built-in scale.")
		return s, nil
	}

	files, err := resolveFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scale files resolved.", "path", path, "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_max_grade": cty.NumberFloatVal(DefaultMaxGrade),
		},
	}

	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse scale file %q: %w", file, diags)
		}

		var raw fileSchema
		if diags := gohcl.DecodeBody(f.Body, evalCtx, &raw); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode scale file %q: %w", file, diags)
		}
		s.apply(raw.Scale)
		logger.Debug("Scale file applied.", "file", file)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scale configuration at %q: %w", path, err)
	}
	return s, nil
}

// resolveFiles turns a scale path into the list of HCL files to merge.
func resolveFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scale path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to scan scale directory %q: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found under scale directory %q", path)
	}
	return files, nil
}
