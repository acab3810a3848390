// Package manifest loads variable declarations from HCL files and
// translates them into the engine's key list and options.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/envcast"
	"github.com/specialistvlad/envcast/internal/ctxlog"
	"github.com/specialistvlad/envcast/internal/fsutil"
	"github.com/specialistvlad/envcast/internal/schema"
)

// Loaded is the result of loading one or more manifest files: the declared
// keys in declaration order, plus the options driving their resolution.
type Loaded struct {
	Keys    []string
	Options *envcast.Options
}

// Load orchestrates the manifest loading process. It is agnostic to whether
// the given paths are files or directories; directories are walked for .hcl
// files. Variable declaration order follows file content order, files in
// the order they are discovered.
func Load(ctx context.Context, paths ...string) (*Loaded, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found in %v", paths)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	loaded := &Loaded{
		Options: &envcast.Options{
			Defaults:   make(map[string]any),
			ArrayTypes: make(map[string]envcast.ElemKind),
		},
	}
	declaredIn := make(map[string]string)

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root schema.Manifest
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		if root.Settings != nil && root.Settings.Delimiter != nil {
			delim := *root.Settings.Delimiter
			if delim == "" {
				return nil, fmt.Errorf("manifest %s: delimiter must not be empty", file)
			}
			if loaded.Options.Delimiter != "" && loaded.Options.Delimiter != delim {
				return nil, fmt.Errorf("manifest %s: delimiter %q conflicts with earlier setting %q", file, delim, loaded.Options.Delimiter)
			}
			loaded.Options.Delimiter = delim
		}

		for _, v := range root.Variables {
			if prev, dup := declaredIn[v.Name]; dup {
				return nil, fmt.Errorf("variable %q declared in both %s and %s", v.Name, prev, file)
			}
			declaredIn[v.Name] = file
			loaded.Keys = append(loaded.Keys, v.Name)

			if err := translateVariable(ctx, v, loaded.Options); err != nil {
				return nil, fmt.Errorf("in manifest %s: %w", file, err)
			}
		}
	}

	logger.Debug("Manifest loading complete.",
		"files", len(files),
		"variables", len(loaded.Keys),
	)
	return loaded, nil
}
