package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/grindlemire/ltemplate"
	"github.com/grindlemire/ltemplate/internal/debug"
)

// commonFlags are shared by the multi-file subcommands.
type commonFlags struct {
	verbose bool
	jobs    int
	ext     string
	debug   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "Verbose output")
	fs.IntVar(&c.jobs, "j", runtime.NumCPU(), "Number of files to process at once")
	fs.StringVar(&c.ext, "ext", ltemplate.DefaultExtension, "Template file suffix")
	fs.StringVar(&c.debug, "debug", "", "Path to debug log file")
}

// setup applies the flags once parsing is done. The returned func closes the
// debug log and must be called when the command finishes.
func (c *commonFlags) setup() (func(), error) {
	if c.jobs < 1 {
		return nil, fmt.Errorf("-j must be at least 1")
	}
	if !strings.HasPrefix(c.ext, ".") || len(c.ext) < 2 {
		return nil, fmt.Errorf("-ext %q must start with a dot", c.ext)
	}
	if c.debug == "" {
		return func() {}, nil
	}
	if err := debug.Init(c.debug); err != nil {
		return nil, err
	}
	return func() { debug.Close() }, nil
}

// collectTemplates finds all template files from the given paths.
// Supports:
//   - Direct file paths: "page.ltpl"
//   - Directory paths: "./templates"
//   - Recursive pattern: "./..."
func collectTemplates(paths []string, ext string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ext) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ext) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", ext)
	}
	return files, nil
}

// outputFileName converts a template path to its .lua output path, placed in
// dir when dir is set.
//
//	page.ltpl         -> page.lua
//	views/list.ltpl   -> views/list.lua
func outputFileName(inputPath, ext, dir string) string {
	name := strings.TrimSuffix(inputPath, ext) + ".lua"
	if dir == "" {
		return name
	}
	return filepath.Join(dir, filepath.Base(name))
}

// outputFileNames maps every input to its output path. Two inputs sharing an
// output (same base name under -o) are an error rather than an overwrite.
func outputFileNames(files []string, ext, dir string) ([]string, error) {
	outputs := make([]string, len(files))
	owner := make(map[string]string, len(files))
	for i, inputPath := range files {
		out := outputFileName(inputPath, ext, dir)
		if prev, ok := owner[out]; ok {
			return nil, fmt.Errorf("%s and %s both translate to %s", prev, inputPath, out)
		}
		owner[out] = inputPath
		outputs[i] = out
	}
	return outputs, nil
}
