package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/ltemplate/internal/debug"
	"github.com/grindlemire/ltemplate/internal/scanner"
	"github.com/grindlemire/ltemplate/internal/source"
)

// runTranslate implements the translate subcommand.
// It writes the generated Lua chunk of every template it finds.
func runTranslate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	var flags commonFlags
	flags.register(fs)
	strict := fs.Bool("strict", false, "Reject unterminated constructs")
	outDir := fs.String("o", "", "Output directory, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	done, err := flags.setup()
	if err != nil {
		return err
	}
	defer done()

	files, err := collectTemplates(fs.Args(), flags.ext)
	if err != nil {
		return err
	}
	var outputPaths []string
	if *outDir != "-" {
		outputPaths, err = outputFileNames(files, flags.ext, *outDir)
		if err != nil {
			return err
		}
	}
	if flags.verbose {
		fmt.Printf("Found %d template(s)\n", len(files))
	}
	if *outDir != "" && *outDir != "-" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	// Output for stdout is kept so files print in order.
	outputs := make([][]byte, len(files))
	var errorCount atomic.Int32
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(flags.jobs)
	for i, inputPath := range files {
		i, inputPath := i, inputPath
		g.Go(func() error {
			out, err := translateFile(inputPath, *strict)
			if err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				mu.Unlock()
				errorCount.Add(1)
				return nil
			}

			if *outDir == "-" {
				outputs[i] = out
				return nil
			}
			outputPath := outputPaths[i]
			if flags.verbose {
				mu.Lock()
				fmt.Printf("Translating %s -> %s\n", inputPath, outputPath)
				mu.Unlock()
			}
			if err := os.WriteFile(outputPath, out, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		if out == nil {
			continue
		}
		if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
			return err
		}
	}

	if n := errorCount.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	if flags.verbose {
		fmt.Printf("Successfully translated %d file(s)\n", len(files))
	}
	return nil
}

// translateFile returns the generated Lua chunk for one template file.
func translateFile(path string, strict bool) ([]byte, error) {
	f, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []scanner.Option
	if strict {
		opts = append(opts, scanner.WithStrict())
	}
	out, err := scanner.Translate(path, f.Bytes, opts...)
	if err != nil {
		return nil, err
	}
	debug.Log("translate: %s (%d bytes -> %d bytes)", path, len(f.Bytes), len(out))
	return out, nil
}
