package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/ltemplate"
	"github.com/grindlemire/ltemplate/internal/source"
)

// runCheck implements the check subcommand.
// It scans templates strictly and compiles the generated Lua without writing
// anything. Useful for CI and editor integration.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var flags commonFlags
	flags.register(fs)
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
	if flags.verbose {
		fmt.Printf("Checking %d template(s)\n", len(files))
	}

	var errorCount atomic.Int32
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(flags.jobs)
	for _, inputPath := range files {
		inputPath := inputPath
		g.Go(func() error {
			err := checkFile(inputPath)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				errorCount.Add(1)
				return nil
			}
			if flags.verbose {
				fmt.Printf("ok %s\n", inputPath)
			}
			return nil
		})
	}
	g.Wait()

	if n := errorCount.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	if flags.verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile scans and compiles a single template.
func checkFile(path string) error {
	f, err := source.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ltemplate.Compile(path, f.Bytes, ltemplate.WithStrict())
	return err
}
