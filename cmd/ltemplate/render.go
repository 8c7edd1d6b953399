package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/grindlemire/ltemplate"
	"github.com/grindlemire/ltemplate/internal/debug"
	"github.com/grindlemire/ltemplate/internal/source"
)

// vars collects repeated -var name=value flags.
type vars map[string]any

func (v vars) String() string {
	return fmt.Sprint(map[string]any(v))
}

func (v vars) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("variable %q must have the form name=value", s)
	}
	v[name] = value
	return nil
}

// runRender implements the render subcommand.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	strict := fs.Bool("strict", false, "Reject unterminated constructs")
	logPath := fs.String("debug", "", "Path to debug log file")
	values := vars{}
	fs.Var(values, "var", "Template variable as name=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render takes exactly one template file")
	}
	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := bufio.NewWriter(os.Stdout)
	if err := renderFile(ctx, fs.Arg(0), values, *strict, w); err != nil {
		return err
	}
	return w.Flush()
}

// renderFile compiles and executes one template file into w.
func renderFile(ctx context.Context, path string, values map[string]any, strict bool, w io.Writer) error {
	f, err := source.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var opts []ltemplate.Option
	if strict {
		opts = append(opts, ltemplate.WithStrict())
	}
	tmpl, err := ltemplate.Compile(path, f.Bytes, opts...)
	if err != nil {
		return err
	}
	debug.Log("render: %s with %d variable(s)", path, len(values))
	return tmpl.Execute(ctx, w, values)
}
