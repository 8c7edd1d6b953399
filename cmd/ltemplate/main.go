// Package main provides the command-line tool for ltemplate templates.
//
// Usage:
//
//	ltemplate translate [path...]   Write the generated Lua for templates
//	ltemplate check [path...]       Check templates without writing output
//	ltemplate render file           Render a template to stdout
//	ltemplate help                  Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `ltemplate - Lua-backed text templates

Usage:
  ltemplate <command> [options] [path...]

Commands:
  translate   Write the generated Lua chunk for each template
  check       Scan strictly and compile templates without writing output
  render      Render one template to stdout
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -j N        Process up to N files at once (default: number of CPUs)
  -ext SUFFIX Template file suffix (default .ltpl)
  -strict     translate, render: reject unterminated expressions, statements
              and strings (check always does)
  -o DIR      translate: write .lua files into DIR ("-" for stdout)
  -var k=v    render: set a string variable (repeatable)
  -debug FILE Append debug logging to FILE (also: LTEMPLATE_DEBUG=FILE)

Examples:
  ltemplate translate ./...               Recursively translate all .ltpl files
  ltemplate translate -o - page.ltpl      Print the generated Lua
  ltemplate check -v ./templates          Check every template in a directory
  ltemplate render -var name=ann hi.ltpl  Render with variables
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "translate":
		err = runTranslate(args)
	case "check":
		err = runCheck(args)
	case "render":
		err = runRender(args)
	case "version":
		fmt.Printf("ltemplate version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
