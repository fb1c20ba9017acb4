// Package main provides the CLI entrypoint for propindex.
//
// propindex indexes the accessor methods of Go types by property name:
//   - index: list each type's properties with their getter and setter candidates
//   - lookup: resolve one getter, setter or method the way a binding layer would
//   - check: report overload ambiguities, write-only properties and unresolved bindings
//   - gen: write explicit descriptor registrations for the selected types
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type command struct {
	name  string
	usage string
	run   func(env *env, args []string) int
}

var commands = []command{
	{"index", "index [flags] [packages...]", runIndex},
	{"lookup", "lookup -type pkg.Type -name property [flags] [packages...]", runLookup},
	{"check", "check [flags] [packages...]", runCheck},
	{"gen", "gen [flags] [packages...]", runGen},
}

// env carries the process streams and the logger shared by all commands.
type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			e := &env{stdout: stdout, stderr: stderr, log: slog.New(slog.DiscardHandler)}
			return c.run(e, args[1:])
		}
	}

	if args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stdout)
		return exitOK
	}

	fmt.Fprintf(stderr, "propindex: unknown command %q\n", args[0])
	usage(stderr)

	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "propindex - property accessor index for Go types")
	fmt.Fprintln(w, "Usage:")
	for _, c := range commands {
		fmt.Fprintln(w, "  propindex "+c.usage)
	}
	fmt.Fprintln(w, "Run propindex <command> -h for command flags")
}

// commonFlags are accepted by every command.
type commonFlags struct {
	config  string
	dir     string
	verbose bool
	types   stringList
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "YAML configuration file")
	fs.StringVar(&c.dir, "dir", "", "directory packages are resolved from")
	fs.BoolVar(&c.verbose, "v", false, "log progress to stderr")
	fs.Var(&c.types, "type", "type to process as pkg.Name (repeatable)")
}

// parse parses args and, with -v, switches e to a debug-level text logger.
func (c *commonFlags) parse(e *env, fs *flag.FlagSet, args []string) error {
	fs.SetOutput(e.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if c.verbose {
		e.log = slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return nil
}

type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint([]string(*s))
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}
