// Command minipy runs a single source file through the lexer, parser, and
// tree-walking interpreter, following the teacher's own cmd/able entrypoint
// idiom: a run(args) that returns an exit code, stderr+exit-1 on failure,
// and an optional YAML project manifest resolved when no file is given.
package main

import (
	"fmt"
	"os"

	"minipy/pkg/config"
	"minipy/pkg/interpreter"
	"minipy/pkg/parser"
	"minipy/pkg/runtime"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version":
		fmt.Println("minipy 0.1.0")
		return 0
	case "run":
		return runEntry(args[1:])
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	path, extra, err := resolveEntry(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minipy: %v\n", err)
		return 1
	}
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minipy: %v\n", err)
		return 1
	}
	mod, err := parser.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "minipy: %v\n", err)
		return 1
	}

	interp := interpreter.New(os.Stdout)
	registerArgv(interp, extra)
	if err := interp.Run(mod); err != nil {
		fmt.Fprintf(os.Stderr, "minipy: %v\n", err)
		return 1
	}
	return 0
}

// resolveEntry picks the script to run: an explicit path, or -- when none
// was given -- the "entry" field of a minipy.yml manifest in the current
// directory.
func resolveEntry(args []string) (path string, extra []string, err error) {
	if len(args) == 0 {
		cfg, loadErr := config.Load("minipy.yml")
		if loadErr != nil {
			return "", nil, fmt.Errorf("no script given and no minipy.yml manifest found: %w", loadErr)
		}
		if cfg.Entry == "" {
			return "", nil, fmt.Errorf("minipy.yml has no 'entry' field")
		}
		return cfg.Entry, cfg.DefaultArgs(), nil
	}
	return args[0], args[1:], nil
}

// registerArgv exposes any trailing CLI arguments to the script as a Tuple
// bound to the global name "argv".
func registerArgv(interp *interpreter.Interpreter, extra []string) {
	elements := make([]runtime.Value, len(extra))
	for idx, a := range extra {
		elements[idx] = runtime.StringValue{Val: a}
	}
	interp.GlobalEnvironment().Set("argv", runtime.TupleValue{Elements: elements})
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: minipy [run] <script> [args...]")
	fmt.Fprintln(os.Stderr, "       minipy --version")
	fmt.Fprintln(os.Stderr, "       minipy run        (runs ./minipy.yml's entry file)")
}
