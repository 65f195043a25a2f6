package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/sxgraph/sxgraph/internal/config"
	"github.com/sxgraph/sxgraph/internal/parser"
	"github.com/sxgraph/sxgraph/pkg/sx"
)

const usage = `sxgraph - scalar symbolic expression graphs

Usage:
  sxgraph eval "expr" [-var name=val ...]   evaluate numerically
  sxgraph tree "expr"                        print the operator tree
  sxgraph simplify "expr"                    compare raw vs simplified size
  sxgraph help                               show this help

Options:
  -var name=val   bind a symbol for eval (repeatable)
  -config path    load options from a yaml file (default .sxgraph.yaml)
  -raw            disable construction-time simplification
  -verbose        print run id and graph statistics
`

type cliArgs struct {
	command string
	expr    string
	vars    map[string]float64
	config  string
	raw     bool
	verbose bool
}

func main() {
	// Catch panics from expression misuse and show a plain error.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", r)
			os.Exit(1)
		}
	}()

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if args.command == "help" || args.command == "" {
		fmt.Print(usage)
		return
	}

	opts, err := loadOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx := sx.NewContextWith(opts)
	p := parser.New(ctx, args.expr)
	e, err := p.ParseExpr()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if args.verbose {
		fmt.Fprintf(os.Stderr, "%srun %s: %d node(s), %d allocation(s)%s\n",
			dim(), uuid.NewString()[:8], sx.NodeCount(e), ctx.Allocs(), reset())
	}

	switch args.command {
	case "eval":
		runEval(e, args)
	case "tree":
		if err := sx.WriteTree(os.Stdout, e); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "simplify":
		runSimplify(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", args.command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func parseArgs(argv []string) (cliArgs, error) {
	args := cliArgs{vars: make(map[string]float64)}
	var positional []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "-raw" || arg == "--raw":
			args.raw = true
		case arg == "-verbose" || arg == "--verbose":
			args.verbose = true
		case arg == "-config" || arg == "--config":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("-config needs a path")
			}
			args.config = argv[i]
		case arg == "-var" || arg == "--var":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("-var needs name=val")
			}
			name, val, ok := strings.Cut(argv[i], "=")
			if !ok {
				return args, fmt.Errorf("-var needs name=val, got %q", argv[i])
			}
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return args, fmt.Errorf("bad value for %s: %q", name, val)
			}
			args.vars[name] = v
		case strings.HasPrefix(arg, "-"):
			return args, fmt.Errorf("unknown flag %q", arg)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) > 0 {
		args.command = positional[0]
	}
	if len(positional) > 1 {
		args.expr = positional[1]
	}
	if args.command != "" && args.command != "help" && args.expr == "" {
		return args, fmt.Errorf("%s needs an expression", args.command)
	}
	return args, nil
}

func loadOptions(args cliArgs) (sx.Options, error) {
	var opts sx.Options
	var err error
	if args.config != "" {
		opts, err = config.Load(args.config)
	} else {
		opts, err = config.LoadDefault()
	}
	if err != nil {
		return opts, err
	}
	if args.raw {
		opts.Simplify = false
	}
	return opts, nil
}

func runEval(e sx.Expr, args cliArgs) {
	v, err := sx.Eval(e, args.vars)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s%v%s\n", green(), v, reset())
}

func runSimplify(ctx *sx.Context, args cliArgs) {
	// Build the same expression twice: once raw, once with the engine on,
	// against fresh contexts so the counters are comparable.
	rawOpts := ctx.Options()
	rawOpts.Simplify = false
	rawCtx := sx.NewContextWith(rawOpts)
	rawExpr, err := parser.Parse(rawCtx, args.expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	simpOpts := ctx.Options()
	simpOpts.Simplify = true
	simpCtx := sx.NewContextWith(simpOpts)
	simpExpr, err := parser.Parse(simpCtx, args.expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("raw:        %d node(s)  %s\n", sx.NodeCount(rawExpr), rawExpr)
	fmt.Printf("simplified: %s%d node(s)  %s%s\n", green(), sx.NodeCount(simpExpr), simpExpr, reset())
}

// Color only when stdout is a terminal.
func colorEnabled() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func green() string {
	if colorEnabled() {
		return "\033[32m"
	}
	return ""
}

func dim() string {
	if colorEnabled() {
		return "\033[2m"
	}
	return ""
}

func reset() string {
	if colorEnabled() {
		return "\033[0m"
	}
	return ""
}
