/*
Command avlidx drives an AVL-indexed record manager from command scripts,
YAML fixtures or an interactive session.

	avlidx run [--fixture population.yaml] script.txt
	avlidx repl
	avlidx dump --index by-rank [--group 3] [--script script.txt]

Scripts contain one command per line, e.g.

	add-group 1
	add-record 10 1 500
	top 1

Global flags select a YAML config file, the trace level, the capacity of the
manager's indices and coloring of the output.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/avlidx"
	"github.com/npillmayer/avlidx/script"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "avlidx",
		Usage: "run command scripts against an AVL-indexed record manager",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config `FILE`",
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "trace level (debug, info, error)",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "maximum number of entries per index, 0 for unlimited",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "color output (auto, always, never)",
			},
		},
		Before: setup,
	}
	app.Commands = []*cli.Command{
		{
			Name:      "run",
			Usage:     "execute a command script",
			ArgsUsage: "SCRIPT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "fixture",
					Usage: "YAML `FILE` with groups and records to load first",
				},
			},
			Action: runScript,
		},
		{
			Name:   "repl",
			Usage:  "interactive session",
			Action: runREPL,
		},
		{
			Name:  "dump",
			Usage: "write an index as Graphviz DOT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "index",
					Value: string(avlidx.ByRank),
					Usage: "index to dump (by-id, by-rank, groups, nonempty)",
				},
				&cli.IntFlag{
					Name:  "group",
					Usage: "dump the rank index of this group",
				},
				&cli.StringFlag{
					Name:  "script",
					Usage: "command script `FILE` to populate the manager",
				},
				&cli.StringFlag{
					Name:  "fixture",
					Usage: "YAML `FILE` with groups and records to load first",
				},
			},
			Action: runDump,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("avlidx: %v", err))
		os.Exit(1)
	}
}

// settings is the effective configuration, established by setup.
var settings = DefaultConfig()

// setup loads the config file, applies global flags and configures tracing
// and coloring.
func setup(cctx *cli.Context) error {
	cfg := DefaultConfig()
	if path := cctx.String("config"); path != "" {
		var err error
		if cfg, err = LoadConfigFile(path); err != nil {
			return err
		}
	}
	if cctx.IsSet("trace") {
		cfg.TraceLevel = cctx.String("trace")
	}
	if cctx.IsSet("capacity") {
		cfg.Capacity = cctx.Int("capacity")
	}
	if cctx.IsSet("color") {
		cfg.Color = cctx.String("color")
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	settings = cfg
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.Level())
	color.NoColor = !cfg.UseColor(term.IsTerminal(int(os.Stdout.Fd())))
	return nil
}

func newManager() (*avlidx.Manager, error) {
	return avlidx.NewManager(avlidx.WithCapacity(settings.Capacity))
}

// withRunner creates a manager and a runner for it, calls fn with the runner
// and closes the runner when fn returns.
func withRunner(fn func(*script.Runner) error) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	runner := script.NewRunner(m)
	defer runner.Close()
	return fn(runner)
}

// prepare populates the manager of runner from an optional fixture and an
// optional script.
func prepare(runner *script.Runner, fixture, scriptPath string, out io.Writer) error {
	if fixture != "" {
		f, err := os.Open(fixture)
		if err != nil {
			return err
		}
		defer f.Close()
		fx, err := script.LoadFixture(f)
		if err != nil {
			return err
		}
		if failed := report(out, runner.Run(fx.Commands()), false); failed > 0 {
			return fmt.Errorf("fixture %s: %d entries rejected", fixture, failed)
		}
	}
	if scriptPath != "" {
		cmds, err := parseFile(scriptPath)
		if err != nil {
			return err
		}
		report(out, runner.Run(cmds), false)
	}
	return nil
}

func parseFile(path string) ([]script.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return script.Parse(f)
}

func runScript(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need a script file as an argument")
	}
	cmds, err := parseFile(path)
	if err != nil {
		return err
	}
	return withRunner(func(runner *script.Runner) error {
		if err := prepare(runner, cctx.String("fixture"), "", os.Stdout); err != nil {
			return err
		}
		if failed := report(os.Stdout, runner.Run(cmds), true); failed > 0 {
			return fmt.Errorf("%d of %d commands failed", failed, len(cmds))
		}
		return nil
	})
}

func runDump(cctx *cli.Context) error {
	return withRunner(func(runner *script.Runner) error {
		if err := prepare(runner, cctx.String("fixture"), cctx.String("script"), io.Discard); err != nil {
			return err
		}
		index := avlidx.Index(cctx.String("index"))
		return runner.Manager().Index2Dot(os.Stdout, index, cctx.Int("group"))
	})
}

var (
	okColor   = color.New(color.FgGreen).SprintFunc()
	failColor = color.New(color.FgRed).SprintFunc()
	idColor   = color.New(color.FgCyan).SprintFunc()
)

// report prints results to w and returns the number of failed commands. With
// verbose unset only failures are printed.
func report(w io.Writer, results []script.Result, verbose bool) (failed int) {
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", failColor(res.Status), res.Command, res.Err)
			continue
		}
		if !verbose {
			continue
		}
		fmt.Fprintf(w, "%s %s", okColor(res.Status), res.Command)
		for _, id := range res.Output {
			fmt.Fprintf(w, " %s", idColor(id))
		}
		fmt.Fprintln(w)
	}
	return failed
}
