package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/avlidx"
	"github.com/npillmayer/avlidx/script"
	"github.com/urfave/cli/v2"
)

// REPL holds the state of an interactive session.
type REPL struct {
	runner *script.Runner
	reader *bufio.Reader
	out    io.Writer
	line   int
}

func runREPL(cctx *cli.Context) error {
	return withRunner(func(runner *script.Runner) error {
		repl := &REPL{
			runner: runner,
			reader: bufio.NewReader(os.Stdin),
			out:    os.Stdout,
		}
		fmt.Fprintln(repl.out, "avlidx REPL. Type 'help' for available commands, 'quit' to exit")
		repl.Loop(true)
		return nil
	})
}

// Loop reads and executes commands until end of input or 'quit'.
func (repl *REPL) Loop(prompt bool) {
	for {
		if prompt {
			fmt.Fprint(repl.out, "avlidx> ")
		}
		input, err := repl.reader.ReadString('\n')
		if err != nil && input == "" {
			if prompt {
				fmt.Fprintln(repl.out)
			}
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !repl.handleCommand(input) {
			return
		}
	}
}

func (repl *REPL) handleCommand(input string) bool {
	repl.line++
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "quit", "exit":
		return false
	case "help":
		repl.printHelp()
		return true
	case "dump":
		repl.dump(strings.Fields(input)[1:])
		return true
	}
	cmd, ok, err := script.ParseLine(input, repl.line)
	if err != nil {
		fmt.Fprintln(repl.out, failColor(err.Error()))
		return true
	}
	if ok {
		report(repl.out, []script.Result{repl.runner.Exec(cmd)}, true)
	}
	return true
}

func (repl *REPL) dump(args []string) {
	index, group := avlidx.ByRank, 0
	if len(args) > 0 {
		index = avlidx.Index(args[0])
	}
	if len(args) > 1 {
		if _, err := fmt.Sscan(args[1], &group); err != nil {
			fmt.Fprintln(repl.out, failColor("dump: group must be an integer"))
			return
		}
	}
	if err := repl.runner.Manager().Index2Dot(repl.out, index, group); err != nil {
		fmt.Fprintln(repl.out, failColor(err.Error()))
	}
}

func (repl *REPL) printHelp() {
	fmt.Fprint(repl.out, `Commands:
  add-group G                 create group G
  remove-group G              remove group G and its records
  add-record R G RANK         add record R to group G
  remove-record R             remove record R
  increase-rank R D           raise the rank of record R by D
  replace-group SRC DST       merge group SRC into DST and remove SRC
  top [G]                     top record overall or of group G
  top-n G N                   top N records of group G
  groups-top N                top records of the first N non-empty groups
  ranked [G]                  all records (of group G) by rank
  check                       validate all indices
  dump [INDEX [G]]            Graphviz DOT of an index (by-id, by-rank, groups, nonempty)
  help                        this text
  quit                        leave the session
`)
}
