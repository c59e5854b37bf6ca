package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Command is a parsed script command.
type Command struct {
	Line int    // line number within the script, 0 if not from a script
	Op   string // operation, e.g. "add-record"
	Args []int
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Op)
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// arity lists the minimum and maximum argument count per operation.
var arity = map[string][2]int{
	"add-group":     {1, 1},
	"remove-group":  {1, 1},
	"add-record":    {3, 3},
	"remove-record": {1, 1},
	"increase-rank": {2, 2},
	"replace-group": {2, 2},
	"top":           {0, 1},
	"top-n":         {2, 2},
	"groups-top":    {1, 1},
	"ranked":        {0, 1},
	"check":         {0, 0},
}

// SyntaxError is returned for malformed script lines.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("script line %d: %s", e.Line, e.Msg)
}

// ParseLine parses a single script line. ok is false for blank lines and
// comments.
func ParseLine(text string, line int) (cmd Command, ok bool, err error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return cmd, false, nil
	}
	op := strings.ToLower(fields[0])
	bounds, known := arity[op]
	if !known {
		return cmd, false, &SyntaxError{Line: line, Msg: fmt.Sprintf("unknown command %q", fields[0])}
	}
	args := fields[1:]
	if len(args) < bounds[0] || len(args) > bounds[1] {
		return cmd, false, &SyntaxError{Line: line,
			Msg: fmt.Sprintf("%s takes %d to %d arguments, has %d", op, bounds[0], bounds[1], len(args))}
	}
	cmd = Command{Line: line, Op: op, Args: make([]int, len(args))}
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return Command{}, false, &SyntaxError{Line: line, Msg: fmt.Sprintf("argument %q is not an integer", a)}
		}
		cmd.Args[i] = n
	}
	return cmd, true, nil
}

// Parse reads a script and returns its commands.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		cmd, ok, err := ParseLine(scanner.Text(), line)
		if err != nil {
			return nil, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	tracer().Debugf("script: parsed %d commands from %d lines", len(cmds), line)
	return cmds, nil
}
