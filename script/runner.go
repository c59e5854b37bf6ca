package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avlidx"
)

// Result is the outcome of executing a command.
type Result struct {
	Command Command
	Status  avlidx.Status
	Err     error
	Output  []int // record identifiers produced by queries
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteString(r.Command.String())
	b.WriteString(": ")
	b.WriteString(r.Status.String())
	for _, id := range r.Output {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// Runner executes commands against a Manager.
//
// Results are published to subscribers of the runner (see Subscribe). The
// Manager itself is used synchronously; clients must not use it concurrently
// while a runner executes commands.
type Runner struct {
	m    *avlidx.Manager
	cast *caster.Caster // broadcaster for results
}

// NewRunner creates a runner for manager m.
func NewRunner(m *avlidx.Manager) *Runner {
	return &Runner{
		m:    m,
		cast: caster.New(context.Background()),
	}
}

// Manager returns the manager the runner operates on.
func (r *Runner) Manager() *avlidx.Manager {
	return r.m
}

// Subscribe returns a channel receiving a Result for every command executed
// from now on. The channel is buffered with capacity entries; a subscriber
// which does not keep up stalls the runner. The subscription ends when ctx is
// done or the runner is closed, which closes the channel.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return r.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (r *Runner) Close() {
	r.cast.Close()
}

// Run executes commands in order and returns their results. Failing commands
// do not stop the run; their results carry the error.
func (r *Runner) Run(cmds []Command) []Result {
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		results = append(results, r.Exec(cmd))
	}
	return results
}

// Exec executes a single command.
func (r *Runner) Exec(cmd Command) Result {
	out, err := r.dispatch(cmd)
	res := Result{Command: cmd, Status: avlidx.StatusOf(err), Err: err, Output: out}
	if err != nil {
		tracer().Debugf("script: %s failed: %v", cmd, err)
	}
	r.cast.Pub(res)
	return res
}

func (r *Runner) dispatch(cmd Command) ([]int, error) {
	m, a := r.m, cmd.Args
	switch cmd.Op {
	case "add-group":
		return nil, m.AddGroup(a[0])
	case "remove-group":
		return nil, m.RemoveGroup(a[0])
	case "add-record":
		return nil, m.AddRecord(a[0], a[1], a[2])
	case "remove-record":
		return nil, m.RemoveRecord(a[0])
	case "increase-rank":
		return nil, m.IncreaseRank(a[0], a[1])
	case "replace-group":
		return nil, m.ReplaceGroup(a[0], a[1])
	case "top":
		if len(a) == 0 {
			return []int{m.TopRecord()}, nil
		}
		id, err := m.GroupTopRecord(a[0])
		if err != nil {
			return nil, err
		}
		return []int{id}, nil
	case "top-n":
		return m.GroupTopRecords(a[0], a[1])
	case "groups-top":
		return m.GroupsTopRecords(a[0])
	case "ranked":
		if len(a) == 0 {
			return m.RecordsByRank(), nil
		}
		return m.GroupRecordsByRank(a[0])
	case "check":
		return nil, m.Check()
	}
	return nil, fmt.Errorf("%w: unknown command %q", avlidx.ErrInvalidArgument, cmd.Op)
}
