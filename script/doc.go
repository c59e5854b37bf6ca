/*
Package script drives an avlidx.Manager from text: line-oriented command
scripts and YAML fixtures.

A script consists of one command per line. Blank lines and lines starting
with '#' are ignored. Arguments are integers.

	add-group      G
	remove-group   G
	add-record     R G RANK
	remove-record  R
	increase-rank  R DELTA
	replace-group  SRC DST
	top            [G]      top record, globally or of group G
	top-n          G N      N top records of group G
	groups-top     N        top records of the first N non-empty groups
	ranked         [G]      all records by rank, globally or of group G
	check                   validate all indices

A Runner executes commands and reports a Result per command, carrying the
result code and, for queries, the record identifiers produced. Results are
broadcast to subscribers while a script is running.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package script

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
