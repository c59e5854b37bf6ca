/*
Package avlidx maintains records organized in groups, indexed by several
AVL trees at once.

Indices

Every record is reachable through up to three indices: a global index ordered
by record identifier, a global index ordered by rank, and the rank index local
to the record's group. Groups are indexed by identifier, and groups holding at
least one record are additionally present in an index of non-empty groups.

All indices are instances of package avl. Rank indices order records by
ascending rank, with ties broken such that the lower identifier sorts higher.
The maximum of a rank index thus is the top record: highest rank, lowest
identifier. Listing records "by rank" means walking a rank index in descending
order.

Back-references

Records and groups hold node handles into the indices they live in. Deleting
from an AVL tree may move payloads between nodes (see avl.Tree.DeleteNode).
The Manager repairs every back-reference immediately after each mutation, so
that handles are never stale. Manager.Check validates all cross-index
invariants.

Merging groups

ReplaceGroup merges the records of one group into another in time linear to
the number of records, by merging the sorted contents of both rank indices and
building a balanced tree bottom-up.

A Manager is not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avlidx

import (
	"errors"
	"fmt"

	"github.com/npillmayer/avlidx/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the avlidx module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever function parameters are invalid,
// e.g., non-positive identifiers or negative ranks. Nothing has been changed.
const ErrInvalidArgument = IndexError("invalid argument")

// ErrNotFound is flagged if a record or group does not exist.
const ErrNotFound = IndexError("entity not found")

// ErrAlreadyExists is flagged if a record or group to be created already exists.
const ErrAlreadyExists = IndexError("entity already exists")

// ErrAllocation is flagged if an index is out of capacity. Nothing has been
// changed.
const ErrAllocation = IndexError("allocation failure")

// ErrInconsistent is flagged by Check if indices do not agree with each other.
const ErrInconsistent = IndexError("inconsistent indices")

// Status is the result code of an operation, as presented to clients which
// do not deal with Go errors (see package script).
type Status int

// Result codes.
const (
	Success Status = iota
	Failure
	InvalidInput
	AllocationError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case InvalidInput:
		return "INVALID_INPUT"
	}
	return "ALLOCATION_ERROR"
}

// StatusOf maps an error returned by a Manager operation to a result code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInvalidArgument):
		return InvalidInput
	case errors.Is(err, ErrAllocation):
		return AllocationError
	}
	return Failure
}

// translate maps errors of package avl to module errors, keeping both in the
// error chain.
func translate(err error) error {
	var e IndexError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, avl.ErrOutOfMemory):
		e = ErrAllocation
	case errors.Is(err, avl.ErrAlreadyExists):
		e = ErrAlreadyExists
	case errors.Is(err, avl.ErrDoesNotExist):
		e = ErrNotFound
	case errors.Is(err, avl.ErrNullArgument):
		e = ErrInvalidArgument
	default:
		return err
	}
	return fmt.Errorf("%w: %w", e, err)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
