package avlidx

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"

	"github.com/npillmayer/avlidx/avl"
)

// RankKey is the key of records in rank indices.
type RankKey struct {
	Rank int
	ID   int
}

// CompareRank orders rank keys by ascending rank. For equal ranks, the lower
// identifier is the greater key. The maximum of a rank index therefore is the
// record with the highest rank and, among those, the lowest identifier.
func CompareRank(a, b RankKey) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

type (
	recordIndex = avl.Tree[int, *Record]
	rankIndex   = avl.Tree[RankKey, *Record]
	rankNode    = avl.Node[RankKey, *Record]
	groupIndex  = avl.Tree[int, *Group]
	markerIndex = avl.Tree[int, *groupMarker]
	markerNode  = avl.Node[int, *groupMarker]
)

// Record is an entity with a unique identifier and a rank, belonging to
// exactly one group.
type Record struct {
	id      int
	rank    int
	group   *Group
	byRank  *rankNode // node in the global rank index
	inGroup *rankNode // node in the group's rank index
}

// ID returns the record's identifier.
func (r *Record) ID() int { return r.id }

// Rank returns the record's rank.
func (r *Record) Rank() int { return r.rank }

// GroupID returns the identifier of the record's group.
func (r *Record) GroupID() int { return r.group.id }

func (r *Record) rankKey() RankKey {
	return RankKey{Rank: r.rank, ID: r.id}
}

// Group is a set of records with a local rank index.
type Group struct {
	id      int
	count   int
	records *rankIndex
	top     *Record     // record with maximum rank key, nil if empty
	marker  *markerNode // node in the non-empty groups index, nil if empty
}

// ID returns the group's identifier.
func (g *Group) ID() int { return g.id }

// Len returns the number of records in the group.
func (g *Group) Len() int { return g.count }

// Top returns the identifier of the group's top record, or -1 if the group is
// empty.
func (g *Group) Top() int {
	if g.top == nil {
		return -1
	}
	return g.top.id
}

// groupMarker represents a group in the index of non-empty groups. It exists
// exactly as long as the group holds records.
type groupMarker struct {
	group *Group
}

func recordByIDConfig(capacity int) avl.Config[int, *Record] {
	return avl.Config[int, *Record]{
		Key:      func(r *Record) int { return r.id },
		Compare:  cmp.Compare[int],
		Capacity: capacity,
	}
}

func rankConfig(capacity int) avl.Config[RankKey, *Record] {
	return avl.Config[RankKey, *Record]{
		Key:      (*Record).rankKey,
		Compare:  CompareRank,
		Capacity: capacity,
	}
}

func groupConfig(capacity int) avl.Config[int, *Group] {
	return avl.Config[int, *Group]{
		Key:      func(g *Group) int { return g.id },
		Compare:  cmp.Compare[int],
		Capacity: capacity,
	}
}

func markerConfig(capacity int) avl.Config[int, *groupMarker] {
	return avl.Config[int, *groupMarker]{
		Key:      func(m *groupMarker) int { return m.group.id },
		Compare:  cmp.Compare[int],
		Capacity: capacity,
	}
}

func recordIDs(records []*Record) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.id
	}
	return ids
}

// room reports whether a tree with free capacity free (-1 for unlimited) can
// take n more nodes.
func room(free, n int) bool {
	return free < 0 || free >= n
}
