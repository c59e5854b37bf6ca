package avlidx

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/avlidx/avl"
)

// Manager orchestrates the indices over records and groups and keeps them
// mutually consistent.
//
// A Manager created by NewManager holds four indices:
//
//	groups     group identifier → group
//	nonEmpty   group identifier → marker, for groups holding records
//	byID       record identifier → record
//	byRank     rank key → record
//
// plus one rank index per group. Every operation either succeeds completely
// or fails without changing anything.
type Manager struct {
	capacity int
	groups   *groupIndex
	nonEmpty *markerIndex
	byID     *recordIndex
	byRank   *rankIndex
}

// Option configures a Manager.
type Option func(*Manager)

// WithCapacity limits every index to at most n nodes. Operations which would
// exceed the limit fail with ErrAllocation. n = 0 means unlimited.
func WithCapacity(n int) Option {
	return func(m *Manager) {
		m.capacity = n
	}
}

// NewManager creates a Manager with empty indices.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, m.capacity)
	}
	var err error
	if m.groups, err = avl.New(groupConfig(m.capacity)); err != nil {
		return nil, err
	}
	if m.nonEmpty, err = avl.New(markerConfig(m.capacity)); err != nil {
		return nil, err
	}
	if m.byID, err = avl.New(recordByIDConfig(m.capacity)); err != nil {
		return nil, err
	}
	if m.byRank, err = avl.New(rankConfig(m.capacity)); err != nil {
		return nil, err
	}
	return m, nil
}

// Capacity returns the per-index node limit, 0 meaning unlimited.
func (m *Manager) Capacity() int {
	return m.capacity
}

// Len returns the number of records.
func (m *Manager) Len() int {
	return m.byID.Len()
}

// GroupCount returns the number of groups.
func (m *Manager) GroupCount() int {
	return m.groups.Len()
}

// NonEmptyGroupCount returns the number of groups holding at least one record.
func (m *Manager) NonEmptyGroupCount() int {
	return m.nonEmpty.Len()
}

// Record returns the record with identifier id.
func (m *Manager) Record(id int) (*Record, bool) {
	return m.byID.Find(id)
}

// Group returns the group with identifier id.
func (m *Manager) Group(id int) (*Group, bool) {
	return m.groups.Find(id)
}

// Groups returns the identifiers of all groups in ascending order.
func (m *Manager) Groups() []int {
	groups := m.groups.Items()
	ids := make([]int, len(groups))
	for i, g := range groups {
		ids[i] = g.id
	}
	return ids
}

// Clear removes all records and groups, releasing every index node.
func (m *Manager) Clear() {
	m.groups.ForEach(func(g *Group) bool {
		g.records.Clear()
		g.count, g.top, g.marker = 0, nil, nil
		return true
	})
	m.byID.ForEach(func(r *Record) bool {
		r.byRank, r.inGroup, r.group = nil, nil, nil
		return true
	})
	m.byRank.Clear()
	m.byID.Clear()
	m.nonEmpty.Clear()
	m.groups.Clear()
}

// AddGroup creates an empty group with identifier id.
func (m *Manager) AddGroup(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: group id %d", ErrInvalidArgument, id)
	}
	if m.groups.Contains(id) {
		return fmt.Errorf("%w: group %d", ErrAlreadyExists, id)
	}
	records, err := avl.New(rankConfig(m.capacity))
	if err != nil {
		return err
	}
	if _, err := m.groups.Insert(&Group{id: id, records: records}); err != nil {
		return translate(err)
	}
	T().Debugf("avlidx: added group %d", id)
	return nil
}

// RemoveGroup deletes the group with identifier id, together with all of its
// records.
func (m *Manager) RemoveGroup(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: group id %d", ErrInvalidArgument, id)
	}
	g, ok := m.groups.Find(id)
	if !ok {
		return fmt.Errorf("%w: group %d", ErrNotFound, id)
	}
	for _, rec := range g.records.Items() {
		m.unlink(rec)
		err := m.byID.Delete(rec.id)
		assert(err == nil, "RemoveGroup: record missing in identifier index")
		rec.group = nil
	}
	g.records.Clear()
	err := m.groups.Delete(id)
	assert(err == nil, "RemoveGroup: cannot delete group")
	T().Debugf("avlidx: removed group %d", id)
	return nil
}
