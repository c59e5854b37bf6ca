package avlidx

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// TopRecord returns the identifier of the record with the highest rank over
// all groups, or -1 if there are no records. Ties are resolved in favour of
// the lower identifier.
func (m *Manager) TopRecord() int {
	if rec, ok := m.byRank.Max(); ok {
		return rec.id
	}
	return -1
}

// GroupTopRecord returns the identifier of the record with the highest rank in
// group groupID, or -1 if the group is empty.
func (m *Manager) GroupTopRecord(groupID int) (int, error) {
	g, err := m.findGroup(groupID)
	if err != nil {
		return -1, err
	}
	return g.Top(), nil
}

// GroupTopRecords returns the identifiers of the n highest ranked records of
// group groupID, by descending rank and ascending identifier for equal ranks.
// It is an error if the group holds fewer than n records.
func (m *Manager) GroupTopRecords(groupID, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidArgument, n)
	}
	g, err := m.findGroup(groupID)
	if err != nil {
		return nil, err
	}
	if n > g.count {
		return nil, fmt.Errorf("%w: group %d has %d records, %d requested", ErrNotFound, groupID, g.count, n)
	}
	return recordIDs(g.records.TakeDesc(n)), nil
}

// GroupRecordsByRank returns the identifiers of all records of group groupID,
// by descending rank and ascending identifier for equal ranks.
func (m *Manager) GroupRecordsByRank(groupID int) ([]int, error) {
	g, err := m.findGroup(groupID)
	if err != nil {
		return nil, err
	}
	return recordIDs(g.records.ItemsDesc()), nil
}

// RecordsByRank returns the identifiers of all records, by descending rank and
// ascending identifier for equal ranks.
func (m *Manager) RecordsByRank() []int {
	return recordIDs(m.byRank.ItemsDesc())
}

// GroupsTopRecords returns the top record identifiers of the n non-empty
// groups with the lowest group identifiers, ordered by ascending group
// identifier. It is an error if fewer than n groups hold records.
func (m *Manager) GroupsTopRecords(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: count %d", ErrInvalidArgument, n)
	}
	if n > m.nonEmpty.Len() {
		return nil, fmt.Errorf("%w: %d non-empty groups, %d requested", ErrNotFound, m.nonEmpty.Len(), n)
	}
	markers := m.nonEmpty.Take(n)
	ids := make([]int, len(markers))
	for i, mk := range markers {
		ids[i] = mk.group.top.id
	}
	return ids, nil
}

func (m *Manager) findGroup(groupID int) (*Group, error) {
	if groupID <= 0 {
		return nil, fmt.Errorf("%w: group id %d", ErrInvalidArgument, groupID)
	}
	g, ok := m.groups.Find(groupID)
	if !ok {
		return nil, fmt.Errorf("%w: group %d", ErrNotFound, groupID)
	}
	return g, nil
}
