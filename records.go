package avlidx

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// AddRecord creates a record with identifier id and rank rank in group
// groupID.
//
// The record is inserted into the identifier index first, which is the
// authority on record existence, then into the global and the group's rank
// index. Node handles are stored in the record right after each insert.
func (m *Manager) AddRecord(id, groupID, rank int) error {
	if id <= 0 || groupID <= 0 || rank < 0 {
		return fmt.Errorf("%w: record %d, group %d, rank %d", ErrInvalidArgument, id, groupID, rank)
	}
	g, ok := m.groups.Find(groupID)
	if !ok {
		return fmt.Errorf("%w: group %d", ErrNotFound, groupID)
	}
	if m.byID.Contains(id) {
		return fmt.Errorf("%w: record %d", ErrAlreadyExists, id)
	}
	if err := m.reserveRecord(g); err != nil {
		return err
	}
	rec := &Record{id: id, rank: rank, group: g}
	_, err := m.byID.Insert(rec)
	assert(err == nil, "AddRecord: insert into identifier index failed after reservation")
	m.link(rec, g)
	T().Debugf("avlidx: added record %d to group %d with rank %d", id, groupID, rank)
	return nil
}

// reserveRecord checks that every index touched by adding a record to g has
// room for one more node.
func (m *Manager) reserveRecord(g *Group) error {
	ok := room(m.byID.Free(), 1) && room(m.byRank.Free(), 1) && room(g.records.Free(), 1)
	if ok && g.count == 0 {
		ok = room(m.nonEmpty.Free(), 1)
	}
	if !ok {
		return fmt.Errorf("%w: no room for another record in group %d", ErrAllocation, g.id)
	}
	return nil
}

// RemoveRecord deletes the record with identifier id from all indices.
func (m *Manager) RemoveRecord(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: record id %d", ErrInvalidArgument, id)
	}
	rec, ok := m.byID.Find(id)
	if !ok {
		return fmt.Errorf("%w: record %d", ErrNotFound, id)
	}
	m.unlink(rec)
	err := m.byID.Delete(id)
	assert(err == nil, "RemoveRecord: cannot delete from identifier index")
	rec.group = nil
	T().Debugf("avlidx: removed record %d", id)
	return nil
}

// IncreaseRank raises the rank of record id by delta.
//
// Rank indices are keyed by rank, so the record is removed from them and
// re-inserted with its new rank. Its identity and group are preserved.
func (m *Manager) IncreaseRank(id, delta int) error {
	if id <= 0 || delta <= 0 {
		return fmt.Errorf("%w: record %d, delta %d", ErrInvalidArgument, id, delta)
	}
	rec, ok := m.byID.Find(id)
	if !ok {
		return fmt.Errorf("%w: record %d", ErrNotFound, id)
	}
	g := rec.group
	m.unlink(rec)
	rec.rank += delta
	m.link(rec, g)
	T().Debugf("avlidx: rank of record %d increased to %d", id, rec.rank)
	return nil
}

// link inserts rec into the global rank index and into the rank index of
// group g, and makes g non-empty if necessary. Callers have to reserve
// capacity beforehand.
func (m *Manager) link(rec *Record, g *Group) {
	var err error
	rec.group = g
	rec.byRank, err = m.byRank.Insert(rec)
	assert(err == nil, "link: insert into global rank index failed")
	rec.inGroup, err = g.records.Insert(rec)
	assert(err == nil, "link: insert into group rank index failed")
	if g.count == 0 {
		g.marker, err = m.nonEmpty.Insert(&groupMarker{group: g})
		assert(err == nil, "link: insert into non-empty groups index failed")
	}
	g.count++
	g.top, _ = g.records.Max()
}

// unlink removes rec from the global rank index and from its group's rank
// index, repairing back-references of records whose payload moved. If the
// group becomes empty, it is removed from the index of non-empty groups.
func (m *Manager) unlink(rec *Record) {
	g := rec.group
	relocated, err := m.byRank.DeleteNode(rec.byRank)
	assert(err == nil, "unlink: stale handle into global rank index")
	if relocated != nil {
		relocated.Value().byRank = relocated
	}
	rec.byRank = nil
	relocated, err = g.records.DeleteNode(rec.inGroup)
	assert(err == nil, "unlink: stale handle into group rank index")
	if relocated != nil {
		relocated.Value().inGroup = relocated
	}
	rec.inGroup = nil
	g.count--
	g.top, _ = g.records.Max()
	if g.count == 0 {
		m.dropMarker(g)
	}
}

// dropMarker removes the non-empty marker of group g.
func (m *Manager) dropMarker(g *Group) {
	relocated, err := m.nonEmpty.DeleteNode(g.marker)
	assert(err == nil, "dropMarker: stale handle into non-empty groups index")
	if relocated != nil {
		relocated.Value().group.marker = relocated
	}
	g.marker = nil
}
