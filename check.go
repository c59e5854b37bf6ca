package avlidx

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Check validates the structure of every index and all cross-index
// invariants:
//
//   - record back-references point at nodes holding the record,
//   - global indices and group indices hold the same records,
//   - cached record counts and top records of groups are correct,
//   - exactly the groups holding records are marked as non-empty.
//
// Check is intended to be used in tests and diagnostics.
func (m *Manager) Check() error {
	for name, check := range map[string]func() error{
		"groups":    m.groups.Check,
		"non-empty": m.nonEmpty.Check,
		"by-id":     m.byID.Check,
		"by-rank":   m.byRank.Check,
	} {
		if err := check(); err != nil {
			return fmt.Errorf("%w: index %s: %w", ErrInconsistent, name, err)
		}
	}
	if m.byID.Len() != m.byRank.Len() {
		return fmt.Errorf("%w: %d records by id, %d by rank", ErrInconsistent, m.byID.Len(), m.byRank.Len())
	}
	var err error
	m.byID.ForEach(func(rec *Record) bool {
		err = m.checkRecord(rec)
		return err == nil
	})
	if err != nil {
		return err
	}
	total, nonEmpty := 0, 0
	m.groups.ForEach(func(g *Group) bool {
		err = m.checkGroup(g)
		total += g.count
		if g.count > 0 {
			nonEmpty++
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if total != m.byID.Len() {
		return fmt.Errorf("%w: groups hold %d records, index holds %d", ErrInconsistent, total, m.byID.Len())
	}
	if nonEmpty != m.nonEmpty.Len() {
		return fmt.Errorf("%w: %d non-empty groups, %d markers", ErrInconsistent, nonEmpty, m.nonEmpty.Len())
	}
	return nil
}

func (m *Manager) checkRecord(rec *Record) error {
	if rec.group == nil {
		return fmt.Errorf("%w: record %d without group", ErrInconsistent, rec.id)
	}
	if g, ok := m.groups.Find(rec.group.id); !ok || g != rec.group {
		return fmt.Errorf("%w: record %d refers to unknown group %d", ErrInconsistent, rec.id, rec.group.id)
	}
	if !rec.byRank.Attached() || rec.byRank.Value() != rec {
		return fmt.Errorf("%w: stale rank handle of record %d", ErrInconsistent, rec.id)
	}
	if !rec.inGroup.Attached() || rec.inGroup.Value() != rec {
		return fmt.Errorf("%w: stale group handle of record %d", ErrInconsistent, rec.id)
	}
	if n, found := rec.group.records.Search(rec.rankKey()); !found || n != rec.inGroup {
		return fmt.Errorf("%w: record %d missing in index of group %d", ErrInconsistent, rec.id, rec.group.id)
	}
	if n, found := m.byRank.Search(rec.rankKey()); !found || n != rec.byRank {
		return fmt.Errorf("%w: record %d missing in rank index", ErrInconsistent, rec.id)
	}
	return nil
}

func (m *Manager) checkGroup(g *Group) error {
	if err := g.records.Check(); err != nil {
		return fmt.Errorf("%w: index of group %d: %w", ErrInconsistent, g.id, err)
	}
	if g.count != g.records.Len() {
		return fmt.Errorf("%w: group %d counts %d records, index holds %d",
			ErrInconsistent, g.id, g.count, g.records.Len())
	}
	if top, _ := g.records.Max(); top != g.top {
		return fmt.Errorf("%w: stale top record of group %d", ErrInconsistent, g.id)
	}
	var err error
	g.records.ForEach(func(rec *Record) bool {
		if rec.group != g {
			err = fmt.Errorf("%w: record %d in index of group %d refers to another group",
				ErrInconsistent, rec.id, g.id)
		} else if r, ok := m.byID.Find(rec.id); !ok || r != rec {
			err = fmt.Errorf("%w: record %d of group %d missing in identifier index", ErrInconsistent, rec.id, g.id)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if (g.count > 0) != (g.marker != nil) {
		return fmt.Errorf("%w: marker of group %d does not match count %d", ErrInconsistent, g.id, g.count)
	}
	if g.marker != nil && (!g.marker.Attached() || g.marker.Value().group != g) {
		return fmt.Errorf("%w: stale marker handle of group %d", ErrInconsistent, g.id)
	}
	return nil
}
