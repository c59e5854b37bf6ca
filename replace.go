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

// ReplaceGroup merges group srcID into group dstID and removes group srcID.
//
// All records of the source group move to the destination group, keeping
// their identity. The two rank indices are merged in linear time
// (see avl.Merge); the merged index replaces the destination's index and both
// former indices are released.
func (m *Manager) ReplaceGroup(srcID, dstID int) error {
	if srcID <= 0 || dstID <= 0 || srcID == dstID {
		return fmt.Errorf("%w: replace group %d by %d", ErrInvalidArgument, srcID, dstID)
	}
	src, ok := m.groups.Find(srcID)
	if !ok {
		return fmt.Errorf("%w: group %d", ErrNotFound, srcID)
	}
	dst, ok := m.groups.Find(dstID)
	if !ok {
		return fmt.Errorf("%w: group %d", ErrNotFound, dstID)
	}
	if src.count == 0 {
		src.records.Clear()
		err := m.groups.Delete(srcID)
		assert(err == nil, "ReplaceGroup: cannot delete empty source group")
		T().Debugf("avlidx: dropped empty group %d", srcID)
		return nil
	}
	merged, err := avl.Merge(src.records, dst.records)
	if err != nil {
		return translate(err)
	}
	// nothing may fail from here on
	merged.ForEachNode(func(n *rankNode) bool {
		rec := n.Value()
		rec.group = dst
		rec.inGroup = n
		return true
	})
	src.records.Clear()
	dst.records.Clear()
	dst.records = merged
	wasEmpty := dst.count == 0
	dst.count += src.count
	dst.top, _ = merged.Max()
	m.dropMarker(src)
	if wasEmpty {
		dst.marker, err = m.nonEmpty.Insert(&groupMarker{group: dst})
		assert(err == nil, "ReplaceGroup: cannot mark destination group as non-empty")
	}
	src.count, src.top = 0, nil
	err = m.groups.Delete(srcID)
	assert(err == nil, "ReplaceGroup: cannot delete source group")
	T().Debugf("avlidx: merged group %d into group %d, now %d records", srcID, dstID, dst.count)
	return nil
}
