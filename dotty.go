package avlidx

import (
	"fmt"
	"io"
	"strconv"
)

// Index names an index of a Manager, for diagnostics.
type Index string

// Indices of a Manager.
const (
	ByID     Index = "by-id"
	ByRank   Index = "by-rank"
	Groups   Index = "groups"
	NonEmpty Index = "nonempty"
)

// Index2Dot outputs the internal structure of one of the manager's indices in
// Graphviz DOT format (for debugging purposes). Index ByRank with a positive
// groupID selects the rank index of that group.
func (m *Manager) Index2Dot(w io.Writer, index Index, groupID int) error {
	switch index {
	case ByID:
		return m.byID.WriteDot(w, func(r *Record) string {
			return strconv.Itoa(r.id)
		})
	case ByRank:
		tree := m.byRank
		if groupID > 0 {
			g, err := m.findGroup(groupID)
			if err != nil {
				return err
			}
			tree = g.records
		}
		return tree.WriteDot(w, func(r *Record) string {
			return fmt.Sprintf("%d (%d)", r.id, r.rank)
		})
	case Groups:
		return m.groups.WriteDot(w, func(g *Group) string {
			return fmt.Sprintf("%d [%d]", g.id, g.count)
		})
	case NonEmpty:
		return m.nonEmpty.WriteDot(w, func(mk *groupMarker) string {
			return fmt.Sprintf("%d → %d", mk.group.id, mk.group.Top())
		})
	}
	return fmt.Errorf("%w: unknown index %q", ErrInvalidArgument, index)
}
