package avl

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a payload; if it is nil, payloads
// are rendered with %v.
func (t *Tree[K, T]) WriteDot(w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	bw := bufio.NewWriter(w)
	ids := make(map[*Node[K, T]]int, t.Len())
	alloc := func(n *Node[K, T]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		ids[n] = len(ids) + 1
		return ids[n]
	}
	fmt.Fprintln(bw, "strict digraph {")
	fmt.Fprintln(bw, "\tnode [fontname=Arial,fontsize=12];")
	var nodelist, edgelist []string
	nilid := 10000
	t.ForEachNode(func(n *Node[K, T]) bool {
		id := alloc(n)
		style := ",shape=circle,style=filled,fillcolor=\"#a3d7e4\""
		if n == t.max {
			style = ",shape=doublecircle,style=filled,fillcolor=\"#ffcc88\""
		}
		nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" [label=\"%s\\nh=%d bf=%d\"%s];",
			id, label(n.value), n.height, n.bf, style))
		if n.shape == Leaf {
			return true
		}
		for _, child := range []*Node[K, T]{n.left, n.right} {
			if child == nil {
				nilid++
				nodelist = append(nodelist, fmt.Sprintf("\t\"%d\" %s;", nilid, emptyNode()))
				edgelist = append(edgelist, fmt.Sprintf("\t\"%d\" -> \"%d\";", id, nilid))
				continue
			}
			edgelist = append(edgelist, fmt.Sprintf("\t\"%d\" -> \"%d\";", id, alloc(child)))
		}
		return true
	})
	for _, line := range append(nodelist, edgelist...) {
		fmt.Fprintln(bw, line)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}
