package quads

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		ID := ids.alloc(n)
		styles := nodeDotStyles(n.isLeaf(), n.area.Overlapped)
		if n.isLeaf() {
			label := fmt.Sprintf("%d @%d\\n%s", len(n.items), n.depth, n.area)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			return
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, n.area, styles)
		for _, child := range n.children {
			childID := ids.alloc(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, childID)
			walk(child)
		}
	}
	if t != nil && t.root != nil {
		walk(t.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool, overlapped bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
		if overlapped {
			s += ",fillcolor=\"#FFBB88\""
		}
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
