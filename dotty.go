package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Layout is implemented by QueryTree and DualTree. It exposes the array
// layout of a tree for debugging output.
type Layout interface {
	Len() int            // number of items
	Leaves() int         // number of leaves, including padding
	Label(id int) string // printable payload of node id
	Padding(id int) bool // node id covers padding leaves only
}

// Walk visits every node of a tree in array order, i.e., level by level and
// left to right within a level. Walking stops at the first error returned
// by fn.
func Walk(tree Layout, fn func(node Node) error) error {
	queue := []Node{Root(tree.Leaves())}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if err := fn(node); err != nil {
			return err
		}
		if left, right, ok := node.Children(); ok {
			queue = append(queue, left, right)
		}
	}
	return nil
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot(tree Layout, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	err := Walk(tree, func(node Node) error {
		styles := nodeDotStyles(node.IsLeaf(), tree.Padding(node.ID))
		if tree.Padding(node.ID) {
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"\"%s];\n", node.ID, styles)
		} else {
			label := fmt.Sprintf("%s\\n%s", node.Segment, escape(tree.Label(node.ID)))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", node.ID, label, styles)
		}
		if !node.IsRoot() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ParentID(node.ID), node.ID)
		}
		return nil
	})
	if err != nil {
		T().Errorf("segment tree DOT: %s", err.Error())
		return err
	}
	if _, err = io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err = io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err = io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool, padding bool) string {
	s := ",style=filled"
	switch {
	case padding:
		s += ",color=gray,fillcolor=white,shape=circle,fixedsize=true,width=.4"
	case isleaf:
		s += ",fillcolor=\"#CCDDFF\",shape=box"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
