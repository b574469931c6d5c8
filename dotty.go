package augtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format (for
// debugging purposes). Nodes are labeled with key and subtree size; red nodes
// of red-black trees are filled red.
func (t *Tree[K, V, A, D]) Tree2Dot(root Ref, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nilid := len(t.s.nodes)
	for x := range t.s.inorder(root) {
		n := &t.s.nodes[x]
		label := fmt.Sprintf("%v\\n#%d", n.key, n.size)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", x, label, t.nodeDotStyles(x))
		for _, c := range [2]Ref{n.l, n.r} {
			if c == Nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", x, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", x, c)
		}
	}
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func (t *Tree[K, V, A, D]) nodeDotStyles(x Ref) string {
	s := ",style=filled,shape=circle"
	if t.impl.kind() == RedBlack && !t.s.nodes[x].black {
		return s + ",color=black,fillcolor=\"#ff6600\",fontcolor=white"
	}
	if t.impl.kind() == RedBlack {
		return s + ",color=black,fillcolor=black,fontcolor=white"
	}
	return s + ",color=black,fillcolor=\"#a3d7e4\""
}
