package augtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var redNode = color.New(color.FgRed, color.Bold)

// Fprint writes a tree to w, rotated counter-clockwise: the root is in the
// first column and right subtrees are printed above their parents. If w is a
// terminal, red nodes of red-black trees are colored.
func (t *Tree[K, V, A, D]) Fprint(w io.Writer, root Ref) error {
	colored := false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colored = true
	}
	return t.fprint(w, root, 0, colored)
}

func (t *Tree[K, V, A, D]) fprint(w io.Writer, x Ref, depth int, colored bool) error {
	if x == Nil {
		return nil
	}
	t.s.applyDeferred(x)
	n := &t.s.nodes[x]
	if err := t.fprint(w, n.r, depth+1, colored); err != nil {
		return err
	}
	label := fmt.Sprintf("%v (%d)", n.key, n.size)
	if t.impl.kind() == RedBlack && !n.black {
		if colored {
			redNode.EnableColor()
			label = redNode.Sprint(label)
		} else {
			label += " R"
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("    ", depth), label); err != nil {
		return err
	}
	return t.fprint(w, n.l, depth+1, colored)
}
