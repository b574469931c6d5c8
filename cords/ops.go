package cords

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/augtree"
)

// Concat concatenates cords and returns the resulting cord. All cords must
// belong to the same store.
func Concat(cord Cord, others ...Cord) Cord {
	for _, c := range others {
		if c.IsVoid() {
			continue
		}
		if cord.IsVoid() {
			cord = c
			continue
		}
		assert(c.store == cord.store, "cords.Concat: cords of different stores")
		t := cord.store.tree
		t.AddDeferred(c.root, int64(cord.Len()))
		cord.root = t.Join(cord.root, c.root)
	}
	return cord
}

// Insert inserts c into cord at byte position i. If i is greater than the
// length of cord, an out-of-bounds error is returned.
func Insert(cord Cord, c Cord, i uint64) (Cord, error) {
	l, r, err := Split(cord, i)
	if err != nil {
		return cord, err
	}
	return Concat(l, c, r), nil
}

// Split splits a cord into two cords right before position i.
// Split(C,i) => split C into C1 and C2, with C1=b0,...,bi-1 and C2=bi,...,bn.
func Split(cord Cord, i uint64) (Cord, Cord, error) {
	if err := cord.checkPosition(i); err != nil {
		return cord, Cord{}, err
	}
	if i == 0 {
		return Cord{store: cord.store}, cord, nil
	}
	if i == cord.Len() {
		return cord, Cord{store: cord.store}, nil
	}
	t := cord.store.tree
	pos := int64(i)
	l, r := t.Split(cord.root, pos+1)
	last := t.Last(&l)
	start, frag := t.Key(last), t.Value(last)
	if local := pos - start; local == 0 {
		l = t.Detach(last)
		r = t.Join3(augtree.Nil, last, r)
	} else if local < int64(len(frag)) {
		t.SetValue(last, frag[:local])
		r = t.Join3(augtree.Nil, t.NewNode(pos, frag[local:]), r)
	}
	t.AddDeferred(r, -pos)
	return Cord{store: cord.store, root: l}, Cord{store: cord.store, root: r}, nil
}

// Cut cuts out the bytes [i...i+l) from a cord. It returns the cord
// without the cut-out segment and the cut segment itself.
func Cut(cord Cord, i, l uint64) (Cord, Cord, error) {
	if err := cord.checkPosition(i); err != nil {
		return cord, Cord{}, err
	}
	if err := cord.checkPosition(i + l); err != nil {
		return cord, Cord{}, err
	}
	left, rest, _ := Split(cord, i)
	mid, right, _ := Split(rest, l)
	return Concat(left, right), mid, nil
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
func (cord Cord) Report(i, l uint64) (string, error) {
	if i+l > cord.Len() {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	t := cord.store.tree
	root := cord.root
	x, local := cord.locate(i)
	k := t.Rank(x)
	var sb strings.Builder
	sb.Grow(int(l))
	for rest := int(l); rest > 0; k++ {
		frag := t.Value(t.At(&root, k))[local:]
		frag = frag[:min(len(frag), rest)]
		sb.WriteString(frag)
		rest -= len(frag)
		local = 0
	}
	return sb.String(), nil
}

// Substr creates a new cord from the bytes [i...i+l) of cord. cord is
// left unchanged.
func Substr(cord Cord, i, l uint64) (Cord, error) {
	s, err := cord.Report(i, l)
	if err != nil || s == "" {
		return Cord{store: cord.store}, err
	}
	return cord.store.FromString(s)
}

// Index returns the fragment that includes byte position i, together with
// the position of i within that fragment.
func (cord Cord) Index(i uint64) (string, uint64, error) {
	if i >= cord.Len() {
		return "", 0, ErrIndexOutOfBounds
	}
	x, local := cord.locate(i)
	return cord.store.tree.Value(x), uint64(local), nil
}

// locate finds the fragment holding byte position i < cord.Len().
func (cord Cord) locate(i uint64) (augtree.Ref, int) {
	t := cord.store.tree
	root := cord.root
	k := t.Size(root)
	if x := t.UpperBound(&root, int64(i)); x != augtree.Nil {
		k = t.Rank(x)
	}
	x := t.At(&root, k-1)
	return x, int(int64(i) - t.Key(x))
}

func (cord Cord) checkPosition(i uint64) error {
	n := cord.Len()
	if i > n {
		return fmt.Errorf("%w: position %d in cord of length %d", ErrIndexOutOfBounds, i, n)
	}
	if i == n {
		return nil
	}
	x, local := cord.locate(i)
	if !utf8.RuneStart(cord.store.tree.Value(x)[local]) {
		tracer().Debugf("cord position %d is inside a rune", i)
		return ErrCharBoundary
	}
	return nil
}
