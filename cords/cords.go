package cords

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/augtree"
)

// MaxFragment is the maximum length of a fragment created from a string.
const MaxFragment = 64

// Summary holds byte, rune and newline counts of a text.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

type summarize struct{}

func (summarize) Zero() Summary { return Summary{} }

func (summarize) Of(_ int64, frag string) Summary {
	return Summary{
		Bytes: uint64(len(frag)),
		Chars: uint64(utf8.RuneCountInString(frag)),
		Lines: uint64(strings.Count(frag, "\n")),
	}
}

func (summarize) Add(a, b Summary) Summary {
	return Summary{Bytes: a.Bytes + b.Bytes, Chars: a.Chars + b.Chars, Lines: a.Lines + b.Lines}
}

// offset moves fragments within a text. Summaries do not change.
type offset struct{}

func (offset) Identity() int64                      { return 0 }
func (offset) IsIdentity(d int64) bool              { return d == 0 }
func (offset) Compose(p, next int64) int64          { return p + next }
func (offset) Apply(d int64, pos *int64, _ *string) { *pos += d }

func (offset) ApplyAggregate(_ int64, s Summary, _ int) Summary { return s }

type fragmentTree = augtree.Tree[int64, string, Summary, int64]

// Store holds the fragments of any number of cords.
type Store struct {
	tree *fragmentTree
}

// NewStore creates an empty store.
func NewStore() *Store {
	t, err := augtree.New(augtree.Config[int64, string, Summary, int64]{
		Strategy:   augtree.RedBlack,
		Compare:    cmp.Compare[int64],
		Aggregator: summarize{},
		Deferred:   offset{},
	})
	assert(err == nil, "cords.NewStore: cannot create fragment tree")
	return &Store{tree: t}
}

// Cord is a text held by a Store. The zero value of Cord, bound to no
// store, behaves like the empty string.
//
//	Operation     |   Cord          |  String
//	--------------+-----------------+--------
//	Index         |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(log n)      |   O(n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
type Cord struct {
	store *Store
	root  augtree.Ref
}

// FromString creates a cord for s. s must be valid UTF-8.
func (st *Store) FromString(s string) (Cord, error) {
	frags, err := splitToFragments(s)
	if err != nil {
		return Cord{}, err
	}
	offsets := make([]int64, len(frags))
	var pos int64
	for i, f := range frags {
		offsets[i] = pos
		pos += int64(len(f))
	}
	return Cord{store: st, root: st.tree.Build(offsets, frags)}, nil
}

// splitToFragments cuts s into pieces of at most MaxFragment bytes, never
// inside a rune.
func splitToFragments(s string) ([]string, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	frags := make([]string, 0, 1+len(s)/MaxFragment)
	for i := 0; i < len(s); {
		end := i + MaxFragment
		if end >= len(s) {
			end = len(s)
		} else {
			for !utf8.RuneStart(s[end]) {
				end--
			}
		}
		frags = append(frags, s[i:end])
		i = end
	}
	return frags, nil
}

// String returns the complete text of cord.
func (cord Cord) String() string {
	if cord.IsVoid() {
		return ""
	}
	var bf bytes.Buffer
	bf.Grow(int(cord.Len()))
	for _, frag := range cord.store.tree.All(cord.root) {
		_, _ = bf.WriteString(frag)
	}
	return bf.String()
}

// IsVoid reports whether the cord has no bytes.
func (cord Cord) IsVoid() bool {
	return cord.root == augtree.Nil
}

// Len returns the cord length in bytes.
func (cord Cord) Len() uint64 {
	return cord.Summary().Bytes
}

// Summary returns byte, rune and line counts of the cord.
func (cord Cord) Summary() Summary {
	if cord.IsVoid() {
		return Summary{}
	}
	return cord.store.tree.Agg(cord.root)
}

// CharCount returns the number of runes in the cord.
func (cord Cord) CharCount() uint64 {
	return cord.Summary().Chars
}

// LineCount returns the number of newline characters in the cord.
func (cord Cord) LineCount() uint64 {
	return cord.Summary().Lines
}

// FragmentCount returns the number of fragments the cord is split into.
func (cord Cord) FragmentCount() int {
	if cord.IsVoid() {
		return 0
	}
	return cord.store.tree.Size(cord.root)
}

func (cord Cord) height() int {
	if cord.IsVoid() {
		return 0
	}
	return cord.store.tree.Height(cord.root)
}

// Fragments returns an iterator over all fragments and their byte offsets.
func (cord Cord) Fragments() iter.Seq2[uint64, string] {
	return func(yield func(uint64, string) bool) {
		if cord.IsVoid() {
			return
		}
		for pos, frag := range cord.store.tree.All(cord.root) {
			if !yield(uint64(pos), frag) {
				return
			}
		}
	}
}

// Check validates the fragment tree of cord.
func (cord Cord) Check() error {
	if cord.IsVoid() {
		return nil
	}
	if err := cord.store.tree.Check(cord.root); err != nil {
		return err
	}
	var next uint64
	for pos, frag := range cord.Fragments() {
		if pos != next || frag == "" {
			return fmt.Errorf("%w: fragment %q at offset %d, expected %d", augtree.ErrCorrupted, frag, pos, next)
		}
		next += uint64(len(frag))
	}
	return nil
}
