package coalesce

import (
	"strconv"
	"unicode/utf8"

	"github.com/skipgap/rope/rope"
)

// pendingEdit is a not-yet-applied Replace against the underlying rope,
// expressed as the original character range it consumes plus the
// replacement text accumulated so far.
type pendingEdit struct {
	origStart   uint64
	origRemoved uint64
	text        string
}

// virtualEnd is the offset, in current-document coordinates (i.e. as if
// the pending edit had already been applied), right after this edit's
// effect.
func (p *pendingEdit) virtualEnd() uint64 {
	return p.origStart + uint64(utf8.RuneCountInString(p.text))
}

func (p *pendingEdit) String() string {
	return "pendingEdit{start:" + strconv.FormatUint(p.origStart, 10) +
		", removed:" + strconv.FormatUint(p.origRemoved, 10) + ", text:" + p.text + "}"
}

// Buffer wraps a *rope.Rope, coalescing adjacent Insert/Remove/Replace
// calls into a single pending edit.
type Buffer struct {
	r              *rope.Rope
	pending        *pendingEdit
	flushThreshold int
}

// New wraps r in a coalescing Buffer.
func New(r *rope.Rope, opts ...Option) *Buffer {
	b := &Buffer{r: r}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Insert inserts s at character offset pos, merging into the pending
// edit when adjacent to it.
func (b *Buffer) Insert(pos uint64, s string) error {
	return b.apply(pos, pos, s)
}

// Remove deletes the characters in [p1, p2), merging into the pending
// edit when adjacent to it.
func (b *Buffer) Remove(p1, p2 uint64) error {
	return b.apply(p1, p2, "")
}

// Replace substitutes the characters in [p1, p2) with s, merging into
// the pending edit when adjacent to it.
func (b *Buffer) Replace(p1, p2 uint64, s string) error {
	return b.apply(p1, p2, s)
}

// apply is the shared merge/flush decision for Insert, Remove, and
// Replace: all three are a Replace(p1, p2, s) with p1==p2 for a pure
// insert and s=="" for a pure removal.
func (b *Buffer) apply(p1, p2 uint64, s string) error {
	if b.pending == nil {
		b.start(p1, p2, s)
		return b.maybeAutoFlush()
	}

	ve := b.pending.virtualEnd()
	switch {
	case p1 == ve:
		// Extends the pending edit forward: consumes p2-p1 more
		// original characters beyond what it already covers, and
		// appends s to its replacement text.
		b.pending.origRemoved += p2 - p1
		b.pending.text += s
	case p2 == ve && p1 >= b.pending.origStart && p1 <= ve:
		// Trims from the tail of the pending edit's own replacement
		// text (e.g. backspacing over what was just typed), then
		// appends s in its place.
		b.pending.text = trimTailChars(b.pending.text, int(p2-p1))
		b.pending.text += s
	default:
		if err := b.Flush(); err != nil {
			return err
		}
		b.start(p1, p2, s)
	}
	return b.maybeAutoFlush()
}

func (b *Buffer) start(p1, p2 uint64, s string) {
	b.pending = &pendingEdit{origStart: p1, origRemoved: p2 - p1, text: s}
}

func (b *Buffer) maybeAutoFlush() error {
	if b.flushThreshold > 0 && b.pending != nil && utf8.RuneCountInString(b.pending.text) >= b.flushThreshold {
		return b.Flush()
	}
	return nil
}

// Flush applies any pending edit to the underlying rope. It is a no-op,
// not an error, when there is nothing pending.
func (b *Buffer) Flush() error {
	if b.pending == nil {
		return nil
	}
	p := b.pending
	b.pending = nil
	return b.r.Replace(p.origStart, p.origStart+p.origRemoved, p.text)
}

// Rope flushes any pending edit and returns the underlying rope. The
// caller must not mutate the returned rope through any interface other
// than this Buffer afterward, or the two will drift out of sync.
func (b *Buffer) Rope() (*rope.Rope, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}
	return b.r, nil
}

// String flushes any pending edit and returns the buffer's full content.
func (b *Buffer) String() (string, error) {
	if err := b.Flush(); err != nil {
		return "", err
	}
	return b.r.String(), nil
}

// Slice flushes any pending edit and returns the characters in
// [p1, p2).
func (b *Buffer) Slice(p1, p2 uint64) (string, error) {
	if err := b.Flush(); err != nil {
		return "", err
	}
	return b.r.Slice(p1, p2)
}

// LenChars flushes any pending edit and returns the buffer's length in
// characters.
func (b *Buffer) LenChars() (uint64, error) {
	if err := b.Flush(); err != nil {
		return 0, err
	}
	return b.r.LenChars(), nil
}

// trimTailChars returns s with its last k runes removed.
func trimTailChars(s string, k int) string {
	if k <= 0 {
		return s
	}
	n := utf8.RuneCountInString(s)
	if k >= n {
		return ""
	}
	idx := len(s)
	for i := 0; i < k; i++ {
		_, sz := utf8.DecodeLastRuneInString(s[:idx])
		idx -= sz
	}
	return s[:idx]
}

