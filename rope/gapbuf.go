package rope

// leafCap is the fixed capacity, in bytes, of every leaf's gap buffer.
// Chosen so a leaf plus its forward-pointer array stays comfortably
// inside a couple of cache lines' worth of allocation overhead while
// keeping split/merge work small.
const leafCap = 368

// gapBuffer is a fixed-capacity byte array with a movable gap, used as
// the storage for one leaf's logical content. Content logically equals
// buf[:gapStart] followed by buf[gapStart+gapLen:]; the gap itself,
// buf[gapStart:gapStart+gapLen], holds stale bytes that are not part of
// the content. gapStart always sits on a UTF-8 code point boundary
// relative to the logical content.
type gapBuffer struct {
	buf      [leafCap]byte
	gapStart int
	gapLen   int
}

// newGapBuffer returns an empty gap buffer spanning the whole capacity.
func newGapBuffer() gapBuffer {
	return gapBuffer{gapLen: leafCap}
}

// len returns the number of logical content bytes currently stored.
func (g *gapBuffer) len() int {
	return leafCap - g.gapLen
}

// free returns the number of bytes that could still be inserted without
// growing the gap buffer.
func (g *gapBuffer) free() int {
	return g.gapLen
}

// at returns the byte at logical offset i.
func (g *gapBuffer) at(i int) byte {
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[i+g.gapLen]
}

// moveGapTo relocates the gap so that it starts at logical offset t.
// t must be in [0, g.len()].
func (g *gapBuffer) moveGapTo(t int) {
	switch {
	case t < g.gapStart:
		n := g.gapStart - t
		copy(g.buf[t+g.gapLen:t+g.gapLen+n], g.buf[t:t+n])
		g.gapStart = t
	case t > g.gapStart:
		n := t - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+n], g.buf[g.gapStart+g.gapLen:g.gapStart+g.gapLen+n])
		g.gapStart = t
	}
}

// insertAt inserts s at logical offset t. The caller must ensure
// len(s) <= g.free().
func (g *gapBuffer) insertAt(t int, s string) {
	g.moveGapTo(t)
	copy(g.buf[g.gapStart:g.gapStart+len(s)], s)
	g.gapStart += len(s)
	g.gapLen -= len(s)
}

// removeAt deletes the k logical bytes starting at offset t.
func (g *gapBuffer) removeAt(t, k int) {
	g.moveGapTo(t)
	g.gapLen += k
}

// content materializes the full logical content as a new string. Leaves
// are small and fixed-size, so this copy is cheap and kept simple rather
// than threading a two-segment view through every caller.
func (g *gapBuffer) content() string {
	n := g.len()
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	copy(out, g.buf[:g.gapStart])
	copy(out[g.gapStart:], g.buf[g.gapStart+g.gapLen:])
	return string(out)
}

// slice materializes the logical content in the half-open byte range
// [lo, hi).
func (g *gapBuffer) slice(lo, hi int) string {
	if lo == 0 && hi == g.len() {
		return g.content()
	}
	full := g.content()
	return full[lo:hi]
}

// takeSuffix truncates g to its first t logical bytes and returns a new
// gap buffer holding the bytes that used to follow, content()[t:].
func (g *gapBuffer) takeSuffix(t int) gapBuffer {
	suffix := g.slice(t, g.len())
	g.moveGapTo(t)
	g.gapLen = leafCap - t
	out := newGapBuffer()
	out.insertAt(0, suffix)
	return out
}

// reset clears g back to empty, keeping its backing array.
func (g *gapBuffer) reset() {
	g.gapStart = 0
	g.gapLen = leafCap
}
