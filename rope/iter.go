package rope

import (
	"strings"
	"unicode/utf8"
)

// ChunkIterator walks a rope's leaves in order, yielding each leaf's
// content as one chunk. It is a read-only snapshot of the skip list at
// the time it was created; behavior is unspecified if the rope is
// mutated while an iterator from it is still in use.
type ChunkIterator struct {
	next *node
}

// Chunks returns an iterator over r's leaves in document order.
func (r *Rope) Chunks() *ChunkIterator {
	return &ChunkIterator{next: r.firstLeaf()}
}

// Next returns the next chunk, or ok=false when exhausted.
func (it *ChunkIterator) Next() (chunk string, ok bool) {
	if it.next == nil {
		return "", false
	}
	chunk = it.next.buf.content()
	it.next = it.next.forward[0].next
	return chunk, true
}

// NextWithLen returns the next chunk together with its character
// count, or ok=false when exhausted. The count comes from the leaf's
// own cached span rather than a rescan of the chunk.
func (it *ChunkIterator) NextWithLen() (chunk string, chars uint64, ok bool) {
	if it.next == nil {
		return "", 0, false
	}
	chunk = it.next.buf.content()
	chars = it.next.span.Chars
	it.next = it.next.forward[0].next
	return chunk, chars, true
}

// CharIterator walks a rope's content one Unicode code point at a time.
type CharIterator struct {
	leaf    *node
	content string
	idx     int
}

// Chars returns an iterator over r's content, one rune at a time.
func (r *Rope) Chars() *CharIterator {
	it := &CharIterator{leaf: r.firstLeaf()}
	if it.leaf != nil {
		it.content = it.leaf.buf.content()
	}
	return it
}

// Next returns the next rune, or ok=false when exhausted.
func (it *CharIterator) Next() (r rune, ok bool) {
	for it.leaf != nil {
		if it.idx < len(it.content) {
			r, sz := utf8.DecodeRuneInString(it.content[it.idx:])
			it.idx += sz
			return r, true
		}
		it.leaf = it.leaf.forward[0].next
		it.idx = 0
		if it.leaf != nil {
			it.content = it.leaf.buf.content()
		}
	}
	return 0, false
}

// Slice returns the characters in the half-open range [p1, p2) as a
// single string.
func (r *Rope) Slice(p1, p2 uint64) (string, error) {
	if p2 < p1 {
		return "", ErrInvalidRange
	}
	if p2 > r.total.Chars {
		return "", ErrOutOfRange
	}
	if p1 == p2 {
		return "", nil
	}

	loc := r.locate(p1, MetricChars)
	var b strings.Builder
	remaining := p2 - p1
	leaf, byteOff := loc.leaf, loc.byteOff
	for leaf != nil && remaining > 0 {
		content := leaf.buf.content()
		i := byteOff
		for remaining > 0 && i < len(content) {
			_, sz := utf8.DecodeRuneInString(content[i:])
			i += sz
			remaining--
		}
		b.WriteString(content[byteOff:i])
		leaf = leaf.forward[0].next
		byteOff = 0
	}
	return b.String(), nil
}

// SliceChunks returns the chunks (leaf boundaries preserved) covering
// the half-open range [p1, p2), without concatenating them. Useful to
// callers that want to stream a range without an intermediate copy of
// the whole thing.
func (r *Rope) SliceChunks(p1, p2 uint64) ([]string, error) {
	if p2 < p1 {
		return nil, ErrInvalidRange
	}
	if p2 > r.total.Chars {
		return nil, ErrOutOfRange
	}
	if p1 == p2 {
		return nil, nil
	}

	loc := r.locate(p1, MetricChars)
	var out []string
	remaining := p2 - p1
	leaf, byteOff := loc.leaf, loc.byteOff
	for leaf != nil && remaining > 0 {
		content := leaf.buf.content()
		i := byteOff
		for remaining > 0 && i < len(content) {
			_, sz := utf8.DecodeRuneInString(content[i:])
			i += sz
			remaining--
		}
		out = append(out, content[byteOff:i])
		leaf = leaf.forward[0].next
		byteOff = 0
	}
	return out, nil
}
