package rope

import "unicode/utf8"

// location is the result of descending the skip list to a target
// offset: the leaf the offset falls in (or end-of-rope markers when
// leaf is nil), the byte offset within that leaf's content, the
// per-level predecessor path needed to patch spans after an edit, and
// the cumulative metrics consumed to reach that point (split into the
// prefix before the landing leaf and the prefix within it), which lets
// callers convert between metrics without a second descent.
type location struct {
	leaf       *node
	byteOff    int
	atEnd      bool // true when the target offset is the rope's total length
	path       [maxHeight]pathEntry
	prefix     Span // metrics of everything before leaf
	leafPrefix Span // metrics of leaf's content before byteOff
}

// locate descends the skip list to the position addressed by target in
// the given metric, recording the update path along the way. target
// must be in [0, r.total.Get(metric)]; callers are responsible for
// bounds-checking before calling locate. Search always advances as far
// as possible without exceeding target (ties go to the later node),
// which is what makes insertion at a leaf boundary land at the start of
// the following leaf rather than the end of the preceding one. The one
// exception is the rope's total length, which has no following leaf: the
// descent stops before the last leaf and lands at its end, so the path
// holds that leaf's predecessors and prefix excludes its content.
func (r *Rope) locate(target uint64, metric Metric) location {
	var loc location
	var cur pathEntry // nil leaf == head
	var consumed Span

	for level := r.height - 1; level >= 0; level-- {
		for {
			fe := r.fwd(cur, level)
			if fe.next == nil {
				break
			}
			reach := consumed.Get(metric) + fe.span.Get(metric)
			if reach > target || (reach == target && fe.next.forward[0].next == nil) {
				break
			}
			consumed = consumed.Add(fe.span)
			cur = pathEntry{leaf: fe.next}
		}
		loc.path[level] = cur
	}

	loc.prefix = consumed
	fe := r.fwd(cur, 0)
	if fe.next == nil {
		loc.leaf = cur.leaf
		loc.atEnd = true
		if cur.leaf != nil {
			loc.byteOff = cur.leaf.len()
			loc.leafPrefix = cur.leaf.span
		}
		return loc
	}
	loc.leaf = fe.next
	loc.byteOff, loc.leafPrefix = resolveResidual(loc.leaf, target-consumed.Get(metric), metric)
	loc.atEnd = target == r.total.Get(metric)
	return loc
}

// resolveResidual scans n's content rune by rune to find the byte
// offset corresponding to residualTarget units of metric, returning
// that offset and the Span prefix (in all three units) consumed to
// reach it.
func resolveResidual(n *node, residualTarget uint64, metric Metric) (int, Span) {
	if residualTarget == 0 {
		return 0, Span{}
	}
	content := n.buf.content()
	var prefix Span
	var count uint64
	for i, r := range content {
		if count == residualTarget {
			return i, prefix
		}
		prefix.Bytes = uint64(i) + uint64(utf8.RuneLen(r))
		prefix.Chars++
		w := utf16Width(r)
		prefix.WChars += w
		if metric == MetricWChars {
			count += w
		} else {
			count++
		}
	}
	return len(content), prefix
}

// len returns the length in bytes of n's logical content.
func (n *node) len() int { return n.buf.len() }
