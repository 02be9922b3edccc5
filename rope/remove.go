package rope

// Remove deletes the characters in the half-open range [p1, p2). Both
// bounds are character offsets; p1 <= p2 <= r.LenChars() is required.
func (r *Rope) Remove(p1, p2 uint64) error {
	if p2 < p1 {
		return ErrInvalidRange
	}
	if p2 > r.total.Chars {
		return ErrOutOfRange
	}
	if p1 == p2 {
		return nil
	}

	loc1 := r.locate(p1, MetricChars)
	loc2 := r.locate(p2, MetricChars)

	if loc1.leaf == loc2.leaf {
		return r.removeWithinLeaf(loc1, loc2)
	}
	return r.removeAcrossLeaves(loc1, loc2)
}

// removeWithinLeaf handles a deletion fully contained in one leaf.
func (r *Rope) removeWithinLeaf(loc1, loc2 location) error {
	leaf := loc1.leaf
	oldSpan := leaf.span
	leaf.buf.removeAt(loc1.byteOff, loc2.byteOff-loc1.byteOff)

	if leaf.buf.len() == 0 {
		tail := leaf.forward[0].next
		r.relink(&loc1.path, nil, tail)
		r.total = r.total.Sub(oldSpan)
		r.pool.put(leaf)
		return nil
	}

	leaf.recomputeSpan()
	removed := oldSpan.Sub(leaf.span)
	tail := leaf.forward[0].next
	r.relink(&loc1.path, []*node{leaf}, tail)
	r.total = r.total.Sub(removed)
	return nil
}

// removeAcrossLeaves handles a deletion spanning two or more leaves:
// leaf1 is truncated from loc1.byteOff to its end, leaf2 is truncated
// from its start to loc2.byteOff, and every leaf strictly between them
// is dropped entirely.
func (r *Rope) removeAcrossLeaves(loc1, loc2 location) error {
	leaf1, leaf2 := loc1.leaf, loc2.leaf

	var between []*node
	for n := leaf1.forward[0].next; n != leaf2; n = n.forward[0].next {
		between = append(between, n)
	}

	oldSpan1 := leaf1.span
	leaf1.buf.removeAt(loc1.byteOff, leaf1.buf.len()-loc1.byteOff)
	leaf1Empty := leaf1.buf.len() == 0
	if leaf1Empty {
		leaf1.span = Span{}
	} else {
		leaf1.recomputeSpan()
	}

	oldSpan2 := leaf2.span
	leaf2.buf.removeAt(0, loc2.byteOff)
	leaf2Empty := leaf2.buf.len() == 0
	if leaf2Empty {
		leaf2.span = Span{}
	} else {
		leaf2.recomputeSpan()
	}

	tail := leaf2.forward[0].next

	var chain []*node
	if !leaf1Empty {
		chain = append(chain, leaf1)
	}
	if !leaf2Empty {
		chain = append(chain, leaf2)
	}
	r.relink(&loc1.path, chain, tail)

	removed := oldSpan1.Sub(leaf1.span).Add(oldSpan2.Sub(leaf2.span))
	for _, n := range between {
		removed = removed.Add(n.span)
	}
	r.total = r.total.Sub(removed)

	if leaf1Empty {
		r.pool.put(leaf1)
	}
	if leaf2Empty {
		r.pool.put(leaf2)
	}
	for _, n := range between {
		r.pool.put(n)
	}
	return nil
}
