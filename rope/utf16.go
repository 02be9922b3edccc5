package rope

// CharsToWChars converts a character offset to the equivalent UTF-16
// code-unit offset. Requires WithSecondaryMetric.
func (r *Rope) CharsToWChars(charOffset uint64) (uint64, error) {
	if !r.cfg.secondaryMetric {
		return 0, ErrSecondaryMetricDisabled
	}
	if charOffset > r.total.Chars {
		return 0, ErrOutOfRange
	}
	loc := r.locate(charOffset, MetricChars)
	return loc.prefix.WChars + loc.leafPrefix.WChars, nil
}

// WCharsToChars converts a UTF-16 code-unit offset to the equivalent
// character offset. Requires WithSecondaryMetric. Returns
// ErrInvalidBoundary if wcharOffset falls inside a surrogate pair
// rather than between two code points.
func (r *Rope) WCharsToChars(wcharOffset uint64) (uint64, error) {
	if !r.cfg.secondaryMetric {
		return 0, ErrSecondaryMetricDisabled
	}
	if wcharOffset > r.total.WChars {
		return 0, ErrOutOfRange
	}
	loc := r.locate(wcharOffset, MetricWChars)
	if !loc.atEnd && loc.leaf != nil {
		// resolveResidual always lands byteOff on a code point
		// boundary; if it could not reach exactly wcharOffset
		// wide-units (i.e. the target fell inside a surrogate pair),
		// the accumulated prefix will overshoot the request.
		if loc.prefix.WChars+loc.leafPrefix.WChars != wcharOffset {
			return 0, ErrInvalidBoundary
		}
	}
	return loc.prefix.Chars + loc.leafPrefix.Chars, nil
}

// InsertWChar inserts s at the UTF-16 code-unit offset pos. Requires
// WithSecondaryMetric.
func (r *Rope) InsertWChar(pos uint64, s string) error {
	charPos, err := r.WCharsToChars(pos)
	if err != nil {
		return err
	}
	return r.Insert(charPos, s)
}

// RemoveWChar deletes the UTF-16 code-unit range [p1, p2). Requires
// WithSecondaryMetric.
func (r *Rope) RemoveWChar(p1, p2 uint64) error {
	c1, err := r.WCharsToChars(p1)
	if err != nil {
		return err
	}
	c2, err := r.WCharsToChars(p2)
	if err != nil {
		return err
	}
	return r.Remove(c1, c2)
}

// ReplaceWChar substitutes the UTF-16 code-unit range [p1, p2) with s.
// Requires WithSecondaryMetric.
func (r *Rope) ReplaceWChar(p1, p2 uint64, s string) error {
	c1, err := r.WCharsToChars(p1)
	if err != nil {
		return err
	}
	c2, err := r.WCharsToChars(p2)
	if err != nil {
		return err
	}
	return r.Replace(c1, c2, s)
}
