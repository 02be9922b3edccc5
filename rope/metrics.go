package rope

import "unicode/utf8"

// Metric selects which of a Span's fields a descent or iteration should
// compare against.
type Metric uint8

const (
	// MetricChars addresses content by Unicode code point (rune) count.
	// This is the rope's primary metric.
	MetricChars Metric = iota
	// MetricWChars addresses content by UTF-16 code-unit count. Only
	// meaningful when the owning Rope was built WithSecondaryMetric.
	MetricWChars
)

// Span is the triple of metrics carried on every skip-list forward entry
// and cached on every leaf: byte length, character (rune) count, and
// (optionally) UTF-16 code-unit count. A zero Span represents empty
// content.
type Span struct {
	Bytes  uint64
	Chars  uint64
	WChars uint64
}

// Add returns the component-wise sum of s and o.
func (s Span) Add(o Span) Span {
	return Span{Bytes: s.Bytes + o.Bytes, Chars: s.Chars + o.Chars, WChars: s.WChars + o.WChars}
}

// Sub returns the component-wise difference s - o. Callers must ensure o
// does not exceed s in any field; the rope's edit paths only ever
// subtract spans known to be contained within a larger one.
func (s Span) Sub(o Span) Span {
	return Span{Bytes: s.Bytes - o.Bytes, Chars: s.Chars - o.Chars, WChars: s.WChars - o.WChars}
}

// IsZero reports whether every field of s is zero.
func (s Span) IsZero() bool {
	return s.Bytes == 0 && s.Chars == 0 && s.WChars == 0
}

// Get returns the field of s selected by m.
func (s Span) Get(m Metric) uint64 {
	if m == MetricWChars {
		return s.WChars
	}
	return s.Chars
}

// utf16Width reports how many UTF-16 code units r encodes as: 1 for code
// points in the basic multilingual plane, 2 for anything requiring a
// surrogate pair.
func utf16Width(r rune) uint64 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// ComputeSpan walks s rune by rune and returns its Span. utf16 controls
// whether the WChars field is populated; when false it is left at zero,
// matching a Rope built without WithSecondaryMetric.
func ComputeSpan(s string, utf16 bool) Span {
	var sp Span
	sp.Bytes = uint64(len(s))
	for _, r := range s {
		sp.Chars++
		if utf16 {
			sp.WChars += utf16Width(r)
		}
	}
	return sp
}

// validUTF8Boundary reports whether byte index i in s lands on a code
// point boundary (either the start or the very end of s).
func validUTF8Boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}
