// Package coalesce wraps a *rope.Rope to merge successive adjacent
// edits — the common case of a user typing or backspacing at a single
// cursor — into one pending edit, applied to the underlying rope only
// when a non-adjacent edit or a read arrives.
//
// This buys the caller O(delta) work per keystroke instead of a fresh
// rope split on every character: ten keystrokes typed in a row collapse
// into a single Replace against the rope at Flush time.
package coalesce
