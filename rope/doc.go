// Package rope provides a mutable rope data structure for efficient
// in-place editing of large Unicode text documents.
//
// The structure is a probabilistic multi-level skip list whose leaves are
// fixed-capacity gap buffers holding contiguous UTF-8 text. Insertion,
// deletion, and replacement at arbitrary character offsets run in expected
// O(log n) time; iteration over content is a straight walk of the level-0
// leaf chain.
//
// # Basic usage
//
//	r := rope.FromString("hello world")
//	r.Insert(5, ",")          // "hello, world"
//	r.Remove(0, 7)            // "world"
//	r.Replace(0, 5, "planet") // "planet"
//	s := r.String()
//
// # Secondary metric
//
// Editors that speak UTF-16 offsets (most Language Server Protocol
// clients) can opt into a parallel UTF-16 code-unit metric maintained in
// lockstep with the primary character metric:
//
//	r := rope.New(rope.WithSecondaryMetric())
//	r.Insert(0, "a😀b")
//	w, _ := r.CharsToWChars(2) // 3
//	c, _ := r.WCharsToChars(3) // 2
//
// # Concurrency
//
// A Rope is single-writer: concurrent mutation is not supported and not
// internally synchronized. Concurrent reads are safe only while no writer
// is active; callers must enforce this externally.
package rope
