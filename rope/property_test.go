package rope

import (
	"strings"
	"testing"
	"testing/quick"
)

// TestQuickRoundTrip checks, for arbitrary strings, that building a rope
// and reading it back reproduces the input exactly.
func TestQuickRoundTrip(t *testing.T) {
	f := func(s string) bool {
		r := FromString(s)
		return r.String() == s && r.LenBytes() == uint64(len(s))
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestQuickSliceMatchesRunes checks that Slice agrees with slicing the
// equivalent []rune for arbitrary in-range offsets.
func TestQuickSliceMatchesRunes(t *testing.T) {
	f := func(s string, a, b uint8) bool {
		runes := []rune(s)
		n := len(runes)
		if n == 0 {
			return true
		}
		lo, hi := int(a)%n, int(b)%n
		if lo > hi {
			lo, hi = hi, lo
		}
		r := FromString(s)
		got, err := r.Slice(uint64(lo), uint64(hi))
		if err != nil {
			return false
		}
		return got == string(runes[lo:hi])
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestRandomEditSequenceMatchesOracle drives a rope through a long
// sequence of random insert/remove/replace operations and checks it
// against a plain []rune oracle: its length after every step, its
// content every 50 steps and at the end.
func TestRandomEditSequenceMatchesOracle(t *testing.T) {
	r := New()
	var oracle []rune

	// A small deterministic xorshift is enough here; we don't need
	// cryptographic quality, just reproducible coverage.
	var state uint64 = 0x2545F4914F6CDD1D
	next := func(n int) int {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		if n <= 0 {
			return 0
		}
		return int(state % uint64(n))
	}

	alphabet := "abcdefgh 😀界\n"
	randString := func(n int) string {
		var b strings.Builder
		rs := []rune(alphabet)
		for i := 0; i < n; i++ {
			b.WriteRune(rs[next(len(rs))])
		}
		return b.String()
	}

	for step := 0; step < 2000; step++ {
		n := len(oracle)
		switch next(3) {
		case 0: // insert
			pos := next(n + 1)
			s := randString(next(5) + 1)
			if err := r.Insert(uint64(pos), s); err != nil {
				t.Fatalf("step %d: Insert: %v", step, err)
			}
			rs := []rune(s)
			oracle = append(oracle[:pos], append(append([]rune{}, rs...), oracle[pos:]...)...)
		case 1: // remove
			if n == 0 {
				continue
			}
			p1 := next(n)
			p2 := p1 + next(n-p1+1)
			if err := r.Remove(uint64(p1), uint64(p2)); err != nil {
				t.Fatalf("step %d: Remove: %v", step, err)
			}
			oracle = append(oracle[:p1], oracle[p2:]...)
		case 2: // replace
			p1 := next(n + 1)
			p2 := p1 + next(n-p1+1)
			s := randString(next(5))
			if err := r.Replace(uint64(p1), uint64(p2), s); err != nil {
				t.Fatalf("step %d: Replace: %v", step, err)
			}
			rs := []rune(s)
			tail := append([]rune{}, oracle[p2:]...)
			oracle = append(oracle[:p1], append(append([]rune{}, rs...), tail...)...)
		}

		if r.LenChars() != uint64(len(oracle)) {
			t.Fatalf("step %d: LenChars() = %d, want %d", step, r.LenChars(), len(oracle))
		}
		if step%50 == 0 && r.String() != string(oracle) {
			t.Fatalf("step %d: content mismatch", step)
		}
	}
	if r.String() != string(oracle) {
		t.Fatalf("final content mismatch: got len=%d want len=%d", len(r.String()), len(string(oracle)))
	}
}
