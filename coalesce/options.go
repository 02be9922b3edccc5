package coalesce

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithFlushThreshold caps how many characters of replacement text a
// pending edit may accumulate before it is flushed automatically. The
// zero value (the default) never auto-flushes on size alone; edits are
// still flushed whenever a non-adjacent operation or a read arrives.
func WithFlushThreshold(n int) Option {
	return func(b *Buffer) { b.flushThreshold = n }
}
