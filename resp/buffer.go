package resp

// buffer is the input reservoir (spec.md §4.1, component A): bytes are
// appended at the end; cursor tracks how much of data
// has already been committed to completed frames. Compaction drops
// the already-consumed prefix once nothing is still pending against
// it, per spec.md §9's compaction policy.
type buffer struct {
	data   []byte
	cursor int
}

func (b *buffer) append(chunk []byte) {
	b.data = append(b.data, chunk...)
}

func (b *buffer) len() int {
	return len(b.data) - b.cursor
}

// compact drops the consumed prefix [0, cursor) and resets cursor to
// zero. Callers must only call this when no frame is mid-parse
// (pendingStack empty), per invariant 5.
func (b *buffer) compact() {
	if b.cursor == 0 {
		return
	}
	n := copy(b.data, b.data[b.cursor:])
	b.data = b.data[:n]
	b.cursor = 0
}

// maybeCompact applies the threshold policy from spec.md §9: compact
// once the consumed prefix is at least half of what's buffered, so
// steady-state memory stays bounded without compacting on every frame.
func (b *buffer) maybeCompact() {
	if b.cursor > 0 && b.cursor*2 >= len(b.data) {
		b.compact()
	}
}
