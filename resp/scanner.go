package resp

// indexCRLF returns the index of the first "\r\n" in buf at or after
// from, or -1 if the terminator has not arrived yet. It never mutates
// buf or advances any cursor; spec.md §4.2 requires the scan itself to
// be side-effect free so a caller can retry it cheaply against the
// same unconsumed bytes on the next Gets call. An embedded "\r" not
// followed by "\n" is ordinary payload, not a terminator.
func indexCRLF(buf []byte, from int) int {
	for i := from; i+1 < len(buf); i++ {
		if buf[i] == '\r' && buf[i+1] == '\n' {
			return i
		}
	}
	return -1
}
