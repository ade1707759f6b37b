package resp

import (
	"fmt"
	"unicode/utf8"
)

// DecodeUTF8 is a ready-made decode function for WithEncoding. It is
// the only named encoding the Python reader this package is modeled
// on ever exercises (test_bulk_string_with_encoding); other encodings
// are left to callers to supply, since no encoding-registry library
// appears anywhere in the pack this module draws its stack from.
func DecodeUTF8(payload []byte) (string, error) {
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("resp: bulk payload is not valid utf-8")
	}
	return string(payload), nil
}
