package util

import (
	"strings"
	"unicode"
)

// SplitQuantity splits a deck line on its first whitespace run. The quantity
// token is returned verbatim; it is not required to be numeric. ok is false
// when the line has no whitespace, in which case the whole line comes back
// as the quantity and name is empty.
func SplitQuantity(line string) (quantity, name string, ok bool) {
	line = strings.TrimSpace(line)
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return line, "", false
	}
	quantity = line[:idx]
	name = strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
	return quantity, name, true
}
