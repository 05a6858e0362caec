package spotlight

import (
	"fmt"
	"regexp"
	"strconv"
)

// indexVerb matches an integer verb such as %d or %02d, or an escaped %%.
var indexVerb = regexp.MustCompile(`%%|%[-+0#]*[0-9]*d`)

// IndexedKey formats the key of the index-th repeated element, e.g.
// IndexedKey("this.card.%d", 2) == "this.card.2". A format without an
// integer verb gets ".index" appended. Any other % is kept literally and
// %% collapses to %. Indices are 1-based by convention and must stay
// stable across renders for last-write-wins merging to be predictable.
func IndexedKey(format string, index int) string {
	out, ok := expandIndex(format, index)
	if !ok {
		return out + "." + strconv.Itoa(index)
	}
	return out
}

func expandIndex(format string, index int) (string, bool) {
	found := false
	out := indexVerb.ReplaceAllStringFunc(format, func(m string) string {
		if m == "%%" {
			return "%"
		}
		found = true
		return fmt.Sprintf(m, index)
	})
	return out, found
}

// IndexedKeys returns the keys for indices 1 through count.
func IndexedKeys(format string, count int) []string {
	if count <= 0 {
		return nil
	}
	keys := make([]string, count)
	for i := range keys {
		keys[i] = IndexedKey(format, i+1)
	}
	return keys
}
