package catalog

import (
	"sort"
	"strings"

	"deckcheck/internal/util"
)

// Index is the set of normalized card names the user owns. Quantities are
// not tracked: a card owned four times matches exactly like one owned once.
type Index struct {
	names map[string]struct{}
}

func BuildIndex(names []string) *Index {
	idx := &Index{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		idx.Add(name)
	}
	return idx
}

// Add normalizes name and inserts it. Blank names are ignored.
func (i *Index) Add(name string) {
	norm := util.NormalizeName(name)
	if norm == "" {
		return
	}
	i.names[norm] = struct{}{}
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.names)
}

// Has reports whether an already normalized name is an exact entry.
func (i *Index) Has(normalized string) bool {
	if i == nil {
		return false
	}
	_, ok := i.names[normalized]
	return ok
}

// ContainsSubstring reports whether normalized is an entry or occurs inside
// one. The check is one-directional: the deck name must sit within the
// collection name.
func (i *Index) ContainsSubstring(normalized string) bool {
	if i.Has(normalized) {
		return true
	}
	if i == nil || normalized == "" {
		return false
	}
	for name := range i.names {
		if strings.Contains(name, normalized) {
			return true
		}
	}
	return false
}

// sortedNames returns the entries in sorted order.
func (i *Index) sortedNames() []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.names))
	for name := range i.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
