// Package aggregate folds env entries from several files into one ordered
// mapping of variable name to provenance strings.
package aggregate

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/NikitaCOEUR/envcomplete/internal/envfile"
)

// Variables maps a variable name to one provenance string per definition.
// Keys keep first-seen order; a key defined again in a later file gets the
// new provenance appended. A Variables belongs to a single request.
type Variables struct {
	m *orderedmap.OrderedMap[string, []string]
}

// New creates an empty accumulator
func New() *Variables {
	return &Variables{m: orderedmap.New[string, []string]()}
}

// Provenance formats the annotation recorded for one definition
func Provenance(file, value string) string {
	return fmt.Sprintf("%s: \n%s\n", file, value)
}

// Add records every entry parsed from file. Keys are used exactly as parsed.
func (v *Variables) Add(file string, entries []envfile.Entry) {
	for _, e := range entries {
		p := Provenance(file, e.Value)
		if existing, ok := v.m.Get(e.Key); ok {
			v.m.Set(e.Key, append(existing, p))
			continue
		}
		v.m.Set(e.Key, []string{p})
	}
}

// Len returns the number of distinct keys
func (v *Variables) Len() int {
	return v.m.Len()
}

// Keys returns the keys in insertion order
func (v *Variables) Keys() []string {
	keys := make([]string, 0, v.m.Len())
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the provenance list for key
func (v *Variables) Get(key string) ([]string, bool) {
	return v.m.Get(key)
}

// Each calls fn for every key in insertion order
func (v *Variables) Each(fn func(key string, provenance []string)) {
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
