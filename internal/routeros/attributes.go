package routeros

import (
	"fmt"
	"strings"
)

// Attributes is the ordered key to value mapping of the
// attribute words of a sentence.
// Its zero value is an empty mapping.
type Attributes struct {
	keys   []string
	values map[string]string
}

// ParseAttributes returns the attributes of the `=key=value` words
// of a sentence. Words not starting with `=` such as `!re` are ignored,
// as are words without a second `=`. The value is everything after the
// second `=`, so it may contain `=` characters. If a key is repeated,
// the last value wins and the key keeps its first position.
func ParseAttributes(words []string) (attributes Attributes) {
	for _, word := range words {
		key, value, ok := SplitAttributeWord(word)
		if !ok {
			continue
		}
		attributes.set(key, value)
	}
	return attributes
}

// SplitAttributeWord splits an attribute word `=key=value` into its
// key and value. It returns ok as false if the word is not an
// attribute word.
func SplitAttributeWord(word string) (key, value string, ok bool) {
	if !strings.HasPrefix(word, "=") {
		return "", "", false
	}
	const maxParts = 3
	parts := strings.SplitN(word, "=", maxParts)
	if len(parts) != maxParts {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func (a *Attributes) set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for the key, or the empty string if
// the key is not set.
func (a Attributes) Get(key string) string {
	return a.values[key]
}

func (a Attributes) Lookup(key string) (value string, ok bool) {
	value, ok = a.values[key]
	return value, ok
}

// Keys returns the keys in the order they first appeared.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

func (a Attributes) Len() int {
	return len(a.keys)
}

// Map returns a copy of the attributes as a map.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a.values))
	for key, value := range a.values {
		m[key] = value
	}
	return m
}

func (a Attributes) String() string {
	pairs := make([]string, len(a.keys))
	for i, key := range a.keys {
		pairs[i] = fmt.Sprintf("%s=%q", key, a.values[key])
	}
	return "{" + strings.Join(pairs, " ") + "}"
}
