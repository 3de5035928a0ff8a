// Package envfile finds dotenv-style files in a workspace root and parses
// their KEY=VALUE lines.
package envfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Syntax selects the line grammar used by Parse
type Syntax string

const (
	// SyntaxPlain splits each non-empty line on its first "=", nothing else
	SyntaxPlain Syntax = "plain"
	// SyntaxDotenv accepts the full dotenv grammar: comments, quotes, export
	SyntaxDotenv Syntax = "dotenv"
)

// Entry is one key/value pair read from an env file
type Entry struct {
	Key   string
	Value string
	// HasValue is false when the line carried no "=" at all
	HasValue bool
}

// ParseLines splits text into entries, one per non-empty line, in file order.
//
// Lines are split on the first "=" only, so "KEY=a=b" yields the value
// "a=b". A line without "=" becomes a key with an empty value. Keys and
// values are not trimmed.
func ParseLines(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		entries = append(entries, Entry{Key: key, Value: value, HasValue: ok})
	}
	return entries
}

// ParseDotenv parses text with the dotenv grammar. A line that is not a
// valid assignment (a bare "KEY", say) fails the whole text.
//
// godotenv yields a map, so entries are put back in the order their keys
// first appear in text. Keys a line scan cannot place (the "KEY: value"
// form) follow, sorted.
func ParseDotenv(text string) ([]Entry, error) {
	values, err := godotenv.Unmarshal(text)
	if err != nil {
		return nil, fmt.Errorf("invalid dotenv syntax: %w", err)
	}

	entries := make([]Entry, 0, len(values))
	seen := make(map[string]bool, len(values))
	add := func(key string) {
		if _, ok := values[key]; !ok || seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, Entry{Key: key, Value: values[key], HasValue: true})
	}

	for _, e := range ParseLines(text) {
		add(dotenvKey(e.Key))
	}

	var rest []string
	for k := range values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		add(k)
	}
	return entries, nil
}

// dotenvKey strips what godotenv ignores around a key
func dotenvKey(raw string) string {
	key := strings.TrimSpace(raw)
	key = strings.TrimPrefix(key, "export ")
	return strings.TrimSpace(key)
}

// Parse dispatches to the parser for syntax. Unknown syntaxes fall back to plain.
func Parse(text string, syntax Syntax) ([]Entry, error) {
	if syntax == SyntaxDotenv {
		return ParseDotenv(text)
	}
	return ParseLines(text), nil
}

// ValidSyntax reports whether s names a supported syntax
func ValidSyntax(s string) bool {
	switch Syntax(s) {
	case SyntaxPlain, SyntaxDotenv:
		return true
	}
	return false
}
