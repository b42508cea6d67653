package matching

import (
	"regexp"
	"sort"
	"strings"
)

// Set is a deduplicated collection of normalized keywords.
type Set map[string]bool

// nonWord matches every character that is not a word character or
// whitespace. Underscore counts as a word character.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords normalizes raw text into a keyword set: lowercase the
// input, replace punctuation with spaces, split on whitespace and
// deduplicate. Stopword and length filtering are deliberately not applied
// here; see FilterKeywords.
func ExtractKeywords(text string) Set {
	text = nonWord.ReplaceAllString(strings.ToLower(text), " ")

	set := make(Set)
	for _, word := range strings.Fields(text) {
		set[word] = true
	}

	return set
}

// NewSet builds a Set from the given tokens as-is.
func NewSet(tokens ...string) Set {
	set := make(Set, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// Slice returns the keywords in sorted order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for word := range s {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Join serializes the set into a comma-separated string suitable for a
// text column. Keywords are sorted so the representation is stable.
func (s Set) Join() string {
	return strings.Join(s.Slice(), ", ")
}

// ParseSet is the inverse of Join.
func ParseSet(joined string) Set {
	set := make(Set)
	for _, word := range strings.Split(joined, ",") {
		word = strings.TrimSpace(word)
		if word != "" {
			set[word] = true
		}
	}
	return set
}

// Intersect returns the keywords present in both sets.
func (s Set) Intersect(other Set) Set {
	common := make(Set)
	for word := range s {
		if other[word] {
			common[word] = true
		}
	}
	return common
}
