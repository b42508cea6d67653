package matching

import "strings"

// DefaultStopwords is the curated stopword set used for both job and
// candidate keyword filtering: common English function words plus filler
// terms that appear in virtually every job description and resume.
var DefaultStopwords = NewSet(
	// General English stopwords.
	"and", "or", "the", "a", "an", "in", "to", "with", "for", "on", "by",
	"of", "at", "from", "as", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do", "does", "did", "but", "if",
	"because", "so", "while", "although", "yet", "since", "about", "above",
	"below", "over", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "any", "each", "few",
	"more", "most", "other", "some", "such", "no", "not", "only", "own",
	"same", "than", "too", "very", "s", "t", "can", "will", "just", "don",
	"should", "now",

	// Job posting filler.
	"we", "looking", "seeking", "ideal", "candidate", "must", "required",
	"requirements", "job", "position", "company", "working", "based",
	"like", "good", "great", "years", "excellent", "also", "our", "your",
	"their", "this", "that",

	// Generic skill-section vocabulary.
	"ability", "work", "team", "skills", "experience", "knowledge",
	"environment", "development", "design", "implementation", "management",
	"communication", "problem", "solving", "solutions", "quality", "time",
	"project", "projects", "responsibilities", "qualifications",
	"education", "degree", "bachelor", "master", "phd", "certification",
	"proficiency", "proficient", "familiar", "understanding", "strong",
	"minimum", "preferred", "plus", "bonus", "benefits",
)

// FilterKeywords removes low-signal tokens from a keyword sequence. A token
// is dropped when it is a stopword, has two or fewer characters, or contains
// any digit. Relative order of the surviving tokens is preserved.
func FilterKeywords(tokens []string, stopwords Set) []string {
	var filtered []string
	for _, tok := range tokens {
		word := strings.ToLower(strings.TrimSpace(tok))
		if len(word) <= 2 || stopwords[word] || containsDigit(word) {
			continue
		}
		filtered = append(filtered, word)
	}
	return filtered
}

// filterSet applies the FilterKeywords rules to a set.
func filterSet(set Set, stopwords Set) Set {
	return NewSet(FilterKeywords(set.Slice(), stopwords)...)
}

func containsDigit(word string) bool {
	for _, r := range word {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
