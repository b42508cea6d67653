package matching

import (
	"regexp"
	"strings"
)

// NotFound is the sentinel value for contact fields that could not be
// extracted. It is never the empty string, so callers can tell "absent"
// apart from "not yet populated".
const NotFound = "Not found"

// fallbackName is returned when every name heuristic fails.
const fallbackName = "Candidate"

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d .-]{8,}\d`)

	// A line that is exactly two capitalized words.
	nameLinePattern = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	// Two capitalized words anywhere in the text.
	namePairPattern = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
)

// ContactInfo is the best-effort contact data pulled from resume text.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// nameRule is one step of the name extraction cascade. Rules are evaluated
// in order and the first one that succeeds wins, so precedence is explicit
// and each rule is testable on its own.
type nameRule struct {
	name    string
	extract func(header []string, text string) (string, bool)
}

var nameRules = []nameRule{
	{
		// An explicit "Name:" label in the resume header. The text after
		// the last occurrence of the label is taken.
		name: "labeled-header-line",
		extract: func(header []string, _ string) (string, bool) {
			for _, line := range header {
				if idx := strings.LastIndex(line, "Name:"); idx >= 0 {
					return strings.TrimSpace(line[idx+len("Name:"):]), true
				}
			}
			return "", false
		},
	},
	{
		// A short header line that looks like a person, not a section
		// title or a contact detail.
		name: "short-header-line",
		extract: func(header []string, _ string) (string, bool) {
			for _, line := range header {
				words := len(strings.Fields(line))
				if words < 2 || words > 4 || len(line) >= 40 {
					continue
				}
				lower := strings.ToLower(line)
				if strings.Contains(lower, "resume") ||
					strings.Contains(lower, "cv") ||
					strings.Contains(lower, "curriculum") ||
					strings.Contains(lower, "email") ||
					strings.Contains(lower, "phone") ||
					strings.Contains(lower, "@") {
					continue
				}
				return line, true
			}
			return "", false
		},
	},
	{
		// First line anywhere in the document that is exactly two
		// capitalized words.
		name: "capitalized-line",
		extract: func(_ []string, text string) (string, bool) {
			for _, line := range strings.Split(text, "\n") {
				line = strings.TrimSpace(line)
				if nameLinePattern.MatchString(line) {
					return line, true
				}
			}
			return "", false
		},
	},
	{
		// Last resort before the fallback: any two capitalized words.
		name: "capitalized-pair",
		extract: func(_ []string, text string) (string, bool) {
			if match := namePairPattern.FindString(text); match != "" {
				return match, true
			}
			return "", false
		},
	},
}

// ExtractContactInfo derives a candidate's display name, email address and
// phone number from free resume text. This is a heuristic: the contract is
// deterministic output for identical input, not correctness. Email and
// phone fall back to the NotFound sentinel, the name to "Candidate".
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{
		Name:  extractName(text),
		Email: NotFound,
		Phone: NotFound,
	}

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		info.Phone = phone
	}

	return info
}

func extractName(text string) string {
	header := headerLines(text, 3)
	for _, rule := range nameRules {
		if name, ok := rule.extract(header, text); ok {
			return name
		}
	}
	return fallbackName
}

// headerLines returns the first n non-empty, trimmed lines of text.
func headerLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}
