package theory

import (
	"regexp"
	"strings"
)

// Canonical quality suffixes produced by Normalize
const (
	QualityHalfDiminished = "m7(b5)"
	QualityMinorSeventh   = "m7"
	QualityAugmented      = "aug"
	QualityMajorSeventh   = "△7"
)

// NormalizationRule rewrites one family of chord-name aliases.
// Pattern must have exactly one capturing group holding the root.
type NormalizationRule struct {
	Name    string
	Pattern *regexp.Regexp
	Rewrite func(root string) string
}

// Apply returns the rewritten chord and true when the rule matches
func (r NormalizationRule) Apply(symbol string) (string, bool) {
	match := r.Pattern.FindStringSubmatch(symbol)
	if match == nil {
		return symbol, false
	}
	return r.Rewrite(match[1]), true
}

func suffixRule(name, pattern, quality string) NormalizationRule {
	return NormalizationRule{
		Name:    name,
		Pattern: regexp.MustCompile(pattern),
		Rewrite: func(root string) string {
			return spellingKey(root) + quality
		},
	}
}

// normalizationRules is evaluated in order; the first match wins.
// Half-diminished must precede minor seventh so "Cm7b5" is not read as "Cm7".
// The major-seventh suffixes are case-sensitive so "Cm7" never becomes "C△7".
var normalizationRules = []NormalizationRule{
	suffixRule("half-diminished", `^([A-Ga-g][#b]?)(?i:-7-5|-7b5|min7b5|m7b5|h7)$`, QualityHalfDiminished),
	suffixRule("minor-seventh", `^([A-Ga-g][#b]?)(?i:-7|min7)$`, QualityMinorSeventh),
	suffixRule("augmented", `^([A-Ga-g][#b]?)(?:\+|#5)$`, QualityAugmented),
	suffixRule("major-seventh", `^([A-Ga-g][#b]?)(?:M7|maj7|\^7)$`, QualityMajorSeventh),
}

// Rules returns the normalization rules in evaluation order
func Rules() []NormalizationRule {
	rules := make([]NormalizationRule, len(normalizationRules))
	copy(rules, normalizationRules)
	return rules
}

// Normalize trims a chord name and rewrites a recognized alias to its canonical
// spelling. Anything no rule matches is returned trimmed but otherwise as typed.
func Normalize(input string) string {
	symbol := strings.TrimSpace(input)
	for _, rule := range normalizationRules {
		if rewritten, ok := rule.Apply(symbol); ok {
			return rewritten
		}
	}
	return symbol
}
