package filter

import (
	"regexp"

	"mouthsoap/internal/platform/logger"
)

// PatternSet matches case-insensitive regular expressions instead of literal
// words, which lets hand-authored variant patterns catch simple leetspeak and
// partially masked spellings the literal strategies miss
type PatternSet struct {
	patterns []*regexp.Regexp
	mask     byte
}

// NewPatternSet builds a PatternSet holding the built-in words and the
// obfuscation-tolerant variant patterns
func NewPatternSet() *PatternSet { return NewPatternSetWithOptions(Options{}) }

// NewPatternSetWithOptions builds a PatternSet with custom options
func NewPatternSetWithOptions(opts Options) *PatternSet {
	p := &PatternSet{mask: opts.mask()}
	if !opts.SkipDefaults {
		p.LoadWords(defaults.Words)
		p.LoadWords(defaults.Patterns)
	}
	return p
}

// AddWord compiles word as a case-insensitive pattern and appends it in
// registration order. A pattern that fails to compile is logged with its
// diagnostic and skipped; everything already registered stays active
func (p *PatternSet) AddWord(word string) {
	if word == "" {
		return
	}
	re, err := regexp.Compile("(?i)" + word)
	if err != nil {
		logger.Named("filter").Warn().
			Str("pattern", word).
			Err(err).
			Msg("skipping pattern that failed to compile")
		return
	}
	p.patterns = append(p.patterns, re)
}

// LoadWords compiles each non-empty line as a pattern
func (p *PatternSet) LoadWords(lines []string) {
	for _, ln := range lines {
		if ln != "" {
			p.AddWord(ln)
		}
	}
}

// Len returns the number of active compiled patterns
func (p *PatternSet) Len() int { return len(p.patterns) }

// ContainsMatch reports whether any pattern matches text
func (p *PatternSet) ContainsMatch(text string) bool {
	for _, re := range p.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Censor applies patterns sequentially in registration order. Each pattern
// masks its non-overlapping leftmost matches over the output of the previous
// one, so later patterns see earlier maskings. The ordering is a contract:
// it keeps variant patterns from re-matching spans that are already masked
func (p *PatternSet) Censor(text string) string {
	if text == "" {
		return text
	}
	out := []byte(text)
	for _, re := range p.patterns {
		for _, span := range re.FindAllIndex(out, -1) {
			for i := span[0]; i < span[1]; i++ {
				out[i] = p.mask
			}
		}
	}
	return string(out)
}
