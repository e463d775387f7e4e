// Package filter implements profanity matching and censoring engines.
//
// Four interchangeable strategies implement the Engine contract: a literal
// word set, a regexp pattern set, a prefix-tree matcher, and a composite that
// pipelines the other three. Censoring always preserves string length; only
// banned spans are replaced by the mask character
package filter

import (
	_ "embed"
	"encoding/json"
)

// DefaultMask is the replacement character used when Options leave Mask unset
const DefaultMask = byte('*')

// Engine is the capability contract shared by every matching strategy
type Engine interface {
	// ContainsMatch reports whether any banned word occurs in text
	ContainsMatch(text string) bool
	// Censor returns text with banned spans replaced by the mask character.
	// Output length always equals input length
	Censor(text string) string
	// AddWord folds and registers a single banned word
	AddWord(word string)
	// LoadWords registers each non-empty line as a banned word
	LoadWords(lines []string)
}

var (
	_ Engine = (*WordSet)(nil)
	_ Engine = (*PatternSet)(nil)
	_ Engine = (*Trie)(nil)
	_ Engine = (*Composite)(nil)
)

// Options configures an engine at construction time
type Options struct {
	// Mask is the replacement character; zero means DefaultMask
	Mask byte
	// SkipDefaults builds the engine without the built-in banned word list
	SkipDefaults bool
}

func (o Options) mask() byte {
	if o.Mask == 0 {
		return DefaultMask
	}
	return o.Mask
}

//go:embed defaults.json
var defaultsJSON []byte

type defaultsFile struct {
	Words    []string `json:"words"`
	Patterns []string `json:"patterns"`
}

// defaults is parsed once at init; the asset is compiled in, so a parse
// failure is a build defect, not a runtime condition
var defaults = mustDefaults()

func mustDefaults() defaultsFile {
	var d defaultsFile
	if err := json.Unmarshal(defaultsJSON, &d); err != nil {
		panic("filter: parse defaults.json: " + err.Error())
	}
	return d
}

// DefaultWords returns a copy of the built-in banned word list
func DefaultWords() []string {
	return append([]string(nil), defaults.Words...)
}

// DefaultPatterns returns a copy of the built-in obfuscation-tolerant patterns
func DefaultPatterns() []string {
	return append([]string(nil), defaults.Patterns...)
}
