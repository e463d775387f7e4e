package filter

import (
	"sort"
	"strings"
)

// WordSet is the naive strategy: a set of folded literal words matched as
// contiguous substrings with no boundary checks, so "class" matches "ass"
type WordSet struct {
	words map[string]struct{}
	mask  byte
}

// NewWordSet builds a WordSet holding the built-in word list
func NewWordSet() *WordSet { return NewWordSetWithOptions(Options{}) }

// NewWordSetWithOptions builds a WordSet with custom options
func NewWordSetWithOptions(opts Options) *WordSet {
	w := &WordSet{
		words: make(map[string]struct{}, 16),
		mask:  opts.mask(),
	}
	if !opts.SkipDefaults {
		w.LoadWords(defaults.Words)
	}
	return w
}

// AddWord folds word and inserts it; duplicates collapse
func (w *WordSet) AddWord(word string) {
	if word == "" {
		return
	}
	w.words[foldASCII(word)] = struct{}{}
}

// LoadWords adds each non-empty line; internal whitespace is kept as-is
func (w *WordSet) LoadWords(lines []string) {
	for _, ln := range lines {
		if ln != "" {
			w.AddWord(ln)
		}
	}
}

// Len returns the number of distinct banned words
func (w *WordSet) Len() int { return len(w.words) }

// ContainsMatch reports whether any banned word occurs as a substring
func (w *WordSet) ContainsMatch(text string) bool {
	folded := foldASCII(text)
	for word := range w.words {
		if strings.Contains(folded, word) {
			return true
		}
	}
	return false
}

// Censor masks every occurrence of every banned word. Words are applied
// independently in sorted order; occurrences of different words may overlap
// and the output reflects the union of all masked spans
func (w *WordSet) Censor(text string) string {
	if text == "" || len(w.words) == 0 {
		return text
	}
	folded := foldASCII(text)
	out := []byte(text)
	for _, word := range w.sorted() {
		for pos := 0; ; {
			i := strings.Index(folded[pos:], word)
			if i < 0 {
				break
			}
			start := pos + i
			for k := 0; k < len(word); k++ {
				out[start+k] = w.mask
			}
			pos = start + len(word)
		}
	}
	return string(out)
}

// sorted returns the words in deterministic order for censor application
func (w *WordSet) sorted() []string {
	ws := make([]string, 0, len(w.words))
	for word := range w.words {
		ws = append(ws, word)
	}
	sort.Strings(ws)
	return ws
}
