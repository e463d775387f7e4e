package filter

// Composite runs the literal, pattern, and trie strategies together.
// Detection is a short-circuit OR in a fixed order; censoring is a strict
// pipeline where each stage consumes the previous stage's masked output.
// The order literal -> pattern -> trie is part of the contract and is pinned
// by tests
type Composite struct {
	literal  *WordSet
	patterns *PatternSet
	trie     *Trie

	useLiteral bool
	usePattern bool
	useTrie    bool
}

// NewComposite builds a Composite with all three strategies enabled
func NewComposite() *Composite { return NewCompositeWithOptions(Options{}) }

// NewCompositeWithOptions builds a Composite with custom options
func NewCompositeWithOptions(opts Options) *Composite {
	return &Composite{
		literal:    NewWordSetWithOptions(opts),
		patterns:   NewPatternSetWithOptions(opts),
		trie:       NewTrieWithOptions(opts),
		useLiteral: true,
		usePattern: true,
		useTrie:    true,
	}
}

// Configure flips the participation flags. Flags are independent and may be
// changed between calls at any time
func (c *Composite) Configure(useLiteral, usePattern, useTrie bool) {
	c.useLiteral = useLiteral
	c.usePattern = usePattern
	c.useTrie = useTrie
}

// ContainsMatch ORs the enabled strategies, returning on the first hit
func (c *Composite) ContainsMatch(text string) bool {
	if c.useLiteral && c.literal.ContainsMatch(text) {
		return true
	}
	if c.usePattern && c.patterns.ContainsMatch(text) {
		return true
	}
	if c.useTrie && c.trie.ContainsMatch(text) {
		return true
	}
	return false
}

// Censor pipelines the enabled strategies; later stages see earlier maskings
func (c *Composite) Censor(text string) string {
	out := text
	if c.useLiteral {
		out = c.literal.Censor(out)
	}
	if c.usePattern {
		out = c.patterns.Censor(out)
	}
	if c.useTrie {
		out = c.trie.Censor(out)
	}
	return out
}

// AddWord broadcasts to every strategy, enabled or not. A word added while a
// strategy is disabled still takes effect once that strategy is re-enabled
func (c *Composite) AddWord(word string) {
	c.literal.AddWord(word)
	c.patterns.AddWord(word)
	c.trie.AddWord(word)
}

// LoadWords broadcasts to every strategy, enabled or not
func (c *Composite) LoadWords(lines []string) {
	c.literal.LoadWords(lines)
	c.patterns.LoadWords(lines)
	c.trie.LoadWords(lines)
}
