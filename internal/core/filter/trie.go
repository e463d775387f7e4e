package filter

// Trie is the prefix-tree strategy, the fast path for large word lists.
// Nodes live in a growable arena and reference children through a fixed
// 256-way transition table (-1 = absent), which keeps the scan hot path free
// of map lookups and per-node allocations
type Trie struct {
	nodes []trieNode
	mask  byte
}

type trieNode struct {
	// next[b] = child index or -1 if absent
	next [256]int32
	// terminal marks that a complete banned word ends at this node
	terminal bool
}

func newTrieNode() trieNode {
	var n trieNode
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

// NewTrie builds a Trie holding the built-in word list
func NewTrie() *Trie { return NewTrieWithOptions(Options{}) }

// NewTrieWithOptions builds a Trie with custom options
func NewTrieWithOptions(opts Options) *Trie {
	t := &Trie{mask: opts.mask()}
	t.nodes = append(t.nodes, newTrieNode()) // root
	if !opts.SkipDefaults {
		t.LoadWords(defaults.Words)
	}
	return t
}

// AddWord inserts the folded word, one node per byte, and marks the final
// node terminal. A word that is a prefix of another shares its path, so
// "ass" and "asshole" coexist with two terminal nodes on one branch
func (t *Trie) AddWord(word string) {
	if word == "" {
		return
	}
	word = foldASCII(word)
	state := int32(0)
	for i := 0; i < len(word); i++ {
		b := word[i]
		nxt := t.nodes[state].next[b]
		if nxt == -1 {
			nxt = int32(len(t.nodes))
			t.nodes[state].next[b] = nxt
			t.nodes = append(t.nodes, newTrieNode())
		}
		state = nxt
	}
	t.nodes[state].terminal = true
}

// LoadWords inserts each non-empty line
func (t *Trie) LoadWords(lines []string) {
	for _, ln := range lines {
		if ln != "" {
			t.AddWord(ln)
		}
	}
}

// ContainsMatch walks the trie from every start position and returns on the
// first terminal node reached. Branches die on the first missing child, so
// the average scan is far below the O(n * maxWordLen) worst case
func (t *Trie) ContainsMatch(text string) bool {
	folded := foldASCII(text)
	for i := 0; i < len(folded); i++ {
		state := int32(0)
		for j := i; j < len(folded); j++ {
			state = t.nodes[state].next[folded[j]]
			if state == -1 {
				break
			}
			if t.nodes[state].terminal {
				return true
			}
		}
	}
	return false
}

// Censor masks the longest banned word starting at each position and resumes
// scanning immediately after the masked span. Positions inside a masked span
// are never rescanned, so inner overlapping words are deliberately not
// rediscovered in the same pass
func (t *Trie) Censor(text string) string {
	if text == "" {
		return text
	}
	folded := foldASCII(text)
	out := []byte(text)
	for i := 0; i < len(folded); i++ {
		state := int32(0)
		matched := 0 // length of the longest terminal match starting at i
		for j := i; j < len(folded); j++ {
			state = t.nodes[state].next[folded[j]]
			if state == -1 {
				break
			}
			if t.nodes[state].terminal {
				matched = j - i + 1
			}
		}
		if matched > 0 {
			for k := 0; k < matched; k++ {
				out[i+k] = t.mask
			}
			i += matched - 1 // loop increment lands just past the span
		}
	}
	return string(out)
}
