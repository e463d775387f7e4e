package filter

import "testing"

func TestCompositeMatchesViaAnyStrategy(t *testing.T) {
	c := NewComposite()

	cases := []struct {
		text string
		want bool
	}{
		{"What the fuck are you doing?", true},
		{"This is f*cking amazing!", true}, // only the pattern stage catches this
		{"Hello, how are you today?", false},
	}
	for _, tc := range cases {
		if got := c.ContainsMatch(tc.text); got != tc.want {
			t.Errorf("ContainsMatch(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCompositeCensorPipelineOrder(t *testing.T) {
	// the composite contract is literal -> pattern -> trie, each stage
	// consuming the previous stage's masked output
	c := NewComposite()
	literal := NewWordSet()
	patterns := NewPatternSet()
	trie := NewTrie()

	for _, text := range []string{
		"What the fuck are you doing?",
		"This is f*cking amazing! shit",
		"What a sh*tty day!",
		"Hello, how are you today?",
	} {
		want := trie.Censor(patterns.Censor(literal.Censor(text)))
		if got := c.Censor(text); got != want {
			t.Errorf("Censor(%q) = %q, want pipeline result %q", text, got, want)
		}
	}
}

func TestCompositeConfigure(t *testing.T) {
	c := NewComposite()
	c.Configure(false, false, false)

	if c.ContainsMatch("fuck") {
		t.Fatalf("all strategies disabled, nothing should match")
	}
	if got := c.Censor("fuck"); got != "fuck" {
		t.Fatalf("all strategies disabled, Censor must be identity, got %q", got)
	}

	// pattern-only catches the variant the others cannot
	c.Configure(false, true, false)
	if !c.ContainsMatch("f*cking") {
		t.Fatalf("pattern stage disabled or lost")
	}
}

func TestCompositeBroadcastWhileDisabled(t *testing.T) {
	c := NewCompositeWithOptions(Options{SkipDefaults: true})
	c.Configure(false, false, false)

	// words added while strategies are disabled take effect on re-enable
	c.AddWord("grawlix")
	c.Configure(false, false, true)

	if !c.ContainsMatch("total grawlix") {
		t.Fatalf("word added while disabled must be live after re-enable")
	}
	if got := c.Censor("grawlix"); got != "*******" {
		t.Fatalf("Censor = %q, want *******", got)
	}
}

func TestCompositeLoadWordsBroadcast(t *testing.T) {
	c := NewCompositeWithOptions(Options{SkipDefaults: true})
	c.LoadWords([]string{"frak", "", "smeg"})

	c.Configure(true, false, false)
	if !c.ContainsMatch("frak!") {
		t.Fatalf("literal stage missing loaded word")
	}
	c.Configure(false, false, true)
	if !c.ContainsMatch("smeg head") {
		t.Fatalf("trie stage missing loaded word")
	}
}
