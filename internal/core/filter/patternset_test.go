package filter

import "testing"

func TestPatternSetVariantSpellings(t *testing.T) {
	p := NewPatternSet()

	// the obfuscation patterns flag what the literal strategies miss
	for _, text := range []string{"This is f*cking amazing!", "What a sh*tty day!"} {
		if !p.ContainsMatch(text) {
			t.Errorf("ContainsMatch(%q) = false, want true", text)
		}
	}
	w := NewWordSet()
	if w.ContainsMatch("f*cking") {
		t.Errorf("literal strategy should not flag variant spellings")
	}
}

func TestPatternSetCensor(t *testing.T) {
	p := NewPatternSet()

	cases := []struct {
		text string
		want string
	}{
		{"This is f*cking amazing!", "This is ****ing amazing!"},
		{"What a sh*tty day!", "What a ****ty day!"},
		{"What the fuck are you doing?", "What the **** are you doing?"},
		{"Hello, how are you today?", "Hello, how are you today?"},
		{"", ""},
	}
	for _, tc := range cases {
		got := p.Censor(tc.text)
		if got != tc.want {
			t.Errorf("Censor(%q) = %q, want %q", tc.text, got, tc.want)
		}
		if len(got) != len(tc.text) {
			t.Errorf("Censor(%q) changed length: %d -> %d", tc.text, len(tc.text), len(got))
		}
	}
}

func TestPatternSetBadPatternSkipped(t *testing.T) {
	p := NewPatternSet()
	before := p.Len()

	p.AddWord("[unclosed")

	if p.Len() != before {
		t.Fatalf("bad pattern was registered")
	}
	// everything registered before the failure stays active
	if !p.ContainsMatch("fuck") {
		t.Fatalf("existing patterns lost after compile failure")
	}
}

func TestPatternSetSequentialPipeline(t *testing.T) {
	// each pattern scans the previous pattern's masked output, so a later
	// pattern can match mask characters written by an earlier one. The
	// ordering is load-bearing; do not "fix" it to independent application
	p := NewPatternSetWithOptions(Options{SkipDefaults: true})
	p.AddWord("b")
	p.AddWord(`a\*`)

	if got := p.Censor("ab"); got != "**" {
		t.Fatalf("Censor(ab) = %q, want ** (second pattern must see first pattern's mask)", got)
	}
}

func TestPatternSetCaseInsensitive(t *testing.T) {
	p := NewPatternSet()
	for _, text := range []string{"FUCK", "FuCk", "fuck"} {
		if !p.ContainsMatch(text) {
			t.Errorf("ContainsMatch(%q) = false, want true", text)
		}
	}
}
