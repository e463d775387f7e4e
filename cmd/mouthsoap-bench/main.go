// Command mouthsoap-bench exercises every matching strategy over sample
// texts and times censoring throughput
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"mouthsoap/internal/core/filter"
	"mouthsoap/internal/core/wordlist"
	"mouthsoap/internal/platform/logger"
)

var sampleTexts = []string{
	"What the fuck are you doing?",
	"This is a shitty situation.",
	"You're such a bastard!",
	"I don't give a damn about it.",
	"He's a complete ass.",
	"She's being a real bitch today.",
	"This is f*cking amazing!",  // variant spelling
	"What a sh*tty day!",        // variant spelling
	"Hello, how are you today?", // clean
}

func main() {
	var (
		wordFile = flag.String("words", "", "optional word list file (one word per line)")
		repeat   = flag.Int("repeat", 1000, "throughput sample repetitions")
	)
	flag.Parse()

	l := logger.Get()

	engines := []struct {
		name   string
		engine filter.Engine
	}{
		{"literal", filter.NewWordSet()},
		{"pattern", filter.NewPatternSet()},
		{"trie", filter.NewTrie()},
		{"hybrid", filter.NewComposite()},
	}

	if *wordFile != "" {
		lines, err := wordlist.FromFile(*wordFile)
		if err != nil {
			l.Warn().Err(err).Str("path", *wordFile).Msg("word list not loaded")
		} else {
			for _, e := range engines {
				e.engine.LoadWords(lines)
			}
			l.Info().Int("words", len(lines)).Msg("word list loaded")
		}
	}

	for _, e := range engines {
		fmt.Printf("=== %s ===\n", e.name)
		for _, text := range sampleTexts {
			fmt.Printf("input:    %s\n", text)
			fmt.Printf("match:    %v\n", e.engine.ContainsMatch(text))
			fmt.Printf("censored: %s\n---\n", e.engine.Censor(text))
		}
	}

	// throughput: one long document, censored once per engine
	doc := strings.Repeat("This is some text with fuck and shit in it. ", *repeat)
	for _, e := range engines {
		start := time.Now()
		_ = e.engine.Censor(doc)
		elapsed := time.Since(start)
		mbps := float64(len(doc)) / (1 << 20) / elapsed.Seconds()
		l.Info().
			Str("engine", e.name).
			Int("bytes", len(doc)).
			Dur("elapsed", elapsed).
			Float64("mb_per_sec", mbps).
			Msg("censor throughput")
	}
}
