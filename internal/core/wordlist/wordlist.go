// Package wordlist reads banned-word lists from line-oriented sources.
// Engines consume plain line slices, so any storage that can produce lines
// (file, in-memory list, network stream) can feed them
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read collects one candidate word per line, skipping blank lines.
// Internal whitespace is preserved; there is no escaping
func Read(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ln := sc.Text(); ln != "" {
			lines = append(lines, ln)
		}
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("wordlist: read: %w", err)
	}
	return lines, nil
}

// FromFile reads a word list from path. Callers treat a missing or
// unreadable file as zero words loaded: log a warning and keep matching
// with the list already in place
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
