// Package domain holds the censor service types and ports
package domain

// Strategy names accepted by the API
const (
	StrategyLiteral = "literal"
	StrategyPattern = "pattern"
	StrategyTrie    = "trie"
	StrategyHybrid  = "hybrid"
)

// CheckInput asks whether text contains a banned word
type CheckInput struct {
	Text     string `json:"text" validate:"required"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=literal pattern trie hybrid"`
}

// CheckResult reports the detection outcome and wall-clock cost
type CheckResult struct {
	Match     bool    `json:"match"`
	Strategy  string  `json:"strategy"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// CensorInput asks for a masked copy of text
type CensorInput struct {
	Text     string `json:"text" validate:"required"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=literal pattern trie hybrid"`
}

// CensorResult carries the masked text, same length as the input
type CensorResult struct {
	Censored  string  `json:"censored"`
	Strategy  string  `json:"strategy"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

// WordsInput adds banned words to every strategy
type WordsInput struct {
	Words []string `json:"words" validate:"required,min=1,dive,required"`
}

// WordsResult reports how many words were broadcast
type WordsResult struct {
	Added int `json:"added"`
}

// ConfigInput flips the hybrid strategy participation flags
type ConfigInput struct {
	UseLiteral bool `json:"use_literal"`
	UsePattern bool `json:"use_pattern"`
	UseTrie    bool `json:"use_trie"`
}
