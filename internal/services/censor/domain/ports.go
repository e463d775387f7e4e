package domain

import "context"

// CensorPort is the service contract exposed over http
type CensorPort interface {
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
	Censor(ctx context.Context, in CensorInput) (CensorResult, error)
	AddWords(ctx context.Context, in WordsInput) (WordsResult, error)
	Configure(ctx context.Context, in ConfigInput) error
}
