// Package service implements the censor service over the filter engines
package service

import (
	"context"
	"sync"
	"time"

	"mouthsoap/internal/core/filter"
	"mouthsoap/internal/core/wordlist"
	perr "mouthsoap/internal/platform/errors"
	"mouthsoap/internal/platform/logger"
	"mouthsoap/internal/services/censor/domain"
)

// Options configures the service at construction time
type Options struct {
	// Mask is the replacement character; zero means filter.DefaultMask
	Mask byte
	// WordFile is an optional extra word list loaded at startup. A missing
	// or unreadable file is a warning, never fatal
	WordFile string
}

// Service owns one engine per strategy. The filter core is lock-free by
// design (build then serve); the RWMutex here is the external
// synchronization that makes concurrent mutation safe
type Service struct {
	mu      sync.RWMutex
	engines map[string]filter.Engine
	hybrid  *filter.Composite
	log     *logger.Logger
}

var _ domain.CensorPort = (*Service)(nil)

// New builds the service with all four strategies
func New(opts Options) *Service {
	fopts := filter.Options{Mask: opts.Mask}
	hybrid := filter.NewCompositeWithOptions(fopts)
	s := &Service{
		engines: map[string]filter.Engine{
			domain.StrategyLiteral: filter.NewWordSetWithOptions(fopts),
			domain.StrategyPattern: filter.NewPatternSetWithOptions(fopts),
			domain.StrategyTrie:    filter.NewTrieWithOptions(fopts),
			domain.StrategyHybrid:  hybrid,
		},
		hybrid: hybrid,
		log:    logger.Named("censor"),
	}

	if opts.WordFile != "" {
		lines, err := wordlist.FromFile(opts.WordFile)
		if err != nil {
			// zero words loaded; matching continues with the built-in list
			s.log.Warn().Err(err).Str("path", opts.WordFile).Msg("word list not loaded")
		} else {
			for _, e := range s.engines {
				e.LoadWords(lines)
			}
			s.log.Info().Int("words", len(lines)).Str("path", opts.WordFile).Msg("word list loaded")
		}
	}
	return s
}

func (s *Service) engine(strategy string) (filter.Engine, string, error) {
	if strategy == "" {
		strategy = domain.StrategyHybrid
	}
	e, ok := s.engines[strategy]
	if !ok {
		return nil, "", perr.Newf(perr.ErrorCodeInvalidArgument, "unknown strategy %q", strategy)
	}
	return e, strategy, nil
}

// Check runs detection with the requested strategy
func (s *Service) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	e, strategy, err := s.engine(in.Strategy)
	if err != nil {
		return domain.CheckResult{}, err
	}

	s.mu.RLock()
	start := time.Now()
	match := e.ContainsMatch(in.Text)
	elapsed := time.Since(start)
	s.mu.RUnlock()

	logger.C(ctx).Debug().
		Str("strategy", strategy).
		Bool("match", match).
		Dur("elapsed", elapsed).
		Msg("check")
	return domain.CheckResult{
		Match:     match,
		Strategy:  strategy,
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
	}, nil
}

// Censor runs masking with the requested strategy
func (s *Service) Censor(ctx context.Context, in domain.CensorInput) (domain.CensorResult, error) {
	e, strategy, err := s.engine(in.Strategy)
	if err != nil {
		return domain.CensorResult{}, err
	}

	s.mu.RLock()
	start := time.Now()
	censored := e.Censor(in.Text)
	elapsed := time.Since(start)
	s.mu.RUnlock()

	logger.C(ctx).Debug().
		Str("strategy", strategy).
		Dur("elapsed", elapsed).
		Msg("censor")
	return domain.CensorResult{
		Censored:  censored,
		Strategy:  strategy,
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
	}, nil
}

// AddWords broadcasts new banned words to every strategy
func (s *Service) AddWords(ctx context.Context, in domain.WordsInput) (domain.WordsResult, error) {
	s.mu.Lock()
	for _, e := range s.engines {
		e.LoadWords(in.Words)
	}
	s.mu.Unlock()

	logger.C(ctx).Info().Int("count", len(in.Words)).Msg("words added")
	return domain.WordsResult{Added: len(in.Words)}, nil
}

// Configure flips the hybrid strategy participation flags
func (s *Service) Configure(ctx context.Context, in domain.ConfigInput) error {
	s.mu.Lock()
	s.hybrid.Configure(in.UseLiteral, in.UsePattern, in.UseTrie)
	s.mu.Unlock()

	logger.C(ctx).Info().
		Bool("literal", in.UseLiteral).
		Bool("pattern", in.UsePattern).
		Bool("trie", in.UseTrie).
		Msg("hybrid configured")
	return nil
}
