package elimination

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/schedule"
)

// Engine answers elimination queries over one immutable repository.
//
// The repository accessors (TeamCount, TeamNames, Wins, Losses, Remaining,
// Against) are promoted from the embedded *schedule.Repository. Engine is
// safe for concurrent use.
type Engine struct {
	*schedule.Repository

	reduction *Reduction
	cache     *Cache
	logger    zerolog.Logger
	workers   int
}

type engineConfig struct {
	algorithm   flow.Algorithm
	logger      zerolog.Logger
	verboseFlow bool
	workers     int
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithAlgorithm selects the max-flow strategy (default Edmonds–Karp).
func WithAlgorithm(alg flow.Algorithm) Option {
	return func(c *engineConfig) { c.algorithm = alg }
}

// WithLogger sets the logger for decisions (default: disabled).
func WithLogger(logger zerolog.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithVerboseFlow traces every augmenting path at debug level.
func WithVerboseFlow(verbose bool) Option {
	return func(c *engineConfig) { c.verboseFlow = verbose }
}

// WithWorkers bounds the concurrency of EliminateAll; n < 1 means one worker.
func WithWorkers(n int) Option {
	return func(c *engineConfig) { c.workers = n }
}

// NewEngine returns an Engine over repo.
func NewEngine(repo *schedule.Repository, opts ...Option) *Engine {
	cfg := engineConfig{
		algorithm: flow.AlgorithmEdmondsKarp,
		logger:    zerolog.Nop(),
		workers:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	e := &Engine{
		Repository: repo,
		reduction:  NewReduction(repo, cfg.algorithm, cfg.logger, cfg.verboseFlow),
		logger:     cfg.logger,
		workers:    cfg.workers,
	}
	e.cache = NewCache(e.reduction.Decide)

	return e
}

// Result returns the memoized elimination Result for name.
func (e *Engine) Result(ctx context.Context, name string) (Result, error) {
	if _, err := e.Index(name); err != nil {
		return Result{}, err
	}

	return e.cache.Get(ctx, name)
}

// IsEliminated reports whether name is mathematically eliminated.
func (e *Engine) IsEliminated(ctx context.Context, name string) (bool, error) {
	res, err := e.Result(ctx, name)
	if err != nil {
		return false, err
	}

	return res.IsEliminated(), nil
}

// CertificateOfElimination returns the teams proving that name is
// eliminated; ok is false when name is not eliminated.
func (e *Engine) CertificateOfElimination(ctx context.Context, name string) (certificate []string, ok bool, err error) {
	res, err := e.Result(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if !res.IsEliminated() {
		return nil, false, nil
	}

	return res.Certificate, true, nil
}

// Cached returns the stored Result for name without computing it.
func (e *Engine) Cached(name string) Result { return e.cache.Peek(name) }

// Standing pairs a team record with its elimination Result.
type Standing struct {
	Team   schedule.Team
	Result Result
}

// EliminateAll decides every team, up to the configured number of workers at
// a time, and returns the standings in input order. The first error cancels
// the remaining work.
func (e *Engine) EliminateAll(ctx context.Context) ([]Standing, error) {
	out := make([]Standing, e.TeamCount())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range out {
		team := e.TeamAt(i)
		g.Go(func() error {
			res, err := e.cache.Get(gctx, team.Name)
			if err != nil {
				return eris.Wrapf(err, "decide %q", team.Name)
			}
			out[i] = Standing{Team: team, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.Info().Int("teams", len(out)).Msg("standings evaluated")

	return out, nil
}

// Verify checks, without any flow computation, that res proves the
// elimination of name. For a certificate R it requires
//
//	Σ wins(R) + Σ_{i<j∈R} against(i,j) > |R| · (wins(name)+remaining(name))
//
// i.e. R's average final wins exceed what name can reach. A singleton R
// reduces to wins(i) > wins(name)+remaining(name). Results that are not
// Eliminated verify trivially, except NotComputed which is rejected.
func (e *Engine) Verify(name string, res Result) error {
	team, err := e.Team(name)
	if err != nil {
		return err
	}
	switch res.Status {
	case NotEliminated:
		return nil
	case Eliminated:
	default:
		return eris.Wrapf(ErrInvalidCertificate, "%q: status %s", name, res.Status)
	}
	if len(res.Certificate) == 0 {
		return eris.Wrapf(ErrInvalidCertificate, "%q: empty certificate", name)
	}

	members := make([]int, 0, len(res.Certificate))
	seen := make(map[string]struct{}, len(res.Certificate))
	for _, other := range res.Certificate {
		i, err := e.Index(other)
		if err != nil {
			return eris.Wrapf(ErrInvalidCertificate, "%q: %v", name, err)
		}
		if other == name {
			return eris.Wrapf(ErrInvalidCertificate, "%q: certificate contains the team itself", name)
		}
		if _, dup := seen[other]; dup {
			return eris.Wrapf(ErrInvalidCertificate, "%q: duplicate member %q", name, other)
		}
		seen[other] = struct{}{}
		members = append(members, i)
	}

	var total int64
	for a, i := range members {
		total += int64(e.TeamAt(i).Wins)
		for _, j := range members[a+1:] {
			total += int64(e.AgainstAt(i, j))
		}
	}
	bound := int64(len(members)) * int64(team.MaxWins())
	if total <= bound {
		return eris.Wrapf(ErrInvalidCertificate, "%q: subset %v reaches %d wins, needs more than %d",
			name, res.Certificate, total, bound)
	}

	return nil
}
