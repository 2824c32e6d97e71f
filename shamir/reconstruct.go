package shamir

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/izouxv/hashira/bignum"
	"github.com/izouxv/hashira/utils"
)

var (
	// ErrInsufficientShares is returned when fewer than k valid shares are available.
	ErrInsufficientShares = errors.New("not enough valid shares to find the secret")
	// ErrNoConsistentSecret is returned when no k-subset yields an integer secret.
	ErrNoConsistentSecret = errors.New("no combination of shares yields a whole-number secret")
)

// Result describes the outcome of a majority-vote reconstruction.
type Result struct {
	RunID       string     `json:"run_id"`
	Secret      bignum.Int `json:"-"`
	Value       string     `json:"secret"`
	Fingerprint string     `json:"fingerprint"`
	Votes       int        `json:"votes"`
	TotalVotes  int        `json:"total_votes"`
	Evaluated   int        `json:"evaluated"`
	Rejected    int        `json:"rejected"`
	Tally       []Vote     `json:"tally"`
}

type options struct {
	workers int
	logger  zerolog.Logger
}

// Option configures Reconstruct.
type Option func(*options)

// WithWorkers evaluates subsets on up to n goroutines. Values below 2 keep
// the evaluation sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for progress and rejected subsets.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Reconstruct interpolates every k-subset of shares and returns the secret
// produced by the most subsets. Subsets whose interpolation fails cast no
// vote. Ties go to the numerically smallest secret, so the result does not
// depend on evaluation order or worker count.
func Reconstruct(ctx context.Context, shares []Share, k int, opts ...Option) (*Result, error) {
	o := options{workers: 1, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	runID := uuid.New().String()
	logger := utils.Layer(o.logger, utils.LayerShamir).With().Str("run_id", runID).Logger()

	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidThreshold, k)
	}
	if len(shares) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(shares))
	}

	logger.Info().
		Int("shares", len(shares)).
		Int("k", k).
		Int("subsets", Binomial(len(shares), k)).
		Int("workers", o.workers).
		Msg("Reconstructing secret")

	tally := NewTally()
	var evaluated, rejected atomic.Int64

	evaluate := func(combo []int) {
		subset := make([]Share, len(combo))
		for i, idx := range combo {
			subset[i] = shares[idx]
		}
		evaluated.Add(1)
		secret, err := Combine(subset)
		if err != nil {
			rejected.Add(1)
			logger.Debug().Err(err).Ints("subset", combo).Msg("Subset rejected")
			return
		}
		tally.Add(secret)
	}

	if o.workers < 2 {
		for combo := range Combinations(len(shares), k) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			evaluate(combo)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for combo := range Combinations(len(shares), k) {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				evaluate(combo)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	winner, ok := tally.Winner()
	if !ok {
		logger.Warn().Int64("rejected", rejected.Load()).Msg("No subset produced a whole-number secret")
		return nil, ErrNoConsistentSecret
	}

	res := &Result{
		RunID:       runID,
		Secret:      winner.Secret,
		Value:       winner.Value,
		Fingerprint: utils.Fingerprint(winner.Value),
		Votes:       winner.Count,
		TotalVotes:  tally.Total(),
		Evaluated:   int(evaluated.Load()),
		Rejected:    int(rejected.Load()),
		Tally:       tally.Votes(),
	}
	logger.Info().
		Str("fingerprint", res.Fingerprint).
		Int("votes", res.Votes).
		Int("total_votes", res.TotalVotes).
		Int("candidates", len(res.Tally)).
		Msg("Secret reconstructed")
	return res, nil
}
