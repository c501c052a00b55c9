package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/text/cases"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/platform/logger"
	ptime "gitwrapped/internal/platform/time"
	"gitwrapped/internal/services/wrapped/domain"
)

// ChurnConfig bounds the best effort line change enrichment
type ChurnConfig struct {
	MaxRepos   int
	Attempts   int
	Delay      time.Duration
	OutlierMax int
}

func defaultChurnConfig() ChurnConfig {
	return ChurnConfig{
		MaxRepos:   5,
		Attempts:   3,
		Delay:      2 * time.Second,
		OutlierMax: 50_000,
	}
}

// churner runs the contributor stats fan out
// sleep, now, and randInt are seams so tests can pin time and randomness
type churner struct {
	gh      *gh.Client
	log     logger.Logger
	cfg     ChurnConfig
	sleep   func(time.Duration)
	now     func() time.Time
	randInt func(int) int
}

func newChurner(client *gh.Client, cfg ChurnConfig) *churner {
	def := defaultChurnConfig()
	if cfg.MaxRepos <= 0 {
		cfg.MaxRepos = def.MaxRepos
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = def.Attempts
	}
	if cfg.Delay <= 0 {
		cfg.Delay = def.Delay
	}
	if cfg.OutlierMax <= 0 {
		cfg.OutlierMax = def.OutlierMax
	}
	return &churner{
		gh:      client,
		log:     *logger.Named("churn"),
		cfg:     cfg,
		sleep:   time.Sleep,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

type churnTally struct {
	additions int
	deletions int
}

// codeStats fans out over at most MaxRepos candidates concurrently and sums
// the per repo tallies. It never fails: missing data degrades to zero and an
// all zero combined result is replaced by a randomized plausible placeholder
// flagged as estimated
func (c *churner) codeStats(ctx context.Context, login, token string, candidates []domain.ChurnCandidate) domain.CodeStats {
	if len(candidates) > c.cfg.MaxRepos {
		candidates = candidates[:c.cfg.MaxRepos]
	}

	results := make([]churnTally, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, cand domain.ChurnCandidate) {
			defer wg.Done()
			results[i] = c.repoChurn(ctx, login, token, cand)
		}(i, cand)
	}
	wg.Wait()

	var out domain.CodeStats
	for _, t := range results {
		out.Additions += t.additions
		out.Deletions += t.deletions
	}
	if out.Additions == 0 && out.Deletions == 0 {
		return domain.CodeStats{
			Additions: 3000 + c.randInt(9000),
			Deletions: 1000 + c.randInt(4000),
			Estimated: true,
		}
	}
	return out
}

// repoChurn fetches contributor stats for one repo with a bounded retry on
// the still computing signal, then sums this year's weekly figures for the
// requesting user. Any failure degrades silently to zero
func (c *churner) repoChurn(ctx context.Context, login, token string, cand domain.ChurnCandidate) churnTally {
	for attempt := 0; attempt < c.cfg.Attempts; attempt++ {
		stats, pending, err := c.gh.ContributorStats(ctx, cand.Owner, cand.Name, token)
		if err != nil {
			c.log.Debug().Err(err).Str("repo", cand.Name).Msg("contributor stats unavailable")
			return churnTally{}
		}
		if pending {
			if attempt < c.cfg.Attempts-1 {
				c.sleep(c.cfg.Delay)
			}
			continue
		}
		return c.tally(stats, login)
	}
	c.log.Debug().Str("repo", cand.Name).Msg("contributor stats still computing, giving up")
	return churnTally{}
}

// tally locates the requesting user's entry with a case insensitive login
// match and sums weeks starting within the current calendar year, skipping
// any week where either figure exceeds the outlier threshold
func (c *churner) tally(stats []gh.ContributorStats, login string) churnTally {
	fold := cases.Fold()
	want := fold.String(login)

	from, to := ptime.YearBounds(c.now())
	var t churnTally
	for _, cs := range stats {
		if fold.String(cs.Author.Login) != want {
			continue
		}
		for _, w := range cs.Weeks {
			start := time.Unix(w.W, 0).UTC()
			if start.Before(from) || !start.Before(to) {
				continue
			}
			if w.Additions > c.cfg.OutlierMax || w.Deletions > c.cfg.OutlierMax {
				continue
			}
			t.additions += w.Additions
			t.deletions += w.Deletions
		}
	}
	return t
}
