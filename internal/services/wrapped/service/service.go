// Package service provides the wrapped aggregation engine
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/platform/logger"
	"gitwrapped/internal/services/wrapped/domain"
	"gitwrapped/internal/services/wrapped/repo"
)

// Config for the wrapped service
type Config struct {
	Churn ChurnConfig
}

// Service implements domain.AggregatorPort
// every call builds one fresh snapshot from network responses captured in
// that call; nothing is cached or shared between runs
type Service struct {
	gh         *gh.Client
	log        logger.Logger
	privileged domain.EvidencePort
	public     domain.EvidencePort
	churn      *churner
	now        func() time.Time
}

// New constructs the wrapped service with both evidence providers wired
func New(client *gh.Client, cfg Config) *Service {
	return &Service{
		gh:         client,
		log:        *logger.Named("wrapped"),
		privileged: repo.NewPrivileged(client),
		public:     repo.NewPublic(client),
		churn:      newChurner(client, cfg.Churn),
		now:        time.Now,
	}
}

// Aggregate implements domain.AggregatorPort
// credential presence is the single branch point: a non empty token selects
// the privileged path, absence selects the public path, and a privileged
// failure is never retried through the public path
func (s *Service) Aggregate(ctx context.Context, username, token string) (domain.Snapshot, error) {
	runID := uuid.NewString()
	start := s.now()

	user, err := s.gh.UserByLogin(ctx, username, token)
	if err != nil {
		return domain.Snapshot{}, err
	}

	provider := s.public
	if token != "" {
		provider = s.privileged
	}

	ev, err := provider.FetchEvidence(ctx, username, token)
	if err != nil {
		return domain.Snapshot{}, err
	}

	cal := deriveCalendar(ev.Calendar, start, ev.IsExact)
	timing := analyzeTiming(ev.Times)
	langs, stars := languageStats(ev.Repos)

	last90 := ev.Last90Days
	if ev.IsExact {
		last90 = cal.Last90Days
	}

	code := s.churn.codeStats(ctx, username, token, ev.ChurnRepos)

	snap := domain.Snapshot{
		User: domain.UserProfile{
			Login:     user.Login,
			ID:        user.ID,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
		},
		Stats: domain.Stats{
			Commits:    ev.Commits,
			PRs:        ev.PRs,
			Issues:     ev.Issues,
			Stars:      stars,
			Last90Days: last90,
		},
		Repos:             ev.Repos,
		Languages:         langs,
		Heatmap:           ev.Calendar,
		Streaks:           cal.Streaks,
		Timing:            timing,
		WorkStyle:         cal.WorkStyle,
		MostProductiveDay: cal.MostProductiveDay,
		CodeStats:         code,
		IsExact:           ev.IsExact,
		GeneratedAt:       start.UTC(),
	}

	s.log.Info().
		Str("run_id", runID).
		Str("login", username).
		Bool("exact", snap.IsExact).
		Int("commits", snap.Stats.Commits).
		Int("repos", len(snap.Repos)).
		Dur("took", s.now().Sub(start)).
		Msg("aggregation complete")

	return snap, nil
}
