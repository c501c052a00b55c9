package repo

import (
	"context"
	"time"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/services/wrapped/domain"
)

const (
	eventPush    = "PushEvent"
	eventPR      = "PullRequestEvent"
	eventIssues  = "IssuesEvent"
	actionOpened = "opened"
)

// Public fetches evidence from the anonymous REST listings
// the calendar it produces is a synthetic approximation bucketed from the
// public event timeline, not real historical data
type Public struct {
	GH  *gh.Client
	now func() time.Time
}

// NewPublic constructs the public evidence provider
func NewPublic(client *gh.Client) *Public {
	return &Public{GH: client, now: time.Now}
}

// FetchEvidence implements domain.EvidencePort
func (p *Public) FetchEvidence(ctx context.Context, username, token string) (domain.Evidence, error) {
	repos, err := p.GH.UserRepos(ctx, username, token)
	if err != nil {
		return domain.Evidence{}, err
	}
	events, err := p.GH.UserEvents(ctx, username, token)
	if err != nil {
		return domain.Evidence{}, err
	}

	ev := domain.Evidence{IsExact: false}

	var times []time.Time
	for _, e := range events {
		switch e.Type {
		case eventPush:
			size := e.Payload.Size
			if size == 0 {
				size = 1
			}
			ev.Commits += size
			times = append(times, e.CreatedAt)
		case eventPR:
			if e.Payload.Action == actionOpened {
				ev.PRs++
				times = append(times, e.CreatedAt)
			}
		case eventIssues:
			if e.Payload.Action == actionOpened {
				times = append(times, e.CreatedAt)
			}
		}
	}
	ev.Times = times

	// no true calendar exists for this path, so the rolling window counter
	// is the classified event count rather than a calendar sum
	ev.Last90Days = len(times)

	for i, r := range repos {
		owner := r.Owner.Login
		if owner == "" {
			owner = username
		}
		ev.Repos = append(ev.Repos, domain.RepoSummary{
			Name:     r.Name,
			Stars:    r.Stargazers,
			Forks:    r.Forks,
			Language: r.Language,
		})
		// recently updated repos double as churn candidates here
		if i < 5 {
			ev.ChurnRepos = append(ev.ChurnRepos, domain.ChurnCandidate{Owner: owner, Name: r.Name})
		}
	}

	if len(times) > 0 {
		ev.Calendar = syntheticCalendar(times, p.now())
	}

	return ev, nil
}
