// Package repo implements the two interchangeable evidence fetch paths
// against the GitHub API
package repo

import (
	"context"
	"time"

	gh "gitwrapped/internal/adapters/github"
	ptime "gitwrapped/internal/platform/time"
	"gitwrapped/internal/services/wrapped/domain"
)

// Privileged fetches evidence through the authenticated GraphQL endpoint
// it yields the exact contribution calendar for the current calendar year
type Privileged struct {
	GH  *gh.Client
	now func() time.Time
}

// NewPrivileged constructs the privileged evidence provider
func NewPrivileged(client *gh.Client) *Privileged {
	return &Privileged{GH: client, now: time.Now}
}

// FetchEvidence implements domain.EvidencePort
func (p *Privileged) FetchEvidence(ctx context.Context, username, token string) (domain.Evidence, error) {
	from, to := ptime.YearBounds(p.now())
	c, err := p.GH.ContributionsByYear(ctx, username, token, from, to)
	if err != nil {
		return domain.Evidence{}, err
	}

	ev := domain.Evidence{
		Commits: c.TotalCommits,
		PRs:     c.TotalPRs,
		Issues:  c.TotalIssues,
		IsExact: true,
	}

	for _, w := range c.Weeks {
		wk := domain.Week{ContributionDays: make([]domain.ContributionDay, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			wk.ContributionDays = append(wk.ContributionDays, domain.ContributionDay{
				ContributionCount: d.ContributionCount,
				Date:              d.Date,
				Weekday:           d.Weekday,
			})
		}
		ev.Calendar = append(ev.Calendar, wk)
	}

	// One sampled timestamp per active repository plus every PR and issue
	// timestamp. The sparse commit sample is intentional, the upstream query
	// requests a single commit node per repository to bound response size
	for _, s := range c.CommitSamples {
		ev.Times = append(ev.Times, s.OccurredAt)
		ev.ChurnRepos = append(ev.ChurnRepos, domain.ChurnCandidate{Owner: s.Owner, Name: s.Repo})
	}
	ev.Times = append(ev.Times, c.PRTimes...)
	ev.Times = append(ev.Times, c.IssueTimes...)

	for _, r := range c.Repos {
		rs := domain.RepoSummary{
			Name:  r.Name,
			Stars: r.StargazerCount,
			Forks: r.ForkCount,
		}
		if r.PrimaryLanguage != nil {
			rs.Language = r.PrimaryLanguage.Name
			rs.LanguageColor = r.PrimaryLanguage.Color
		}
		ev.Repos = append(ev.Repos, rs)
	}

	return ev, nil
}
