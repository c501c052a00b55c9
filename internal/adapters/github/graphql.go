package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "gitwrapped/internal/platform/errors"
)

// contributionsQuery is the single combined query for the privileged path.
// Commit contributions deliberately sample one node per repository to bound
// response size; the timing derivation downstream expects exactly that
const contributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      totalCommitContributions
      totalPullRequestContributions
      totalIssueContributions
      contributionCalendar {
        weeks {
          contributionDays { contributionCount date weekday }
        }
      }
      commitContributionsByRepository(maxRepositories: 50) {
        repository { name owner { login } }
        contributions(first: 1) { nodes { occurredAt } }
      }
      pullRequestContributions(first: 100) { nodes { occurredAt } }
      issueContributions(first: 100) { nodes { occurredAt } }
    }
    repositories(first: 50, orderBy: {field: STARGAZERS, direction: DESC}, ownerAffiliations: OWNER) {
      nodes { name stargazerCount forkCount primaryLanguage { name color } }
    }
  }
}`

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlOccurred struct {
	OccurredAt time.Time `json:"occurredAt"`
}

type gqlEnvelope struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				TotalCommitContributions      int `json:"totalCommitContributions"`
				TotalPullRequestContributions int `json:"totalPullRequestContributions"`
				TotalIssueContributions       int `json:"totalIssueContributions"`
				ContributionCalendar          struct {
					Weeks []CalendarWeek `json:"weeks"`
				} `json:"contributionCalendar"`
				CommitContributionsByRepository []struct {
					Repository struct {
						Name  string `json:"name"`
						Owner struct {
							Login string `json:"login"`
						} `json:"owner"`
					} `json:"repository"`
					Contributions struct {
						Nodes []gqlOccurred `json:"nodes"`
					} `json:"contributions"`
				} `json:"commitContributionsByRepository"`
				PullRequestContributions struct {
					Nodes []gqlOccurred `json:"nodes"`
				} `json:"pullRequestContributions"`
				IssueContributions struct {
					Nodes []gqlOccurred `json:"nodes"`
				} `json:"issueContributions"`
			} `json:"contributionsCollection"`
			Repositories struct {
				Nodes []GQLRepo `json:"nodes"`
			} `json:"repositories"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionsByYear issues the combined contributions query for one
// calendar year window
func (c *Client) ContributionsByYear(ctx context.Context, login, token string, from, to time.Time) (Contributions, error) {
	body, err := json.Marshal(gqlRequest{
		Query: contributionsQuery,
		Variables: map[string]any{
			"login": login,
			"from":  from.UTC().Format(time.RFC3339),
			"to":    to.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "github graphql marshal failed")
	}

	resp, err := c.Do(ctx, http.MethodPost, "/graphql", token, body)
	if err != nil {
		return Contributions{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "github graphql read failed")
	}
	var env gqlEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Contributions{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "github graphql decode failed")
	}
	if len(env.Errors) > 0 {
		return Contributions{}, perr.Upstreamf("github graphql error: %s", env.Errors[0].Message)
	}
	if env.Data.User == nil {
		return Contributions{}, perr.NotFoundf("github user %q not found", login)
	}

	cc := env.Data.User.ContributionsCollection
	out := Contributions{
		TotalCommits: cc.TotalCommitContributions,
		TotalPRs:     cc.TotalPullRequestContributions,
		TotalIssues:  cc.TotalIssueContributions,
		Weeks:        cc.ContributionCalendar.Weeks,
		Repos:        env.Data.User.Repositories.Nodes,
	}
	for _, r := range cc.CommitContributionsByRepository {
		if len(r.Contributions.Nodes) == 0 {
			continue
		}
		out.CommitSamples = append(out.CommitSamples, CommitSample{
			Repo:       r.Repository.Name,
			Owner:      r.Repository.Owner.Login,
			OccurredAt: r.Contributions.Nodes[0].OccurredAt,
		})
	}
	for _, n := range cc.PullRequestContributions.Nodes {
		out.PRTimes = append(out.PRTimes, n.OccurredAt)
	}
	for _, n := range cc.IssueContributions.Nodes {
		out.IssueTimes = append(out.IssueTimes, n.OccurredAt)
	}
	return out, nil
}
