package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	perr "gitwrapped/internal/platform/errors"
)

// UserByLogin fetches a user profile by login
// An absent login surfaces as a NotFound platform error
func (c *Client) UserByLogin(ctx context.Context, login, token string) (User, error) {
	var out User
	path := fmt.Sprintf("/users/%s", login)
	if err := c.getJSON(ctx, path, token, 1<<20, &out); err != nil {
		if IsNotFound(err) {
			return User{}, perr.NotFoundf("github user %q not found", login)
		}
		return User{}, err
	}
	return out, nil
}

// UserRepos fetches up to 100 of a user's repositories sorted by recent update
func (c *Client) UserRepos(ctx context.Context, login, token string) ([]Repo, error) {
	var out []Repo
	path := fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", login)
	if err := c.getJSON(ctx, path, token, 4<<20, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserEvents fetches up to 100 of a user's recent public timeline events
func (c *Client) UserEvents(ctx context.Context, login, token string) ([]Event, error) {
	var out []Event
	path := fmt.Sprintf("/users/%s/events?per_page=100", login)
	if err := c.getJSON(ctx, path, token, 4<<20, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContributorStats fetches contributor statistics for one repo
// pending=true means the upstream answered 202, stats still computing; the
// caller owns the bounded retry for that case
func (c *Client) ContributorStats(ctx context.Context, owner, repo, token string) (stats []ContributorStats, pending bool, err error) {
	path := fmt.Sprintf("/repos/%s/%s/stats/contributors", owner, repo)
	resp, err := c.Do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	if resp.StatusCode == http.StatusAccepted {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, true, nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUpstream, "github stats read failed")
	}
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUpstream, "github stats decode failed")
	}
	return stats, false, nil
}

// getJSON is the common GET and decode path for the REST endpoints
func (c *Client) getJSON(ctx context.Context, path, token string, limit int64, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "github read failed on %s", path)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "github decode failed on %s", path)
	}
	return nil
}
