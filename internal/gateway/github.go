// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying go-github client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching repository metadata from GitHub.
type Fetcher interface {
	ListOrgRepos(ctx context.Context, org string, perPage, page int) ([]domain.RepoRecord, error)
	GetRepo(ctx context.Context, owner, repo string) (domain.RepoRecord, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     logrus.FieldLogger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty baseURL targets api.github.com.
func NewGitHubGateway(token, baseURL string, logger logrus.FieldLogger) (*GitHubGateway, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		},
	}
	restClient := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
			u.Path += "/"
		}
		restClient.BaseURL = u
	}
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// ListOrgRepos fetches a single page of an organization's public repositories.
// archived=false is sent for parity with the web UI, but the API may ignore it.
func (g *GitHubGateway) ListOrgRepos(ctx context.Context, org string, perPage, page int) ([]domain.RepoRecord, error) {
	u := fmt.Sprintf("orgs/%s/repos?type=public&per_page=%d&page=%d&archived=false",
		url.PathEscape(org), perPage, page)
	req, err := g.restClient.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository listing request: %w", err)
	}

	g.logger.Debugf("  Fetching page %d of %s repositories...", page, org)
	var repos []*github.Repository
	resp, err := g.restClient.Do(ctx, req, &repos)
	if err != nil {
		return nil, fmt.Errorf("error fetching repos: %s: %w", statusText(resp), err)
	}

	records := make([]domain.RepoRecord, 0, len(repos))
	for _, r := range repos {
		records = append(records, toRecord(r))
	}
	return records, nil
}

// GetRepo fetches the metadata of a single repository.
func (g *GitHubGateway) GetRepo(ctx context.Context, owner, repo string) (domain.RepoRecord, error) {
	g.logger.Debugf("  Fetching repository %s/%s...", owner, repo)
	r, resp, err := g.restClient.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return domain.RepoRecord{}, fmt.Errorf("error fetching repo %s/%s: %s: %w", owner, repo, statusText(resp), err)
	}
	return toRecord(r), nil
}

func toRecord(r *github.Repository) domain.RepoRecord {
	return domain.RepoRecord{
		HTMLURL:         r.GetHTMLURL(),
		ForksCount:      r.GetForksCount(),
		StargazersCount: r.GetStargazersCount(),
		Archived:        r.GetArchived(),
	}
}

// statusText returns the HTTP status line of resp, or a placeholder when the
// request never produced a response.
func statusText(resp *github.Response) string {
	if resp == nil || resp.Response == nil {
		return "no response"
	}
	return resp.Status
}
