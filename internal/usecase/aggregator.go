// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/repo-stats/internal/domain"
	"github.com/naka-gawa/repo-stats/internal/gateway"
)

// Aggregator is the use case for aggregating repository stars and forks.
// It orchestrates the fetching and folding of repository metadata.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  logrus.FieldLogger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// AggregateOrg lists every public repository of org and aggregates the
// non-archived ones. A failed page aborts the whole run.
func (a *Aggregator) AggregateOrg(ctx context.Context, org string, perPage int) (domain.Result, error) {
	a.logger.Debugf("Usecase: Listing repositories for organization %s...", org)

	pager, err := gateway.NewOrgPager(a.fetcher, org, perPage)
	if err != nil {
		return domain.Result{}, err
	}

	var all []domain.RepoRecord
	for !pager.Done() {
		batch, err := pager.Next(ctx)
		if err != nil {
			return domain.Result{}, fmt.Errorf("failed to list repositories for %s: %w", org, err)
		}
		all = append(all, batch...)
	}
	a.logger.Debugf("Usecase: Fetched %d repositories in %d page(s).", len(all), pager.Pages())

	result := Fold(all, true)
	a.logDistribution(result)
	return result, nil
}

// AggregateList looks up each repository URL in order. Entries that cannot be
// parsed or fetched are logged and skipped.
func (a *Aggregator) AggregateList(ctx context.Context, urls []string) domain.Result {
	a.logger.Debugf("Usecase: Looking up %d repositories...", len(urls))

	fetched := make([]domain.RepoRecord, 0, len(urls))
	skipped := 0
	for _, u := range urls {
		owner, repo, err := gateway.ParseRepoURL(u)
		if err != nil {
			a.logger.WithError(err).Error("Skipping repository")
			skipped++
			continue
		}
		record, err := a.fetcher.GetRepo(ctx, owner, repo)
		if err != nil {
			a.logger.WithError(err).WithField("url", u).Error("Skipping repository")
			skipped++
			continue
		}
		fetched = append(fetched, record)
	}

	result := Fold(fetched, false)
	result.Skipped = skipped
	a.logDistribution(result)
	return result
}

// Fold sums stars and forks over records in order. When dropArchived is set,
// archived records are excluded from both the totals and the rows.
func Fold(records []domain.RepoRecord, dropArchived bool) domain.Result {
	result := domain.Result{Records: make([]domain.RepoRecord, 0, len(records))}
	for _, r := range records {
		if dropArchived && r.Archived {
			continue
		}
		result.TotalStars += r.StargazersCount
		result.TotalForks += r.ForksCount
		result.Records = append(result.Records, r)
	}
	result.TotalRepos = len(result.Records)
	return result
}

func (a *Aggregator) logDistribution(result domain.Result) {
	if len(result.Records) == 0 {
		return
	}
	stars := make(stats.Float64Data, 0, len(result.Records))
	for _, r := range result.Records {
		stars = append(stars, float64(r.StargazersCount))
	}
	median, err := stars.Median()
	if err != nil {
		return
	}
	mean, err := stars.Mean()
	if err != nil {
		return
	}
	a.logger.WithFields(logrus.Fields{
		"median_stars": median,
		"mean_stars":   mean,
	}).Debug("Usecase: Aggregation complete.")
}
