package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// MaxPageSize is the largest page size the GitHub listing endpoints honor.
const MaxPageSize = 100

var (
	// ErrInvalidPageSize is returned when a page size falls outside 1..MaxPageSize.
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrPagerDone is returned by Next once the listing is exhausted.
	ErrPagerDone = errors.New("no more pages")
)

type pagerState int

const (
	stateFetching pagerState = iota
	stateExhausted
	stateFailed
)

// OrgPager walks an organization's repository listing one page at a time.
// A page shorter than the requested size ends the listing; any error is terminal.
type OrgPager struct {
	fetcher Fetcher
	org     string
	perPage int

	state pagerState
	page  int
	err   error
}

// NewOrgPager creates a pager positioned at page 1.
func NewOrgPager(fetcher Fetcher, org string, perPage int) (*OrgPager, error) {
	if perPage < 1 || perPage > MaxPageSize {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidPageSize, perPage, MaxPageSize)
	}
	return &OrgPager{
		fetcher: fetcher,
		org:     org,
		perPage: perPage,
		state:   stateFetching,
		page:    1,
	}, nil
}

// Next returns the next batch of repositories. It returns ErrPagerDone after the
// final batch and the original error on every call after a failure.
func (p *OrgPager) Next(ctx context.Context) ([]domain.RepoRecord, error) {
	switch p.state {
	case stateExhausted:
		return nil, ErrPagerDone
	case stateFailed:
		return nil, p.err
	}

	batch, err := p.fetcher.ListOrgRepos(ctx, p.org, p.perPage, p.page)
	if err != nil {
		p.state = stateFailed
		p.err = err
		return nil, err
	}
	if len(batch) < p.perPage {
		p.state = stateExhausted
	} else {
		p.page++
	}
	return batch, nil
}

// Done reports whether the pager has reached a terminal state.
func (p *OrgPager) Done() bool {
	return p.state != stateFetching
}

// Pages returns how many pages have been fetched successfully.
func (p *OrgPager) Pages() int {
	if p.state == stateExhausted {
		return p.page
	}
	return p.page - 1
}
