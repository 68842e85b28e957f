// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// RepoRecord holds the metadata fetched for a single repository.
// It is the core domain entity of this application.
type RepoRecord struct {
	HTMLURL         string `csv:"html_url"`
	ForksCount      int    `csv:"forks_count"`
	StargazersCount int    `csv:"stargazers_count"`
	Archived        bool   `csv:"-"`
}

// Row renders the record as a single CSV data row. It must match the line
// gocsv produces for the record's csv tags; report tests compare the two.
func (r RepoRecord) Row() string {
	return fmt.Sprintf("%s,%d,%d", r.HTMLURL, r.ForksCount, r.StargazersCount)
}

// Result is the outcome of one aggregation run.
type Result struct {
	TotalRepos int
	TotalStars int
	TotalForks int
	// Records are the included repositories in input order.
	Records []RepoRecord
	// Skipped counts explicit-list entries that could not be resolved.
	Skipped int
}

// Rows returns the CSV data rows in order, without the header.
func (r Result) Rows() []string {
	rows := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		rows = append(rows, rec.Row())
	}
	return rows
}
