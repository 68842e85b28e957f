package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

const header = "html_url,forks_count,stargazers_count"

func fixedWriter(dir string) *Writer {
	return &Writer{
		Dir:    dir,
		Prefix: "hashgraph-repos-stats",
		// 23:30 in UTC-5 is already the next calendar day in UTC.
		Now: func() time.Time {
			return time.Date(2024, 3, 4, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
		},
	}
}

func readLines(t *testing.T, path string) []string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hashgraph-public-repos-stats")
	w := fixedWriter(dir)
	result := domain.Result{
		TotalRepos: 2,
		Records: []domain.RepoRecord{
			{HTMLURL: "https://github.com/hashgraph/a", ForksCount: 1, StargazersCount: 10, Archived: true},
			{HTMLURL: "https://github.com/hashgraph/b", ForksCount: 2, StargazersCount: 20},
		},
	}

	path, err := w.Write(result)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hashgraph-repos-stats-2024-03-05.csv"), path)
	assert.Equal(t, append([]string{header}, result.Rows()...), readLines(t, path))
}

func TestWriter_Write_EmptyResultKeepsHeader(t *testing.T) {
	w := fixedWriter(t.TempDir())

	path, err := w.Write(domain.Result{})

	require.NoError(t, err)
	assert.Equal(t, []string{header}, readLines(t, path))
}

func TestWriter_Write_OverwritesSameDay(t *testing.T) {
	w := fixedWriter(t.TempDir())
	first := domain.Result{Records: []domain.RepoRecord{
		{HTMLURL: "https://github.com/o/a"}, {HTMLURL: "https://github.com/o/b"}, {HTMLURL: "https://github.com/o/c"},
	}}
	second := domain.Result{Records: []domain.RepoRecord{{HTMLURL: "https://github.com/o/d", ForksCount: 5, StargazersCount: 6}}}

	_, err := w.Write(first)
	require.NoError(t, err)
	path, err := w.Write(second)
	require.NoError(t, err)

	assert.Equal(t, []string{header, "https://github.com/o/d,5,6"}, readLines(t, path))
}

func TestSummarize(t *testing.T) {
	var buf bytes.Buffer
	Summarize(&buf, domain.Result{TotalRepos: 3, TotalStars: 42, TotalForks: 7})
	assert.Equal(t, "Total Repos: 3\nTotal Stars: 42\nTotal Forks: 7\n", buf.String())
}
