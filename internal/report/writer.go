// Package report renders aggregation results to the console and to dated CSV files.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

const dateLayout = "2006-01-02"

// Writer writes CSV reports named <Dir>/<Prefix>-<yyyy-mm-dd>.csv.
type Writer struct {
	Dir    string
	Prefix string
	// Now is the clock used to stamp file names; the UTC date is used.
	Now func() time.Time
}

// NewWriter creates a Writer stamped with the wall clock.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{Dir: dir, Prefix: prefix, Now: time.Now}
}

// Path returns the file the next Write call will produce.
func (w *Writer) Path() string {
	date := w.Now().UTC().Format(dateLayout)
	return filepath.Join(w.Dir, fmt.Sprintf("%s-%s.csv", w.Prefix, date))
}

// Write serializes the result's records under a fixed header, replacing any
// report already written today.
func (w *Writer) Write(result domain.Result) (string, error) {
	records := result.Records
	if records == nil {
		records = []domain.RepoRecord{}
	}
	data, err := gocsv.MarshalBytes(&records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal CSV: %w", err)
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := w.Path()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Summarize prints the repository count and totals.
func Summarize(out io.Writer, result domain.Result) {
	fmt.Fprintf(out, "Total Repos: %d\n", result.TotalRepos)
	fmt.Fprintf(out, "Total Stars: %d\n", result.TotalStars)
	fmt.Fprintf(out, "Total Forks: %d\n", result.TotalForks)
}
