package gateway

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidRepoURL is returned when a URL does not point at a repository.
var ErrInvalidRepoURL = errors.New("invalid GitHub repo URL")

var repoURLPattern = regexp.MustCompile(`https?://[^/]+/([^/?#]+)/([^/?#]+)`)

// ParseRepoURL extracts the owner and repository name from a URL of the form
// http(s)://<host>/<owner>/<repo>. The URL may be embedded in surrounding
// text; trailing path segments are ignored.
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoURL, rawURL)
	}
	return m[1], m[2], nil
}
