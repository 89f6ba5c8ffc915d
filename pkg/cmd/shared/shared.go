package shared

import (
	"fmt"
	"net/url"
	"strings"
)

// GistIDFromURL extracts the gist id from a gist web URL.
func GistIDFromURL(gistURL string) (string, error) {
	u, err := url.Parse(gistURL)
	if err == nil && strings.HasPrefix(u.Path, "/") {
		split := strings.Split(u.Path, "/")

		if len(split) > 2 {
			return split[2], nil
		}

		if len(split) == 2 && split[1] != "" {
			return split[1], nil
		}
	}

	return "", fmt.Errorf("Invalid gist URL %s", gistURL)
}

// NormalizeGistID accepts either a bare gist id or a gist URL and returns
// the id.
func NormalizeGistID(selector string) (string, error) {
	if strings.Contains(selector, "/") {
		return GistIDFromURL(selector)
	}
	return selector, nil
}
