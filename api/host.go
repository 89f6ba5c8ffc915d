package api

import (
	"fmt"
	"os"
	"strings"
)

const defaultHostname = "github.com"

// Host returns the hostname of the gist-hosting service, overridable through
// the GIST_HOST environment variable.
func Host() string {
	if h := strings.TrimSpace(os.Getenv("GIST_HOST")); h != "" {
		return h
	}
	return defaultHostname
}

func restPrefix(hostname string) string {
	if hostname == defaultHostname {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", hostname)
}

// GistURL constructs the web URL for a gist.
func GistURL(hostname, gistID string) string {
	return fmt.Sprintf("https://gist.%s/%s", hostname, gistID)
}

// GistRemoteURL constructs the git remote URL used to clone and push a gist.
func GistRemoteURL(hostname, gistID string) string {
	return fmt.Sprintf("https://gist.%s/%s.git", hostname, gistID)
}
