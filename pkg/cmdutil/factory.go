package cmdutil

import (
	"net/http"

	"github.com/gist-cli/gist/git"
	"github.com/gist-cli/gist/internal/config"
	"github.com/gist-cli/gist/pkg/iostreams"
)

type Factory struct {
	IOStreams  *iostreams.IOStreams
	HttpClient func() (*http.Client, error)
	Config     func() (config.Config, error)
	GitClient  func() *git.Client

	Executable string
}
