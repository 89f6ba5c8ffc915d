package clone

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/git"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/spf13/cobra"
)

type CloneOptions struct {
	IO        *iostreams.IOStreams
	GitClient func() *git.Client

	Gist      string
	Directory string
}

func NewCmdClone(f *cmdutil.Factory, runF func(*CloneOptions) error) *cobra.Command {
	opts := &CloneOptions{
		IO:        f.IOStreams,
		GitClient: f.GitClient,
	}

	cmd := &cobra.Command{
		Use:   "clone <gist> [<directory>]",
		Short: "Clone a gist locally",
		Long: heredoc.Doc(`
			Clone a gist locally.

			A gist can be supplied as argument in either of the following formats:
			- by ID, e.g. 5b0e0062eb8e9654adad7bb1d81cc75f
			- by URL, e.g. "https://gist.github.com/OWNER/5b0e0062eb8e9654adad7bb1d81cc75f"
		`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return cmdutil.FlagErrorf("cannot clone: gist argument required")
			}
			if len(args) > 2 {
				return cmdutil.FlagErrorf("too many arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Gist = args[0]
			if len(args) > 1 {
				opts.Directory = args[1]
			}

			if runF != nil {
				return runF(opts)
			}
			return cloneRun(opts)
		},
	}

	return cmd
}

func cloneRun(opts *CloneOptions) error {
	cloneURL := opts.Gist

	if !git.IsURL(cloneURL) {
		gistID, err := shared.NormalizeGistID(cloneURL)
		if err != nil {
			return err
		}
		cloneURL = api.GistRemoteURL(api.Host(), gistID)
	}

	target := opts.Directory
	if target == "" {
		gistID, err := shared.NormalizeGistID(opts.Gist)
		if err != nil {
			return err
		}
		target = gistID
	}

	return opts.GitClient().Clone(cloneURL, target)
}
