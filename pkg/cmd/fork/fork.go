package fork

import (
	"fmt"
	"net/http"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/spf13/cobra"
)

type ForkOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)

	Selector string
}

func NewCmdFork(f *cmdutil.Factory, runF func(*ForkOptions) error) *cobra.Command {
	opts := &ForkOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "fork {<id> | <url>}",
		Short: "Fork a gist into your account",
		Args:  cmdutil.ExactArgs(1, "cannot fork: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return forkRun(opts)
		},
	}
	return cmd
}

func forkRun(opts *ForkOptions) error {
	gistID, err := shared.NormalizeGistID(opts.Selector)
	if err != nil {
		return err
	}

	client, err := opts.HttpClient()
	if err != nil {
		return err
	}

	fork, err := api.ForkGist(client, api.Host(), gistID)
	if err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()
	fmt.Fprintf(opts.IO.ErrOut, "%s Forked gist %s\n", cs.SuccessIcon(), gistID)
	fmt.Fprintln(opts.IO.Out, fork.HTMLURL)
	return nil
}
