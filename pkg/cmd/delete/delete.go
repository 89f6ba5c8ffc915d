package delete

import (
	"fmt"
	"net/http"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/spf13/cobra"
)

type DeleteOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)

	Selector string
}

func NewCmdDelete(f *cmdutil.Factory, runF func(*DeleteOptions) error) *cobra.Command {
	opts := &DeleteOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "delete {<id> | <url>}",
		Short: "Delete a gist",
		Args:  cmdutil.ExactArgs(1, "cannot delete: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return deleteRun(opts)
		},
	}
	return cmd
}

func deleteRun(opts *DeleteOptions) error {
	gistID, err := shared.NormalizeGistID(opts.Selector)
	if err != nil {
		return err
	}

	client, err := opts.HttpClient()
	if err != nil {
		return err
	}

	if err := api.DeleteGist(client, api.Host(), gistID); err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()
	fmt.Fprintf(opts.IO.ErrOut, "%s Deleted gist %s\n", cs.SuccessIcon(), gistID)
	return nil
}
