package list

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/gist-cli/gist/pkg/text"
	"github.com/spf13/cobra"
)

type ListOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)

	Limit int
}

func NewCmdList(f *cmdutil.Factory, runF func(*ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List your gists",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Limit < 1 {
				return cmdutil.FlagErrorf("invalid limit: %v", opts.Limit)
			}

			if runF != nil {
				return runF(opts)
			}
			return listRun(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "L", 30, "Maximum number of gists to fetch")

	return cmd
}

func listRun(opts *ListOptions) error {
	client, err := opts.HttpClient()
	if err != nil {
		return err
	}

	gists, err := api.ListGists(client, api.Host(), opts.Limit)
	if err != nil {
		return err
	}

	width := opts.IO.TerminalWidth()

	for _, gist := range gists {
		visibility := "public"
		if !gist.Public {
			visibility = "secret"
		}

		description := strings.ReplaceAll(gist.Description, "\n", " ")
		line := fmt.Sprintf("%s  %s  %s", gist.ID, visibility, description)
		// elide only when an attached terminal reports its width
		if width > 0 {
			line = text.Truncate(width, line)
		}

		fmt.Fprintln(opts.IO.Out, line)
	}

	return nil
}
