package view

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/spf13/cobra"
)

type ViewOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)

	Selector string
}

// NewCmdInfo prints the raw metadata of a gist.
func NewCmdInfo(f *cmdutil.Factory, runF func(*ViewOptions) error) *cobra.Command {
	opts := &ViewOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "info {<id> | <url>}",
		Short: "Show metadata about a gist",
		Args:  cmdutil.ExactArgs(1, "cannot show info: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return infoRun(opts)
		},
	}
	return cmd
}

// NewCmdFiles lists the filenames of a gist.
func NewCmdFiles(f *cmdutil.Factory, runF func(*ViewOptions) error) *cobra.Command {
	opts := &ViewOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "files {<id> | <url>}",
		Short: "List the files of a gist",
		Args:  cmdutil.ExactArgs(1, "cannot list files: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return filesRun(opts)
		},
	}
	return cmd
}

// NewCmdContent prints the contents of every file of a gist.
func NewCmdContent(f *cmdutil.Factory, runF func(*ViewOptions) error) *cobra.Command {
	opts := &ViewOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "content {<id> | <url>}",
		Short: "Print the contents of a gist",
		Args:  cmdutil.ExactArgs(1, "cannot print content: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return contentRun(opts)
		},
	}
	return cmd
}

func (opts *ViewOptions) getGist() (*api.Gist, error) {
	gistID, err := shared.NormalizeGistID(opts.Selector)
	if err != nil {
		return nil, err
	}

	client, err := opts.HttpClient()
	if err != nil {
		return nil, err
	}

	return api.GetGist(client, api.Host(), gistID)
}

func infoRun(opts *ViewOptions) error {
	gist, err := opts.getGist()
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(gist, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IO.Out, string(b))
	return nil
}

func filesRun(opts *ViewOptions) error {
	gist, err := opts.getGist()
	if err != nil {
		return err
	}

	for _, filename := range sortedFilenames(gist) {
		fmt.Fprintln(opts.IO.Out, filename)
	}
	return nil
}

func contentRun(opts *ViewOptions) error {
	gist, err := opts.getGist()
	if err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()
	filenames := sortedFilenames(gist)

	for _, filename := range filenames {
		if len(filenames) > 1 {
			fmt.Fprintf(opts.IO.Out, "%s\n\n", cs.Gray(filename))
		}
		fmt.Fprintln(opts.IO.Out, gist.Files[filename].Content)
	}
	return nil
}

func sortedFilenames(gist *api.Gist) []string {
	filenames := make([]string, 0, len(gist.Files))
	for filename := range gist.Files {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)
	return filenames
}
