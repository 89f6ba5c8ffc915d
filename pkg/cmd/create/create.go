package create

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/internal/config"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/editor"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/spf13/cobra"
)

// defaultFilename names the single entry of a plan built from piped input or
// an interactive editor session.
const defaultFilename = "gistfile1.txt"

type CreateOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)
	Config     func() (config.Config, error)

	Description string
	Public      bool
	Filenames   []string

	// EditContent launches the resolved editor against an empty scratch file
	// and returns its final content; injected for tests.
	EditContent func(editorCommand string) (string, error)
}

func NewCmdCreate(f *cmdutil.Factory, runF func(*CreateOptions) error) *cobra.Command {
	opts := CreateOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
		Config:     f.Config,
	}
	opts.EditContent = func(editorCommand string) (string, error) {
		return editor.Edit(editorCommand, "gist*.txt", "", opts.IO.In, opts.IO.Out, opts.IO.ErrOut)
	}

	cmd := &cobra.Command{
		Use:   "create <description> [<filename>...]",
		Short: "Create a new gist",
		Long: heredoc.Doc(`
			Create a new gist with the given description.

			The content comes from exactly one source: piped standard input,
			the listed files, or an interactively launched editor when standard
			input is a terminal and no files are listed. Piped input wins even
			when filenames are also given. Files sharing a base name overwrite
			one another; the last one listed wins.
		`),
		Example: heredoc.Doc(`
			# create a private gist from a file
			$ gist create "my hello-world program" hello.py

			# create a publicly listed gist
			$ gist create --public "shell profile" ~/.profile

			# create a gist from piped output
			$ git diff | gist create "work in progress"

			# compose a gist in your editor
			$ gist create "notes"
		`),
		Args: cmdutil.MinimumArgs(1, "cannot create: description argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Description = args[0]
			opts.Filenames = args[1:]

			if runF != nil {
				return runF(&opts)
			}
			return createRun(&opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Public, "public", "p", false, "List the gist publicly (default: private)")
	return cmd
}

func createRun(opts *CreateOptions) error {
	files, err := resolveContent(opts)
	if err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()
	errOut := opts.IO.ErrOut
	fmt.Fprintf(errOut, "%s Creating gist...\n", cs.Gray("-"))

	httpClient, err := opts.HttpClient()
	if err != nil {
		return err
	}

	gist, err := api.CreateGist(httpClient, api.Host(), opts.Description, opts.Public, files)
	if err != nil {
		fmt.Fprintf(errOut, "%s Failed to create gist: %s\n", cs.FailureIcon(), err)
		return cmdutil.SilentError
	}

	fmt.Fprintf(errOut, "%s Created gist\n", cs.SuccessIcon())
	fmt.Fprintln(opts.IO.Out, gist.HTMLURL)

	return nil
}

// resolveContent builds the filename-to-content plan from exactly one of
// three mutually exclusive sources.
func resolveContent(opts *CreateOptions) (map[string]string, error) {
	if !opts.IO.IsStdinTTY() {
		return planFromStdin(opts.IO.In)
	}

	if len(opts.Filenames) > 0 {
		return planFromFiles(opts.Filenames)
	}

	editorCommand, err := cmdutil.DetermineEditor(opts.Config)
	if err != nil {
		return nil, err
	}
	return planFromEditor(editorCommand, opts.EditContent)
}

func planFromStdin(stdin io.Reader) (map[string]string, error) {
	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from standard input: %w", err)
	}
	return map[string]string{defaultFilename: string(content)}, nil
}

func planFromFiles(paths []string) (map[string]string, error) {
	plan := map[string]string{}
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", p, err)
		}
		plan[filepath.Base(p)] = string(content)
	}
	return plan, nil
}

// planFromEditor captures whatever the editor session produced, including an
// empty buffer: saving nothing is not an error and the create is still
// attempted.
func planFromEditor(editorCommand string, edit func(string) (string, error)) (map[string]string, error) {
	content, err := edit(editorCommand)
	if err != nil {
		return nil, err
	}
	return map[string]string{defaultFilename: content}, nil
}
