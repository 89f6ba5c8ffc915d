package edit

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/MakeNowJust/heredoc"
	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/git"
	"github.com/gist-cli/gist/internal/config"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/editor"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/gist-cli/gist/pkg/prompt"
	"github.com/spf13/cobra"
)

type EditOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)
	Config     func() (config.Config, error)
	GitClient  func() *git.Client

	Selector    string
	Description string

	// MkWorkDir creates the scratch working directory backing the session;
	// injected for tests.
	MkWorkDir func() (string, error)
	// EditWorkDir launches the editor against the working directory and
	// blocks until it exits; injected for tests.
	EditWorkDir func(editorCommand, dir string) error
}

func NewCmdEdit(f *cmdutil.Factory, runF func(*EditOptions) error) *cobra.Command {
	opts := EditOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
		Config:     f.Config,
		GitClient:  f.GitClient,
		MkWorkDir: func() (string, error) {
			return os.MkdirTemp("", "gist-edit-")
		},
	}
	opts.EditWorkDir = func(editorCommand, dir string) error {
		return editor.Run(editorCommand, dir, opts.IO.In, opts.IO.Out, opts.IO.ErrOut)
	}

	cmd := &cobra.Command{
		Use:   "edit {<id> | <url>}",
		Short: "Edit one of your gists",
		Long: heredoc.Doc(`
			Clone a gist into a scratch directory, open it in your editor, and
			push the changes back once you confirm them.

			Exiting the editor without modifying anything leaves the gist
			untouched. The push overwrites the remote state unconditionally.

			With --desc, only the gist's description is updated and no editor
			session is started.
		`),
		Args: cmdutil.ExactArgs(1, "cannot edit: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]

			if runF != nil {
				return runF(&opts)
			}
			return editRun(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description for the gist")

	return cmd
}

func editRun(opts *EditOptions) error {
	gistID, err := shared.NormalizeGistID(opts.Selector)
	if err != nil {
		return err
	}

	client, err := opts.HttpClient()
	if err != nil {
		return err
	}

	// resolve everything that can fail before any local state exists
	gist, err := api.GetGist(client, api.Host(), gistID)
	if err != nil {
		return err
	}

	if opts.Description != "" {
		gist.Description = opts.Description
		if err := api.UpdateGist(client, api.Host(), gist); err != nil {
			return err
		}
		cs := opts.IO.ColorScheme()
		fmt.Fprintf(opts.IO.ErrOut, "%s Updated description of gist %s\n", cs.SuccessIcon(), gist.ID)
		return nil
	}

	editorCommand, err := cmdutil.DetermineEditor(opts.Config)
	if err != nil {
		return err
	}

	workDir, err := opts.MkWorkDir()
	if err != nil {
		return err
	}
	keepWorkDir := false
	defer func() {
		if !keepWorkDir {
			_ = os.RemoveAll(workDir)
		}
	}()

	gitClient := opts.GitClient()
	if err := gitClient.Clone(api.GistRemoteURL(api.Host(), gist.ID), workDir); err != nil {
		return err
	}

	repo := opts.GitClient()
	repo.RepoDir = workDir

	if err := opts.EditWorkDir(editorCommand, workDir); err != nil {
		return err
	}

	changed, err := repo.HasLocalChanges()
	if err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()

	if !changed {
		fmt.Fprintf(opts.IO.ErrOut, "No changes made to gist %s\n", gist.ID)
		return nil
	}

	if !opts.IO.CanPrompt() {
		return fmt.Errorf("cannot confirm push without an interactive terminal; changes were discarded")
	}

	confirmed := false
	if err := prompt.Confirm("Push your changes back to the gist?", &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return cmdutil.CancelError
		}
		return fmt.Errorf("could not prompt: %w", err)
	}

	if !confirmed {
		fmt.Fprintf(opts.IO.ErrOut, "%s Discarded changes\n", cs.WarningIcon())
		return nil
	}

	if err := repo.CommitAll("update gist"); err != nil {
		return err
	}

	if err := repo.Push(); err != nil {
		// leave the working directory behind so the edits survive a failed
		// push and can be pushed manually
		keepWorkDir = true
		return fmt.Errorf("failed to push changes: %w\nyour edits are preserved in %s", err, workDir)
	}

	fmt.Fprintf(opts.IO.ErrOut, "%s Pushed changes to gist %s\n", cs.SuccessIcon(), gist.ID)
	return nil
}
