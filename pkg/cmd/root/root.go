package root

import (
	"github.com/MakeNowJust/heredoc"
	archiveCmd "github.com/gist-cli/gist/pkg/cmd/archive"
	cloneCmd "github.com/gist-cli/gist/pkg/cmd/clone"
	createCmd "github.com/gist-cli/gist/pkg/cmd/create"
	deleteCmd "github.com/gist-cli/gist/pkg/cmd/delete"
	editCmd "github.com/gist-cli/gist/pkg/cmd/edit"
	forkCmd "github.com/gist-cli/gist/pkg/cmd/fork"
	listCmd "github.com/gist-cli/gist/pkg/cmd/list"
	versionCmd "github.com/gist-cli/gist/pkg/cmd/version"
	viewCmd "github.com/gist-cli/gist/pkg/cmd/view"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/spf13/cobra"
)

func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gist <command> [flags]",
		Short: "Work with gists",
		Long:  `Create, inspect, and edit gists on a remote snippet-hosting service.`,
		Example: heredoc.Doc(`
			$ gist list
			$ gist create "my notes" notes.md
			$ gist edit 5b0e0062eb8e9654adad7bb1d81cc75f
		`),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(f.IOStreams.Out)
	cmd.SetErr(f.IOStreams.ErrOut)

	cmd.AddCommand(listCmd.NewCmdList(f, nil))
	cmd.AddCommand(createCmd.NewCmdCreate(f, nil))
	cmd.AddCommand(editCmd.NewCmdEdit(f, nil))
	cmd.AddCommand(viewCmd.NewCmdInfo(f, nil))
	cmd.AddCommand(viewCmd.NewCmdFiles(f, nil))
	cmd.AddCommand(viewCmd.NewCmdContent(f, nil))
	cmd.AddCommand(forkCmd.NewCmdFork(f, nil))
	cmd.AddCommand(cloneCmd.NewCmdClone(f, nil))
	cmd.AddCommand(deleteCmd.NewCmdDelete(f, nil))
	cmd.AddCommand(archiveCmd.NewCmdArchive(f, nil))
	cmd.AddCommand(versionCmd.NewCmdVersion(f, version, buildDate))

	return cmd
}
