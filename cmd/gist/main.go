package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	surveyCore "github.com/AlecAivazis/survey/v2/core"
	"github.com/gist-cli/gist/internal/build"
	"github.com/gist-cli/gist/pkg/cmd/factory"
	"github.com/gist-cli/gist/pkg/cmd/root"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(mainRun())
}

func mainRun() int {
	buildVersion := build.Version
	buildDate := build.Date

	cmdFactory := factory.New(buildVersion)
	stderr := cmdFactory.IOStreams.ErrOut

	if !cmdFactory.IOStreams.ColorEnabled() {
		surveyCore.DisableColor = true
	}

	rootCmd := root.NewCmdRoot(cmdFactory, buildVersion, buildDate)

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		printError(stderr, err, cmd)
		return 1
	}

	return 0
}

func printError(out io.Writer, err error, cmd *cobra.Command) {
	if err == cmdutil.SilentError {
		return
	}
	if cmdutil.IsUserCancellation(err) {
		fmt.Fprint(out, "\n")
		return
	}

	fmt.Fprintln(out, err)

	var flagError *cmdutil.FlagError
	if errors.As(err, &flagError) && cmd != nil {
		fmt.Fprintln(out, cmd.UsageString())
	}
}
