package archive

import (
	"archive/tar"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/pkg/cmd/shared"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
)

type ArchiveOptions struct {
	IO         *iostreams.IOStreams
	HttpClient func() (*http.Client, error)

	Selector string
	Output   string
}

func NewCmdArchive(f *cmdutil.Factory, runF func(*ArchiveOptions) error) *cobra.Command {
	opts := &ArchiveOptions{
		IO:         f.IOStreams,
		HttpClient: f.HttpClient,
	}

	cmd := &cobra.Command{
		Use:   "archive {<id> | <url>}",
		Short: "Download a gist and package it as a tarball",
		Args:  cmdutil.ExactArgs(1, "cannot archive: gist argument required"),
		RunE: func(c *cobra.Command, args []string) error {
			opts.Selector = args[0]
			if runF != nil {
				return runF(opts)
			}
			return archiveRun(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the tarball to a specific path")
	return cmd
}

func archiveRun(opts *ArchiveOptions) error {
	gistID, err := shared.NormalizeGistID(opts.Selector)
	if err != nil {
		return err
	}

	client, err := opts.HttpClient()
	if err != nil {
		return err
	}

	gist, err := api.GetGist(client, api.Host(), gistID)
	if err != nil {
		return err
	}

	// materialize the gist into a scratch directory for the lifetime of the
	// packaging step
	workDir, err := os.MkdirTemp("", "gist-archive-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	filenames := make([]string, 0, len(gist.Files))
	for filename, file := range gist.Files {
		if err := os.WriteFile(filepath.Join(workDir, filename), []byte(file.Content), 0644); err != nil {
			return err
		}
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	output := opts.Output
	if output == "" {
		output = gistID + ".tar.gz"
	}

	if err := writeTarball(output, workDir, gistID, filenames); err != nil {
		return err
	}

	cs := opts.IO.ColorScheme()
	fmt.Fprintf(opts.IO.ErrOut, "%s Archived gist %s to %s\n", cs.SuccessIcon(), gistID, output)
	return nil
}

func writeTarball(output, workDir, gistID string, filenames []string) error {
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	defer tw.Close()

	for _, filename := range filenames {
		path := filepath.Join(workDir, filename)
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}

		hdr := &tar.Header{
			Name:    gistID + "/" + filename,
			Mode:    0644,
			Size:    fi.Size(),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if _, err := tw.Write(content); err != nil {
			return err
		}
	}

	return nil
}
