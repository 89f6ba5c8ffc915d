package git

import (
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/cli/safeexec"
	"github.com/gist-cli/gist/internal/run"
)

// Client invokes git as a subprocess. RepoDir, when set, scopes every command
// to that repository via `git -C`.
type Client struct {
	GitPath string
	RepoDir string
	Stderr  io.Writer
	Stdin   io.Reader
	Stdout  io.Writer

	mu sync.Mutex
}

func (c *Client) Command(args ...string) (run.Runnable, error) {
	if c.RepoDir != "" {
		args = append([]string{"-C", c.RepoDir}, args...)
	}

	var err error
	c.mu.Lock()
	if c.GitPath == "" {
		c.GitPath, err = resolveGitPath()
	}
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(c.GitPath, args...)
	cmd.Stderr = c.Stderr
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	return run.PrepareCmd(cmd), nil
}

// Clone materializes the repository at cloneURL into target.
func (c *Client) Clone(cloneURL, target string) error {
	cloneCmd, err := c.Command("clone", "--quiet", cloneURL, target)
	if err != nil {
		return err
	}
	return cloneCmd.Run()
}

// HasLocalChanges reports whether the work tree differs from HEAD in any way:
// modified content, added files, or deleted files.
func (c *Client) HasLocalChanges() (bool, error) {
	statusCmd, err := c.Command("status", "--porcelain")
	if err != nil {
		return false, err
	}
	out, err := statusCmd.Output()
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// CommitAll stages every change in the work tree and commits it.
func (c *Client) CommitAll(message string) error {
	addCmd, err := c.Command("add", "--all")
	if err != nil {
		return err
	}
	if err := addCmd.Run(); err != nil {
		return err
	}

	commitCmd, err := c.Command("commit", "-m", message)
	if err != nil {
		return err
	}
	return commitCmd.Run()
}

// Push sends local commits to the originating remote. The push overwrites
// remote state unconditionally; there is no conflict handling.
func (c *Client) Push() error {
	pushCmd, err := c.Command("push")
	if err != nil {
		return err
	}
	return pushCmd.Run()
}

type NotInstalled struct {
	message string
	err     error
}

func (e *NotInstalled) Error() string {
	return e.message
}

func (e *NotInstalled) Unwrap() error {
	return e.err
}

func resolveGitPath() (string, error) {
	path, err := safeexec.LookPath("git")
	if err != nil {
		if execError, ok := err.(*exec.Error); ok && execError.Err == exec.ErrNotFound {
			return "", &NotInstalled{
				message: "unable to find git executable in PATH; please install git before retrying",
				err:     err,
			}
		}
		return "", err
	}
	return path, nil
}

// IsURL reports whether a gist argument looks like a URL rather than an id.
func IsURL(u string) bool {
	return strings.Contains(u, "/") &&
		(strings.HasPrefix(u, "git@") ||
			strings.HasPrefix(u, "http:") ||
			strings.HasPrefix(u, "https:") ||
			strings.HasPrefix(u, "ssh:"))
}
