package editor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/cli/safeexec"
	"github.com/gist-cli/gist/internal/run"
	shellquote "github.com/kballard/go-shellquote"
)

var bom = []byte{0xef, 0xbb, 0xbf}

func needsBom() bool {
	// notepad.exe on Windows determines the encoding of an "empty" text file
	// by the locale; a utf8 BOM header keeps it from guessing wrong.
	return runtime.GOOS == "windows"
}

// Edit materializes initialValue into a scratch temp file, launches the
// editor as a blocking foreground subprocess against it, and returns the
// file's final content. The scratch file is removed on every exit path.
func Edit(editorCommand, pattern, initialValue string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())

	if needsBom() {
		if _, err := f.Write(bom); err != nil {
			return "", err
		}
	}

	if _, err := f.WriteString(initialValue); err != nil {
		return "", err
	}

	// close the fd to prevent the editor unable to save file
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := Run(editorCommand, f.Name(), stdin, stdout, stderr); err != nil {
		// a non-zero editor exit does not invalidate what was saved; only a
		// failure to launch the editor at all aborts the session
		var exitError *exec.ExitError
		if !errors.As(err, &exitError) {
			return "", err
		}
	}

	raw, err := os.ReadFile(f.Name())
	if err != nil {
		return "", err
	}

	return string(bytes.TrimPrefix(raw, bom)), nil
}

// Run launches the editor as a blocking foreground subprocess against target,
// which may be a file or a directory. Control returns only when the editor
// exits.
func Run(editorCommand, target string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	args, err := shellquote.Split(editorCommand)
	if err != nil {
		return err
	}
	args = append(args, target)

	exe, err := safeexec.LookPath(args[0])
	if err != nil {
		return err
	}

	cmd := exec.Command(exe, args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return run.PrepareCmd(cmd).Run()
}
