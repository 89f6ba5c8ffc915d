package editor

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEditor(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake editor scripts require a POSIX shell")
	}
	fn := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(fn, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return fn
}

func TestEdit(t *testing.T) {
	editor := fakeEditor(t, `printf 'saved content' > "$1"`)

	content, err := Edit(editor, "gist*.txt", "", nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "saved content", content)
}

func TestEdit_nonZeroExitStillCapturesContent(t *testing.T) {
	editor := fakeEditor(t, `printf 'written anyway' > "$1"
exit 7`)

	content, err := Edit(editor, "gist*.txt", "", nil, io.Discard, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "written anyway", content)
}

func TestEdit_launchFailure(t *testing.T) {
	_, err := Edit(filepath.Join(t.TempDir(), "no-such-editor"), "gist*.txt", "", nil, io.Discard, io.Discard)
	assert.Error(t, err)
}
