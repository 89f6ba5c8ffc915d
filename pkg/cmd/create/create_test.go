package create

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gist-cli/gist/internal/config"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/httpmock"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdCreate(t *testing.T) {
	tests := []struct {
		name     string
		cli      string
		wants    CreateOptions
		wantsErr bool
	}{
		{
			name:     "no arguments",
			cli:      "",
			wantsErr: true,
		},
		{
			name: "description only",
			cli:  `"my gist"`,
			wants: CreateOptions{
				Description: "my gist",
				Public:      false,
				Filenames:   []string{},
			},
		},
		{
			name: "description and files",
			cli:  `"my gist" file1.txt file2.txt`,
			wants: CreateOptions{
				Description: "my gist",
				Public:      false,
				Filenames:   []string{"file1.txt", "file2.txt"},
			},
		},
		{
			name: "public",
			cli:  `--public "my gist"`,
			wants: CreateOptions{
				Description: "my gist",
				Public:      true,
				Filenames:   []string{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io, _, _, _ := iostreams.Test()
			f := &cmdutil.Factory{IOStreams: io}

			argv, err := shlex.Split(tt.cli)
			require.NoError(t, err)

			var gotOpts *CreateOptions
			cmd := NewCmdCreate(f, func(opts *CreateOptions) error {
				gotOpts = opts
				return nil
			})
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			if tt.wantsErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wants.Description, gotOpts.Description)
			assert.Equal(t, tt.wants.Public, gotOpts.Public)
			assert.Equal(t, tt.wants.Filenames, gotOpts.Filenames)
		})
	}
}

func Test_planFromStdin(t *testing.T) {
	plan, err := planFromStdin(bytes.NewBufferString("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gistfile1.txt": "hello\n"}, plan)
}

func Test_planFromFiles(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "foo.txt"), []byte("first"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "foo.txt"), []byte("second"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "bar.txt"), []byte("bar"), 0600))

	plan, err := planFromFiles([]string{
		filepath.Join(dirA, "foo.txt"),
		filepath.Join(dirA, "bar.txt"),
		filepath.Join(dirB, "foo.txt"),
	})
	require.NoError(t, err)

	// duplicate base names collide; the last path listed wins
	assert.Equal(t, map[string]string{
		"foo.txt": "second",
		"bar.txt": "bar",
	}, plan)
}

func Test_planFromFiles_unreadable(t *testing.T) {
	_, err := planFromFiles([]string{filepath.Join(t.TempDir(), "nope.txt")})
	assert.ErrorContains(t, err, "failed to read file")
}

func Test_planFromEditor(t *testing.T) {
	plan, err := planFromEditor("vim", func(editorCommand string) (string, error) {
		assert.Equal(t, "vim", editorCommand)
		return "composed content", nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gistfile1.txt": "composed content"}, plan)
}

func Test_planFromEditor_emptyBufferIsNotAnError(t *testing.T) {
	plan, err := planFromEditor("vim", func(string) (string, error) {
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gistfile1.txt": ""}, plan)
}

func Test_resolveContent_pipedModeWinsOverFiles(t *testing.T) {
	io, stdin, _, _ := iostreams.Test()
	io.SetStdinTTY(false)
	stdin.WriteString("hello\n")

	opts := &CreateOptions{
		IO:        io,
		Filenames: []string{"ignored.txt"},
	}

	plan, err := resolveContent(opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gistfile1.txt": "hello\n"}, plan)
}

func Test_resolveContent_interactiveMode(t *testing.T) {
	io, _, _, _ := iostreams.Test()
	io.SetStdinTTY(true)

	t.Setenv("GIST_EDITOR", "")
	t.Setenv("EDITOR", "fake-editor")

	called := false
	opts := &CreateOptions{
		IO:     io,
		Config: func() (config.Config, error) { return config.NewBlankConfig(), nil },
		EditContent: func(editorCommand string) (string, error) {
			called = true
			assert.Equal(t, "fake-editor", editorCommand)
			return "typed in editor", nil
		},
	}

	plan, err := resolveContent(opts)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, map[string]string{"gistfile1.txt": "typed in editor"}, plan)
}

func Test_resolveContent_interactiveModeConfigError(t *testing.T) {
	io, _, _, _ := iostreams.Test()
	io.SetStdinTTY(true)

	opts := &CreateOptions{
		IO:     io,
		Config: func() (config.Config, error) { return nil, errors.New("boom") },
		EditContent: func(string) (string, error) {
			return "", errors.New("should not be called")
		},
	}

	_, err := resolveContent(opts)
	assert.ErrorContains(t, err, "could not read config")
}

func Test_createRun(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)

	var payload map[string]interface{}
	reg.Register(
		httpmock.REST("POST", "gists"),
		httpmock.RESTPayload(200, `{
			"id": "aa5a315d61ae9438b18d",
			"html_url": "https://gist.github.com/aa5a315d61ae9438b18d"
		}`, func(p map[string]interface{}) {
			payload = p
		}),
	)

	io, stdin, stdout, stderr := iostreams.Test()
	io.SetStdinTTY(false)
	stdin.WriteString("console.log('hi')\n")

	opts := &CreateOptions{
		IO:          io,
		HttpClient:  func() (*http.Client, error) { return &http.Client{Transport: reg}, nil },
		Description: "script",
		Public:      true,
	}

	err := createRun(opts)
	require.NoError(t, err)

	assert.Equal(t, "script", payload["description"])
	assert.Equal(t, true, payload["public"])
	files := payload["files"].(map[string]interface{})
	file := files["gistfile1.txt"].(map[string]interface{})
	assert.Equal(t, "console.log('hi')\n", file["content"])

	assert.Equal(t, "https://gist.github.com/aa5a315d61ae9438b18d\n", stdout.String())
	assert.Contains(t, stderr.String(), "Created gist")
}

func Test_createRun_unreadableFileAbortsBeforeRemoteCall(t *testing.T) {
	reg := &httpmock.Registry{}

	io, _, _, _ := iostreams.Test()
	io.SetStdinTTY(true)

	opts := &CreateOptions{
		IO:          io,
		HttpClient:  func() (*http.Client, error) { return &http.Client{Transport: reg}, nil },
		Description: "script",
		Filenames:   []string{filepath.Join(t.TempDir(), "missing.txt")},
	}

	err := createRun(opts)
	require.Error(t, err)
	assert.Len(t, reg.Requests, 0)
}

func Test_createRun_apiError(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(
		httpmock.REST("POST", "gists"),
		httpmock.StatusStringResponse(422, `{"message": "Validation Failed"}`),
	)

	io, stdin, _, stderr := iostreams.Test()
	io.SetStdinTTY(false)
	stdin.WriteString("content")

	opts := &CreateOptions{
		IO:          io,
		HttpClient:  func() (*http.Client, error) { return &http.Client{Transport: reg}, nil },
		Description: "script",
	}

	err := createRun(opts)
	assert.ErrorIs(t, err, cmdutil.SilentError)
	assert.Contains(t, stderr.String(), "Failed to create gist")
}
