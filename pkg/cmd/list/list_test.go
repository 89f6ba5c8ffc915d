package list

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/httpmock"
	"github.com/gist-cli/gist/pkg/iostreams"
	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdList(t *testing.T) {
	tests := []struct {
		name      string
		cli       string
		wantLimit int
		wantsErr  bool
	}{
		{
			name:      "defaults",
			cli:       "",
			wantLimit: 30,
		},
		{
			name:      "with limit",
			cli:       "--limit 5",
			wantLimit: 5,
		},
		{
			name:     "invalid limit",
			cli:      "--limit 0",
			wantsErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io, _, _, _ := iostreams.Test()
			f := &cmdutil.Factory{IOStreams: io}

			argv, err := shlex.Split(tt.cli)
			require.NoError(t, err)

			var gotOpts *ListOptions
			cmd := NewCmdList(f, func(opts *ListOptions) error {
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
			assert.Equal(t, tt.wantLimit, gotOpts.Limit)
		})
	}
}

const listPayload = `[
	{"id": "1234", "description": "short description", "public": true},
	{"id": "5678", "description": "this is a considerably longer description that will not fit", "public": false}
]`

func Test_listRun(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(httpmock.REST("GET", "gists"), httpmock.StringResponse(listPayload))

	io, _, stdout, _ := iostreams.Test()
	opts := &ListOptions{
		IO:         io,
		HttpClient: func() (*http.Client, error) { return &http.Client{Transport: reg}, nil },
		Limit:      30,
	}

	require.NoError(t, listRun(opts))

	// no attached terminal: lines are rendered unmodified
	assert.Equal(t,
		"1234  public  short description\n"+
			"5678  secret  this is a considerably longer description that will not fit\n",
		stdout.String())
}

func Test_listRun_elidesToTerminalWidth(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(httpmock.REST("GET", "gists"), httpmock.StringResponse(listPayload))

	io, _, stdout, _ := iostreams.Test()
	io.SetStdoutTTY(true)
	io.SetTerminalWidth(30)

	opts := &ListOptions{
		IO:         io,
		HttpClient: func() (*http.Client, error) { return &http.Client{Transport: reg}, nil },
		Limit:      30,
	}

	require.NoError(t, listRun(opts))

	assert.Equal(t,
		"1234  public  short descrip...\n"+
			"5678  secret  this is a con...\n",
		stdout.String())
}
