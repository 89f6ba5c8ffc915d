package api

import (
	"net/http"
	"testing"

	"github.com/gist-cli/gist/pkg/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetGist(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(
		httpmock.REST("GET", "gists/1234"),
		httpmock.StringResponse(`{"id": "1234", "description": "notes", "public": true, "files": {"a.txt": {"content": "hi"}}}`),
	)

	gist, err := GetGist(&http.Client{Transport: reg}, "github.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "1234", gist.ID)
	assert.Equal(t, "notes", gist.Description)
	assert.True(t, gist.Public)
	assert.Equal(t, "hi", gist.Files["a.txt"].Content)
}

func Test_GetGist_notFound(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(
		httpmock.REST("GET", "gists/1234"),
		httpmock.StatusStringResponse(404, `{"message": "Not Found"}`),
	)

	_, err := GetGist(&http.Client{Transport: reg}, "github.com", "1234")
	assert.ErrorIs(t, err, NotFoundErr)
}

func Test_ListGists(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(
		httpmock.REST("GET", "gists"),
		httpmock.StringResponse(`[{"id": "1234"}, {"id": "5678"}]`),
	)

	gists, err := ListGists(&http.Client{Transport: reg}, "github.com", 10)
	require.NoError(t, err)
	require.Len(t, gists, 2)
	assert.Equal(t, "1234", gists[0].ID)

	require.Len(t, reg.Requests, 1)
	assert.Equal(t, "per_page=10", reg.Requests[0].URL.RawQuery)
}

func Test_CreateGist(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)

	var payload map[string]interface{}
	reg.Register(
		httpmock.REST("POST", "gists"),
		httpmock.RESTPayload(200, `{"id": "1234", "html_url": "https://gist.github.com/1234"}`, func(p map[string]interface{}) {
			payload = p
		}),
	)

	gist, err := CreateGist(&http.Client{Transport: reg}, "github.com", "notes", false, map[string]string{"a.txt": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "1234", gist.ID)

	assert.Equal(t, "notes", payload["description"])
	assert.Equal(t, false, payload["public"])
	files := payload["files"].(map[string]interface{})
	assert.Equal(t, "hi", files["a.txt"].(map[string]interface{})["content"])
}

func Test_UpdateGist(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)

	var payload map[string]interface{}
	reg.Register(
		httpmock.REST("POST", "gists/1234"),
		httpmock.RESTPayload(200, `{"id": "1234"}`, func(p map[string]interface{}) {
			payload = p
		}),
	)

	gist := &Gist{
		ID:          "1234",
		Description: "updated notes",
		Files: map[string]*GistFile{
			"a.txt": {Content: "bye"},
		},
	}
	err := UpdateGist(&http.Client{Transport: reg}, "github.com", gist)
	require.NoError(t, err)

	assert.Equal(t, "updated notes", payload["description"])
	files := payload["files"].(map[string]interface{})
	assert.Equal(t, "bye", files["a.txt"].(map[string]interface{})["content"])
}

func Test_HTTPError_message(t *testing.T) {
	reg := &httpmock.Registry{}
	defer reg.Verify(t)
	reg.Register(
		httpmock.REST("DELETE", "gists/1234"),
		httpmock.StatusStringResponse(403, `{"message": "Must have admin rights"}`),
	)

	err := DeleteGist(&http.Client{Transport: reg}, "github.com", "1234")
	require.Error(t, err)

	var httpErr HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.StatusCode)
	assert.Contains(t, httpErr.Error(), "Must have admin rights")
}

func Test_GistRemoteURL(t *testing.T) {
	assert.Equal(t, "https://gist.github.com/1234.git", GistRemoteURL("github.com", "1234"))
}
