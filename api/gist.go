package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type GistFile struct {
	Filename string `json:"filename,omitempty"`
	Type     string `json:"type,omitempty"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

type Gist struct {
	ID          string               `json:"id,omitempty"`
	Description string               `json:"description"`
	Files       map[string]*GistFile `json:"files"`
	UpdatedAt   time.Time            `json:"updated_at,omitempty"`
	Public      bool                 `json:"public"`
	HTMLURL     string               `json:"html_url,omitempty"`
}

var NotFoundErr = errors.New("not found")

func GetGist(client *http.Client, hostname, gistID string) (*Gist, error) {
	gist := Gist{}
	path := fmt.Sprintf("gists/%s", gistID)

	apiClient := NewClientFromHTTP(client)
	err := apiClient.REST(hostname, "GET", path, nil, &gist)
	if err != nil {
		var httpErr HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return nil, NotFoundErr
		}
		return nil, err
	}

	return &gist, nil
}

func ListGists(client *http.Client, hostname string, limit int) ([]Gist, error) {
	result := []Gist{}
	query := url.Values{}
	query.Add("per_page", fmt.Sprintf("%d", limit))

	apiClient := NewClientFromHTTP(client)
	err := apiClient.REST(hostname, "GET", "gists?"+query.Encode(), nil, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func CreateGist(client *http.Client, hostname, description string, public bool, files map[string]string) (*Gist, error) {
	body := &Gist{
		Description: description,
		Public:      public,
		Files:       map[string]*GistFile{},
	}
	for name, content := range files {
		body.Files[name] = &GistFile{Content: content}
	}

	requestByte, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	result := Gist{}
	apiClient := NewClientFromHTTP(client)
	err = apiClient.REST(hostname, "POST", "gists", bytes.NewReader(requestByte), &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func UpdateGist(client *http.Client, hostname string, gist *Gist) error {
	body := Gist{
		Description: gist.Description,
		Files:       gist.Files,
	}

	requestByte, err := json.Marshal(body)
	if err != nil {
		return err
	}

	path := "gists/" + gist.ID
	result := Gist{}

	apiClient := NewClientFromHTTP(client)
	return apiClient.REST(hostname, "POST", path, bytes.NewReader(requestByte), &result)
}

func ForkGist(client *http.Client, hostname, gistID string) (*Gist, error) {
	path := fmt.Sprintf("gists/%s/forks", gistID)
	result := Gist{}

	apiClient := NewClientFromHTTP(client)
	err := apiClient.REST(hostname, "POST", path, nil, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func DeleteGist(client *http.Client, hostname, gistID string) error {
	path := "gists/" + gistID

	apiClient := NewClientFromHTTP(client)
	return apiClient.REST(hostname, "DELETE", path, nil, nil)
}
