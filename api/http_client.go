package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/henvic/httpretty"
)

type HTTPClientOptions struct {
	AppVersion  string
	GetToken    func() (string, error)
	Log         io.Writer
	LogColorize bool
}

// NewHTTPClient builds the http.Client all commands share: auth token header,
// User-Agent, and verbose request logging when DEBUG contains "api".
func NewHTTPClient(opts HTTPClientOptions) *http.Client {
	var clientOpts []ClientOption

	if verbose := os.Getenv("DEBUG"); strings.Contains(verbose, "api") {
		clientOpts = append(clientOpts, VerboseLog(opts.Log, opts.LogColorize))
	}

	clientOpts = append(clientOpts,
		AddHeader("User-Agent", fmt.Sprintf("Gist CLI %s", opts.AppVersion)),
	)

	if opts.GetToken != nil {
		clientOpts = append(clientOpts, AddAuthToken(opts.GetToken))
	}

	client := NewClient(clientOpts...)
	return client.http
}

// VerboseLog enables request/response logging within a RoundTripper
func VerboseLog(out io.Writer, colorize bool) ClientOption {
	logger := &httpretty.Logger{
		Time:            true,
		TLS:             false,
		Colors:          colorize,
		RequestHeader:   true,
		RequestBody:     true,
		ResponseHeader:  true,
		ResponseBody:    true,
		Formatters:      []httpretty.Formatter{&httpretty.JSONFormatter{}},
		MaxResponseBody: 10000,
	}
	logger.SetOutput(out)
	return logger.RoundTripper
}
