package factory

import (
	"net/http"
	"os"

	"github.com/gist-cli/gist/api"
	"github.com/gist-cli/gist/git"
	"github.com/gist-cli/gist/internal/config"
	"github.com/gist-cli/gist/pkg/cmdutil"
	"github.com/gist-cli/gist/pkg/iostreams"
)

func New(appVersion string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Config: configFunc(),
	}
	f.IOStreams = iostreams.System()
	f.HttpClient = httpClientFunc(f, appVersion)
	f.GitClient = gitClientFunc(f)
	return f
}

func configFunc() func() (config.Config, error) {
	var cachedConfig config.Config
	var configError error
	return func() (config.Config, error) {
		if cachedConfig != nil || configError != nil {
			return cachedConfig, configError
		}
		cachedConfig, configError = config.ParseDefaultConfig()
		return cachedConfig, configError
	}
}

func httpClientFunc(f *cmdutil.Factory, appVersion string) func() (*http.Client, error) {
	return func() (*http.Client, error) {
		io := f.IOStreams
		return api.NewHTTPClient(api.HTTPClientOptions{
			AppVersion:  appVersion,
			Log:         io.ErrOut,
			LogColorize: io.ColorEnabled(),
			GetToken: func() (string, error) {
				if token := os.Getenv("GIST_TOKEN"); token != "" {
					return token, nil
				}
				cfg, err := f.Config()
				if err != nil {
					return "", err
				}
				return cfg.Get(config.Section, "token")
			},
		}), nil
	}
}

func gitClientFunc(f *cmdutil.Factory) func() *git.Client {
	return func() *git.Client {
		io := f.IOStreams
		return &git.Client{
			Stdin:  io.In,
			Stdout: io.Out,
			Stderr: io.ErrOut,
		}
	}
}
