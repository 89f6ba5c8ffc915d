package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config reads settings from the user's configuration file. Values are
// grouped in named sections; the "gist" section carries the keys this tool
// recognizes: "editor" and "token".
type Config interface {
	Get(section, key string) (string, error)
}

const Section = "gist"

// ConfigPaths returns the fixed lookup chain for the configuration file:
// home directory dotfile, then user config directory, then XDG data
// directory. The first existing path wins.
func ConfigPaths() []string {
	var paths []string
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".gist.yml"),
			filepath.Join(home, ".config", "gist", "config.yml"))
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		paths = append(paths, filepath.Join(dataHome, "gist", "config.yml"))
	}
	return paths
}

var ReadConfigFile = func(fn string) ([]byte, error) {
	return os.ReadFile(fn)
}

// ParseDefaultConfig locates and parses the configuration file. A missing
// file is not an error: settings may still come from the environment.
func ParseDefaultConfig() (Config, error) {
	for _, fn := range ConfigPaths() {
		if _, err := os.Stat(fn); err != nil {
			continue
		}
		data, err := ReadConfigFile(fn)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", fn, err)
		}
		return parseConfigData(data, fn)
	}
	return &fileConfig{sections: map[string]map[string]string{}}, nil
}

func ParseConfig(fn string) (Config, error) {
	data, err := ReadConfigFile(fn)
	if err != nil {
		return nil, err
	}
	return parseConfigData(data, fn)
}

// NewFromString initializes a Config from a yaml string; for testing
func NewFromString(str string) Config {
	cfg, err := parseConfigData([]byte(str), "config.yml")
	if err != nil {
		panic(err)
	}
	return cfg
}

// NewBlankConfig returns a Config with no values set; for testing
func NewBlankConfig() Config {
	return &fileConfig{sections: map[string]map[string]string{}}
}

func parseConfigData(data []byte, fn string) (Config, error) {
	sections := map[string]map[string]string{}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w", fn, err)
	}
	return &fileConfig{sections: sections}, nil
}

type fileConfig struct {
	sections map[string]map[string]string
}

// Get returns the value for key inside section, or the empty string when the
// section or key is absent. Absence is not an error.
func (c *fileConfig) Get(section, key string) (string, error) {
	s, ok := c.sections[section]
	if !ok {
		return "", nil
	}
	return s[key], nil
}
