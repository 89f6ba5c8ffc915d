package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gist-cli/gist/internal/config"
)

// editorAlternativesPath is the well-known editor path maintained by the
// system's alternatives mechanism.
var editorAlternativesPath = "/usr/bin/editor"

// DetermineEditor resolves the editor program to launch. Each stage of the
// chain receives the previous result as its fallback, so explicit user
// configuration wins over the environment, which wins over the system
// default: alternatives path, then GIST_EDITOR or EDITOR, then the config
// file's editor key.
func DetermineEditor(cf func() (config.Config, error)) (string, error) {
	editorCommand := ""

	if _, err := os.Stat(editorAlternativesPath); err == nil {
		editorCommand = editorAlternativesPath
	}

	if v := strings.TrimSpace(os.Getenv("GIST_EDITOR")); v != "" {
		editorCommand = v
	} else if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		editorCommand = v
	}

	cfg, err := cf()
	if err != nil {
		return "", fmt.Errorf("could not read config: %w", err)
	}
	if v, _ := cfg.Get(config.Section, "editor"); v != "" {
		editorCommand = v
	}

	if editorCommand == "" {
		return "", errors.New("no editor available: set the EDITOR environment variable or the editor key in your config file")
	}

	return editorCommand, nil
}
