package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	widgeterrors "github.com/alexisbeaulieu97/widgetkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a demo configuration file from disk, validates it, and
// returns the resulting model.
func ParseConfig(path string) (*DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, widgeterrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes decodes and validates configuration data. path is only used in
// error messages.
func ParseBytes(path string, data []byte) (*DemoConfig, error) {
	var cfg DemoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, widgeterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load returns the stock demo configuration when path is empty and parses
// the file otherwise.
func Load(path string) (*DemoConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
