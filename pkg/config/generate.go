package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hilfsbuch/pkg/errors"
	"github.com/arthur-debert/hilfsbuch/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const generatedHeader = `# hilfsbuch configuration
# Uncomment a value to change it. Environment variables such as
# HILFSBUCH_RENDER_FORMAT override this file.

`

// Marshal encodes cfg as TOML
func Marshal(cfg *Config) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}

// GenerateConfigContent returns the default configuration as TOML with all
// values commented out
func GenerateConfigContent() (string, error) {
	content, err := Marshal(Default())
	if err != nil {
		return "", err
	}
	return generatedHeader + commentOutConfigValues(content), nil
}

// WriteDefault writes the generated configuration to path, or to the default
// config file location when path is empty. An existing file is left alone and
// reported through the returned bool.
func WriteDefault(fs afero.Fs, path string) (string, bool, error) {
	if path == "" {
		path = paths.ConfigFile()
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return path, false, errors.Wrapf(err, errors.ErrFileWrite, "failed to check %s", path)
	}
	if exists {
		return path, false, nil
	}

	content, err := GenerateConfigContent()
	if err != nil {
		return path, false, err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, false, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory for %s", path)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return path, false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", path)
	}
	return path, true, nil
}

// commentOutConfigValues comments out every assignment line, keeping
// comments, blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
