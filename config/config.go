package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Config holds the [DEFAULT]-section values doRiNA's CLI reads defaults
// from (spec.md §6). Unrecognized keys are kept in Extra so a future
// section can be threaded through without a schema change.
type Config struct {
	DataPath string
	Organism string
	Version  string
	Tissue   string
	Extra    map[string]string
}

// Load scans an ini-shaped file containing a single [DEFAULT] section of
// key = value lines. Comment lines start with ';' or '#'; blank lines are
// skipped. A leading '~' in data_path is expanded against the user's home
// directory.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "config: open")
	}
	defer f.Close()

	cfg := &Config{Extra: map[string]string{}}
	section := ""
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if section != "" && section != "DEFAULT" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: %s:%d: expected key = value, got %q", path, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		cfg.set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "config: scan")
	}

	expanded, err := expandHome(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	cfg.DataPath = expanded
	return cfg, nil
}

func (c *Config) set(key, value string) {
	switch key {
	case "data_path":
		c.DataPath = value
	case "organism":
		c.Organism = value
	case "version":
		c.Version = value
	case "tissue":
		c.Tissue = value
	default:
		c.Extra[key] = value
	}
}

// expandHome replaces a leading "~" in path with the user's home
// directory, matching the source's validate_data_path.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", pkgerrors.Wrap(err, "config: resolve home directory")
	}
	return home + path[1:], nil
}
