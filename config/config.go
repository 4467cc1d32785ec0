// Package config loads the optional test-resources configuration file.
//
// A test package may carry a testresources.yaml next to its tests:
//
//	classpath:
//	  - testdata
//	  - ../shared/testdata
//	encoding: UTF-8
//
// Environment variables override the file: TESTRESOURCES_CLASSPATH holds a
// list of directories separated by the OS path list separator, and
// TESTRESOURCES_ENCODING the default encoding.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	rerrors "github.com/wippyai/test-resources/errors"
)

// Defaults applied when the file or a field is absent.
const (
	DefaultFile     = "testresources.yaml" // looked up in the working directory
	DefaultRoot     = "testdata"
	DefaultEncoding = "UTF-8"
)

// Environment variables that override the file.
const (
	EnvClasspath = "TESTRESOURCES_CLASSPATH" // OS path list of root directories
	EnvEncoding  = "TESTRESOURCES_ENCODING"
)

// Config is the resolved configuration of a test package.
type Config struct {
	// Classpath lists resource root directories in search order.
	// Relative entries in the file are resolved against the file's directory.
	Classpath []string `yaml:"classpath"`

	// Encoding is the charset used when a resource names none.
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Classpath: []string{DefaultRoot},
		Encoding:  DefaultEncoding,
	}
}

// Load reads path, then applies environment overrides. A missing file yields
// the defaults. Relative classpath entries are resolved against the
// directory of path.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, rerrors.Wrap(rerrors.PhaseConfigure, rerrors.KindInvalidInput, err, "read "+path)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, rerrors.Wrap(rerrors.PhaseConfigure, rerrors.KindInvalidInput, err, "parse "+path)
		}
		if len(file.Classpath) > 0 {
			base := filepath.Dir(path)
			cfg.Classpath = cfg.Classpath[:0]
			for _, dir := range file.Classpath {
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(base, dir)
				}
				cfg.Classpath = append(cfg.Classpath, dir)
			}
		}
		if file.Encoding != "" {
			cfg.Encoding = file.Encoding
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if cp := os.Getenv(EnvClasspath); cp != "" {
		var dirs []string
		for _, dir := range filepath.SplitList(cp) {
			if dir = strings.TrimSpace(dir); dir != "" {
				dirs = append(dirs, dir)
			}
		}
		if len(dirs) > 0 {
			c.Classpath = dirs
		}
	}
	if enc := strings.TrimSpace(os.Getenv(EnvEncoding)); enc != "" {
		c.Encoding = enc
	}
}
