package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucrnz/qakit/pkg/dbops"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "QAKIT_CONFIG"

// DefaultFile is looked up in the working directory as a last resort.
const DefaultFile = "qakit.yaml"

// Config is the on-disk qakit configuration.
type Config struct {
	Log       Log                   `yaml:"log"`
	Databases map[string]dbops.Conn `yaml:"databases"`

	// Path is the file the config was loaded from; empty when none was found.
	Path string `yaml:"-"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Resolve returns the config file path to use: flagPath, then $QAKIT_CONFIG,
// then ./qakit.yaml if it exists. An empty result means no config file.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	if st, err := os.Stat(DefaultFile); err == nil && st.Mode().IsRegular() {
		return DefaultFile
	}
	return ""
}

// Load reads the file chosen by Resolve. A missing optional file yields an
// empty Config; a missing explicitly named file is an error.
func Load(flagPath string) (*Config, error) {
	path := Resolve(flagPath)
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && flagPath == "" && os.Getenv(EnvPath) == "" {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes YAML config data and expands ${ENV} references in
// database credentials.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	for name, c := range cfg.Databases {
		c.DSN = expand(c.DSN)
		c.User = expand(c.User)
		c.Password = expand(c.Password)
		cfg.Databases[name] = c
	}
	return &cfg, nil
}

// Profile returns the named database profile.
func (c *Config) Profile(name string) (dbops.Conn, error) {
	conn, ok := c.Databases[name]
	if !ok {
		if len(c.Databases) == 0 {
			return dbops.Conn{}, fmt.Errorf("unknown database profile %q: no profiles configured", name)
		}
		return dbops.Conn{}, fmt.Errorf("unknown database profile %q (available: %s)", name, strings.Join(c.ProfileNames(), ", "))
	}
	return conn, nil
}

// ProfileNames lists the configured profiles in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Databases))
	for n := range c.Databases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// expand replaces a value of the exact form ${NAME} with $NAME from the
// environment. Anything else is returned as is, so literal '$' in passwords
// survives.
func expand(v string) string {
	if strings.HasPrefix(v, "${") && strings.HasSuffix(v, "}") && len(v) > 3 {
		return os.Getenv(v[2 : len(v)-1])
	}
	return v
}
