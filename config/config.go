// Package config holds the toml-encoded settings of the lexiset command: how
// to build the MembershipFilter, where Redis lives, which word sources to
// load and how to log.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kwertop/lexiset"
	"github.com/kwertop/lexiset/hash"
	"github.com/kwertop/lexiset/internal/logging"
)

// Bit array backends accepted in FilterConfig.Backend.
const (
	BackendMem     = "mem"
	BackendRedis   = "redis"
	BackendRoaring = "roaring"
)

// A Config contains configuration values which are read at initialization
// time from a TOML format configuration file.
type Config struct {
	// Path is the file the config was loaded from. Relative source paths are
	// resolved against its directory.
	Path string `toml:"-"`

	Filter  *FilterConfig         `toml:"filter"`
	Redis   *RedisConfig          `toml:"redis,omitempty"`
	Sources []string              `toml:"sources"`
	Logger  *logging.LoggerConfig `toml:"logger"`
}

// FilterConfig sizes the MembershipFilter. Either Size and NumHashes are
// set, or ExpectedItems and ErrorRate are and the sizing is derived.
type FilterConfig struct {
	Size          uint    `toml:"size,omitempty"`
	NumHashes     uint    `toml:"num_hashes,omitempty"`
	ExpectedItems uint    `toml:"expected_items,omitempty"`
	ErrorRate     float64 `toml:"error_rate,omitempty"`
	Hasher        string  `toml:"hasher"`
	Backend       string  `toml:"backend"`
}

// RedisConfig locates the Redis server used by the redis backend and by the
// word authority. Empty keys are generated.
type RedisConfig struct {
	URI      string `toml:"uri"`
	BitsKey  string `toml:"bits_key,omitempty"`
	WordsKey string `toml:"words_key,omitempty"`
}

// Default returns the config written by "lexiset init"
func Default() *Config {
	return &Config{
		Filter: &FilterConfig{
			ExpectedItems: 10000,
			ErrorRate:     0.01,
			Hasher:        "metro",
			Backend:       BackendMem,
		},
		Sources: []string{"words.txt"},
		Logger: &logging.LoggerConfig{
			EnableStacktrace: true,
			Environment:      "development",
			Path:             "lexiset.log",
		},
	}
}

// Load decodes the toml file at _path_ and validates it
func Load(path string) (*Config, error) {
	conf := &Config{}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("lexiset: failed to load config: %w", err)
	}
	conf.Path = path
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Save writes the config to _path_ in toml encoding. An existing file is
// never overwritten.
func (conf *Config) Save(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("lexiset: can't write config, file %q already exists", path)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}
	conf.Path = path
	return nil
}

// Validate checks the config for settings the command can't act on
func (conf *Config) Validate() error {
	var errs []error
	if conf.Filter == nil {
		errs = append(errs, errors.New("missing [filter] section"))
	} else {
		f := conf.Filter
		if f.Size == 0 && f.ExpectedItems == 0 {
			errs = append(errs, errors.New("filter needs either size or expected_items"))
		}
		if f.Size == 0 && (f.ErrorRate <= 0 || f.ErrorRate >= 1) {
			errs = append(errs, fmt.Errorf("filter error_rate must be in (0, 1), got %v", f.ErrorRate))
		}
		if _, err := hash.HasherByName(f.Hasher); err != nil {
			errs = append(errs, err)
		}
		switch strings.ToLower(f.Backend) {
		case "", BackendMem, BackendRoaring:
		case BackendRedis:
			if conf.Redis == nil || conf.Redis.URI == "" {
				errs = append(errs, errors.New("redis backend needs [redis] uri"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown filter backend %q", f.Backend))
		}
	}
	if conf.Redis != nil && conf.Redis.URI != "" {
		if _, err := lexiset.ParseRedisURI(conf.Redis.URI); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: invalid config: %w", lexiset.ErrInvalidArgument, err)
	}
	return nil
}

// ResolvePath returns _file_ unchanged if it is absolute, else joined to the
// directory of the config file.
func (conf *Config) ResolvePath(file string) string {
	if filepath.IsAbs(file) || conf.Path == "" {
		return file
	}
	return filepath.Join(filepath.Dir(conf.Path), file)
}

// SourcePaths returns every source resolved with ResolvePath
func (conf *Config) SourcePaths() []string {
	paths := make([]string, len(conf.Sources))
	for i, source := range conf.Sources {
		paths[i] = conf.ResolvePath(source)
	}
	return paths
}
