package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds runtime options that do not affect gameplay rules.
type Settings struct {
	LogLevel  string      `yaml:"log_level"`
	LogFile   string      `yaml:"log_file"`   // Terminal frontends log here; empty discards
	AssetsDir string      `yaml:"assets_dir"` // Directory with space/spaceship/asteroid/bullet PNGs
	Seed      int64       `yaml:"seed"`       // 0 picks a time-based seed
	SSH       SSHSettings `yaml:"ssh"`
}

// SSHSettings configures the SSH frontend.
type SSHSettings struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Default returns the settings used when no file or environment is given.
func Default() Settings {
	return Settings{
		LogLevel: "info",
		SSH: SSHSettings{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
		},
	}
}

// Load reads settings from the YAML file at path (skipped when empty) on top
// of the defaults, then applies environment overrides.
func Load(path string) (Settings, error) {
	s := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return s, fmt.Errorf("open settings %s: %w", path, err)
		}
		defer f.Close()

		if err := decode(f, &s); err != nil {
			return s, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, nil
}

func decode(r io.Reader, s *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Settings) applyEnv() error {
	s.LogLevel = GetEnv("SPACEROCKS_LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("SPACEROCKS_LOG_FILE", s.LogFile)
	s.AssetsDir = GetEnv("SPACEROCKS_ASSETS", s.AssetsDir)
	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", s.SSH.HostKeyPath)

	if v, ok := os.LookupEnv("SPACEROCKS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SPACEROCKS_SEED: %w", err)
		}
		s.Seed = seed
	}
	return nil
}

// NewRand returns the random source for a new game. A zero Seed uses the
// current time, so every game differs.
func (s Settings) NewRand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
