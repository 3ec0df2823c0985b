// Package profile owns the oboron CLI's on-disk configuration: a single
// config file naming the active profile and its defaults, plus one key
// file per named profile. The core codec packages never import this
// package or know it exists.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	dirName      = ".oboron"
	profilesDir  = "profiles"
	backupsDir   = "backups"
	configName   = "config"
	configType   = "yaml"
	keyFileExt   = ".key"
	filePerm     = 0o600
	dirPerm      = 0o700
	defaultName  = "default"
	defaultSch   = "ob32"
	defaultEnc   = "c32"
)

// Config mirrors the donor's Conf field-per-setting style: every
// persisted value gets its own field, with a mapstructure tag wherever
// the lowercased field name doesn't already match the viper/config key.
type Config struct {
	ActiveProfile string `mapstructure:"profile"`
	// DefaultScheme is the scheme short name (e.g. "ob32") new tokens use
	// when a command doesn't specify --scheme or --format.
	DefaultScheme string `mapstructure:"scheme"`
	// DefaultEncoding is the encoding short name (e.g. "c32") new tokens
	// use when a command doesn't specify --encoding or --format.
	DefaultEncoding string `mapstructure:"encoding"`
}

// Store resolves oboron's config/profile/backup directories under a home
// directory and reads/writes Config and per-profile keys through Viper.
type Store struct {
	home string
	v    *viper.Viper
}

// Open resolves $HOME/.oboron, creating its subdirectories if needed, and
// loads (or defaults) the config file.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	root := filepath.Join(home, dirName)
	for _, sub := range []string{"", profilesDir, backupsDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), dirPerm); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Join(root, sub), err)
		}
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetDefault("profile", defaultName)
	v.SetDefault("scheme", defaultSch)
	v.SetDefault("encoding", defaultEnc)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Store{home: root, v: v}, nil
}

// Config returns the current configuration, applying documented defaults
// for any field left unset.
func (s *Store) Config() (Config, error) {
	var c Config
	if err := s.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if c.ActiveProfile == "" {
		c.ActiveProfile = defaultName
	}
	if c.DefaultScheme == "" {
		c.DefaultScheme = defaultSch
	}
	if c.DefaultEncoding == "" {
		c.DefaultEncoding = defaultEnc
	}
	return c, nil
}

// SetConfig persists c as the config file, overwriting any previous
// content directly (the config file itself is not backed up; only
// profile key files are, per §6.3).
func (s *Store) SetConfig(c Config) error {
	s.v.Set("profile", c.ActiveProfile)
	s.v.Set("scheme", c.DefaultScheme)
	s.v.Set("encoding", c.DefaultEncoding)
	path := filepath.Join(s.home, configName+"."+configType)
	if err := s.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (s *Store) keyPath(name string) string {
	return filepath.Join(s.home, profilesDir, name+keyFileExt)
}

// ProfileExists reports whether a key file already exists for name.
func (s *Store) ProfileExists(name string) bool {
	_, err := os.Stat(s.keyPath(name))
	return err == nil
}

// ReadProfileKey returns the base64 key string stored for name.
func (s *Store) ReadProfileKey(name string) (string, error) {
	b, err := os.ReadFile(s.keyPath(name))
	if err != nil {
		return "", fmt.Errorf("reading profile %q: %w", name, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// WriteProfileKey writes base64Key for name, backing up any existing
// content first.
func (s *Store) WriteProfileKey(name, base64Key string) error {
	if err := s.backup(name); err != nil {
		return err
	}
	if err := os.WriteFile(s.keyPath(name), []byte(base64Key), filePerm); err != nil {
		return fmt.Errorf("writing profile %q: %w", name, err)
	}
	return nil
}

// DeleteProfile backs up and removes name's key file.
func (s *Store) DeleteProfile(name string) error {
	if err := s.backup(name); err != nil {
		return err
	}
	if err := os.Remove(s.keyPath(name)); err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	return nil
}

// RenameProfile moves name's key file to newName, backing up any file
// newName already had.
func (s *Store) RenameProfile(name, newName string) error {
	key, err := s.ReadProfileKey(name)
	if err != nil {
		return err
	}
	if err := s.WriteProfileKey(newName, key); err != nil {
		return err
	}
	return s.DeleteProfile(name)
}

// ListProfiles returns every profile name with a key file, sorted by file
// name.
func (s *Store) ListProfiles() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.home, profilesDir))
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), keyFileExt))
	}
	return names, nil
}

// backup copies name's existing key file, if any, into the backups
// directory under a timestamped name. time.Now() is deliberately confined
// to this CLI-only package; the core codec library never calls it.
func (s *Store) backup(name string) error {
	src := s.keyPath(name)
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading profile %q for backup: %w", name, err)
	}
	stamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	dst := filepath.Join(s.home, backupsDir, fmt.Sprintf("%s-%s%s", name, stamp, keyFileExt))
	if err := os.WriteFile(dst, data, filePerm); err != nil {
		return fmt.Errorf("writing backup for profile %q: %w", name, err)
	}
	return nil
}
