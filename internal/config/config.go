package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// credentialKey is the storage key the dashboard has always used for the
// admin token. Kept verbatim so an existing config survives upgrades.
const credentialKey = "ta_admin_pwd"

const baseURLKey = "base_url"

// Store owns the on-disk config: the cached admin credential plus the
// optional API origin override. It wraps its own viper instance rather than
// the package-level one so tests (and future multi-profile support) can point
// it at any file.
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore opens the config at cfgFile, or at $HOME/.testify-admin.yaml when
// cfgFile is empty. A missing file is not an error; the store starts empty
// and the file is created on first save.
func NewStore(cfgFile string) (*Store, error) {
	v := viper.New()

	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, ".testify-admin.yaml")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	return &Store{v: v, path: path}, nil
}

// Credential returns the cached admin token, or "" when none was saved.
func (s *Store) Credential() string {
	return s.v.GetString(credentialKey)
}

// SaveCredential persists the token under the fixed key. An empty token is a
// no-op so a blank field never clobbers a previously saved value.
func (s *Store) SaveCredential(token string) error {
	if token == "" {
		return nil
	}
	s.v.Set(credentialKey, token)
	return s.write()
}

// BaseURL returns the configured API origin, or "" to use the default.
func (s *Store) BaseURL() string {
	return s.v.GetString(baseURLKey)
}

// SaveBaseURL persists an API origin override.
func (s *Store) SaveBaseURL(baseURL string) error {
	if baseURL == "" {
		return nil
	}
	s.v.Set(baseURLKey, baseURL)
	return s.write()
}

func (s *Store) write() error {
	if err := s.v.WriteConfig(); err != nil {
		// First save: the file does not exist yet.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return s.v.WriteConfigAs(s.path)
		}
		return err
	}
	return nil
}

// Path reports where the config lives, for user-facing messages.
func (s *Store) Path() string {
	return s.path
}
