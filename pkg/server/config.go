package server

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	log "gopkg.in/inconshreveable/log15.v2"
)

// Config is read from server.toml in the static directory.
type Config struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	World       string   `toml:"world"`
	DB          string   `toml:"db"`
	MaxClients  int      `toml:"max_clients"`
	QuitWords   []string `toml:"quit_words"`
	IdleTimeout string   `toml:"idle_timeout"` // e.g. "90s" or "5m"

	idleTimeout time.Duration
}

const defaultIdleTimeout = 5 * time.Minute

// LoadConfig decodes path. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	log.Info("Loading config ...")

	config := Config{}
	fileContent, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Warn(fmt.Sprintf("%s does not exist, using defaults", path))
	case err != nil:
		return config, err
	default:
		if _, err := toml.Decode(string(fileContent), &config); err != nil {
			return config, fmt.Errorf("%s could not be unmarshaled: %w", path, err)
		}
	}

	if err := config.setDefaults(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("Config loaded.")
	return config, nil
}

func (c *Config) setDefaults() error {
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.World == "" {
		c.World = "default"
	}
	if c.DB == "" {
		c.DB = "adventure.db"
	}
	if c.MaxClients == 0 {
		c.MaxClients = 100
	}
	if c.IdleTimeout == "" {
		c.idleTimeout = defaultIdleTimeout
		c.IdleTimeout = c.idleTimeout.String()
		return nil
	}
	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return fmt.Errorf("idle_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("idle_timeout must be positive, got %s", c.IdleTimeout)
	}
	c.idleTimeout = d
	return nil
}

// Timeout is the parsed IdleTimeout.
func (c Config) Timeout() time.Duration {
	return c.idleTimeout
}

// Addr is the address the ssh listener binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
