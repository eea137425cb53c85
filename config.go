package factom

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

/*
Config mirrors the endpoint section of a TOML configuration file:

	factomdServer = "https://api.factomd.net/v2"
	walletdServer = "http://localhost:8088/v2"

Empty fields fall back to the localhost defaults, so a file may override just
one daemon.
*/
type Config struct {
	FactomdServer string `toml:"factomdServer"`
	WalletdServer string `toml:"walletdServer"`
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithStack(err)
	}
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %v", path)
	}
	return cfg, nil
}

// Client converts the configuration into a Client, defaulting any endpoint
// the file left empty.
func (self Config) Client() Client {
	out := NewClient()
	if self.FactomdServer != "" {
		out.FactomdServer = self.FactomdServer
	}
	if self.WalletdServer != "" {
		out.WalletdServer = self.WalletdServer
	}
	return out
}
