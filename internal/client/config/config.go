// Package config holds runtime settings for the document dashboard CLI.
package config

import "github.com/litoraledu/gestordoc/internal/common"

// Config holds runtime settings for the CLI client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - DataDir: directory where the document collections are persisted.
//   - InstitutionalDomain: domain used to validate share recipients.
type Config struct {
	ServerEndpointAddr  string
	DataDir             string
	InstitutionalDomain string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.DataDir = "gestordoc-data"
	c.InstitutionalDomain = common.DefaultInstitutionalDomain
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
