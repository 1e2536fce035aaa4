package config

import (
	"encoding/json"
	"os"

	"github.com/litoraledu/gestordoc/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	ServerEndpointAddr  string `json:"server_endpoint_addr"`
	DataDir             string `json:"data_dir"`
	InstitutionalDomain string `json:"institutional_domain"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is set, no JSON
// file is loaded. An unreadable or invalid file panics, matching
// flag-parsing behavior.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.DataDir = jc.DataDir
	cfg.InstitutionalDomain = jc.InstitutionalDomain
}
