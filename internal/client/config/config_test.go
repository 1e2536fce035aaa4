package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.ServerEndpointAddr)
	assert.Equal(t, "gestordoc-data", c.DataDir)
	assert.Equal(t, "litoral.edu.co", c.InstitutionalDomain)
}

func TestParseFlagsOverride(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cli", "-a", "http://backend:9090", "-d", "/tmp/docs"}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://backend:9090", c.ServerEndpointAddr)
	assert.Equal(t, "/tmp/docs", c.DataDir)
	assert.Equal(t, "litoral.edu.co", c.InstitutionalDomain)
}

func TestParseJsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "http://json:8000",
		"data_dir": "json-data",
		"institutional_domain": "uni.edu.co"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"cli", "-c", path}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://json:8000", c.ServerEndpointAddr)
	assert.Equal(t, "json-data", c.DataDir)
	assert.Equal(t, "uni.edu.co", c.InstitutionalDomain)
}

func TestParseJsonNoFlagIsNoOp(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cli"}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:8080", c.ServerEndpointAddr)
}
