package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"endpoint_addr_http": ":7070",
		"database_dsn": "postgres://cfg",
		"secret_key": "json-secret",
		"session_validity_duration": "6h",
		"remember_session_validity_duration": "168h",
		"institutional_domain": "litoral.edu.co",
		"bcrypt_cost": 12,
		"s3_root_user": "u",
		"s3_root_password": "p",
		"s3_bucket": "b",
		"s3_region": "r",
		"s3_base_endpoint": "http://s3:9000/"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":7070", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://cfg", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 6*time.Hour, c.SessionValidityDuration)
	assert.Equal(t, 7*24*time.Hour, c.RememberSessionValidityDuration)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, "http://s3:9000/", c.S3BaseEndpoint)
}

func TestParseJsonNoFlagIsNoOp(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server"}
	defer func() { os.Args = oldArgs }()

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
}
