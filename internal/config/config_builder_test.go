package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0"}, Server: Server{HTTPAddress: ":1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":1", cfg.Server.HTTPAddress)
}

func TestBuild_DefaultsFillOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "other.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "other.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLogFile, cfg.App.LogFile)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{RefreshInterval: -time.Second}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_EnvOverFlagsOverFile(t *testing.T) {
	path := writeConfigFile(t, "config.toml",
		"[app]\nversion = \"from-file\"\n\n[server]\nhttp_address = \"localhost:3333\"\nrequest_timeout = \"7s\"\n")

	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("SERVER_ADDRESS", "localhost:1111")

	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:2222", "-version", "from-flags", "-c", path}

	cfg, err := b.withEnv().withFlags().withFile().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

func TestBuilder_FlagsOverFile(t *testing.T) {
	path := writeConfigFile(t, "config.toml", "[server]\nhttp_address = \"localhost:3333\"\n")

	b := newConfigBuilder()
	b.args = []string{"-a", "localhost:2222", "-c", path}

	cfg, err := b.withFlags().withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
}

func TestBuilder_FileFromEnv(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"workers": {"refresh_interval": "10s"}}`)
	t.Setenv("CONFIG", path)

	b := newConfigBuilder()
	b.args = nil

	cfg, err := b.withEnv().withFlags().withFile().build()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)
}

func TestBuilder_CollectsSourceErrors(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "bogus")

	b := newConfigBuilder()
	b.args = []string{"-a", "bogus"}

	cfg, err := b.withEnv().withFlags().withFile().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestBuilder_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-config", "/does/not/exist.json"}

	cfg, err := b.withFlags().withFile().build()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "error reading config file")
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidateServer(t *testing.T) {
	valid := defaults()
	assert.NoError(t, valid.validateServer())

	noDSN := defaults()
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validateServer(), ErrInvalidServerConfigs)

	noTimeout := defaults()
	noTimeout.Server.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validateServer(), ErrInvalidServerConfigs)
}

func TestNewClientConfig(t *testing.T) {
	cfg := defaults()
	cfg.Workers.RefreshInterval = 30 * time.Second

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, &ClientConfig{
		LogFile: DefaultLogFile,
		Adapter: ClientAdapter{HTTPAddress: DefaultHTTPAddress, RequestTimeout: DefaultAdapterRequestTimeout},
		Workers: ClientWorkers{RefreshInterval: 30 * time.Second},
	}, clientCfg)

	cfg.Adapter.HTTPAddress = ""
	_, err = newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
