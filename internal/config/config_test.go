package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
addr: ":9090"
log_level: debug
param_prefix: /site
store:
  driver: DynamoDB
  table: site-content
admin:
  email: admin@example.com
  password_hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"
jwt:
  secret: 0123456789abcdef0123456789abcdef
  ttl: 2h
chat:
  upstream_timeout: 10s
  default_key_param: /site/lovable-key
  endpoints:
    gemini: http://localhost:9999
`

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, DriverSQLite, cfg.Store.Driver)
	require.Equal(t, "studio-site.db", cfg.Store.Path)
	require.Equal(t, "/studio-site", cfg.ParamPrefix)
	require.Equal(t, 12*time.Hour, cfg.JWT.TTL)
	require.Equal(t, 30*time.Second, cfg.Chat.UpstreamTimeout)
	require.NoError(t, cfg.ValidateStore())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, DriverDynamoDB, cfg.Store.Driver)
	require.Equal(t, "site-content", cfg.Store.Table)
	require.Equal(t, "admin@example.com", cfg.Admin.Email)
	require.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	require.Equal(t, 10*time.Second, cfg.Chat.UpstreamTimeout)
	require.Equal(t, "/site/lovable-key", cfg.Chat.DefaultKeyParam)
	require.Equal(t, "http://localhost:9999", cfg.Chat.Endpoints["gemini"])
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.NoError(t, cfg.ValidateServer())
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "sitectl.yaml", "addr: \":7070\"\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", sampleYAML)
	t.Setenv("SITE_STORE_TABLE", "from-env")
	t.Setenv("SITE_JWT_TTL", "30m")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Store.Table)
	require.Equal(t, 30*time.Minute, cfg.JWT.TTL)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".env", "SITE_ADMIN_EMAIL=dotenv@example.com\n")
	t.Chdir(dir)
	// godotenv never overrides variables that are already set.
	t.Setenv("SITE_ADMIN_EMAIL", "")
	require.NoError(t, os.Unsetenv("SITE_ADMIN_EMAIL"))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dotenv@example.com", cfg.Admin.Email)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateStore(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "sqlite ok", cfg: Config{ParamPrefix: "/p", Store: StoreConfig{Driver: DriverSQLite, Path: "x.db"}}},
		{name: "sqlite without path", cfg: Config{ParamPrefix: "/p", Store: StoreConfig{Driver: DriverSQLite}}, wantErr: true},
		{name: "dynamodb ok", cfg: Config{ParamPrefix: "/p", Store: StoreConfig{Driver: DriverDynamoDB, Table: "t"}}},
		{name: "dynamodb without table", cfg: Config{ParamPrefix: "/p", Store: StoreConfig{Driver: DriverDynamoDB}}, wantErr: true},
		{name: "unknown driver", cfg: Config{ParamPrefix: "/p", Store: StoreConfig{Driver: "mongo"}}, wantErr: true},
		{name: "missing prefix", cfg: Config{Store: StoreConfig{Driver: DriverSQLite, Path: "x.db"}}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.ValidateStore()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateServer(t *testing.T) {
	valid := Config{
		ParamPrefix: "/p",
		Store:       StoreConfig{Driver: DriverSQLite, Path: "x.db"},
		Admin:       AdminConfig{Email: "a@example.com", PasswordHash: "hash"},
		JWT:         JWTConfig{Secret: "0123456789abcdef0123456789abcdef", TTL: time.Hour},
		Chat:        ChatConfig{UpstreamTimeout: time.Second},
	}
	require.NoError(t, valid.ValidateServer())

	noAdmin := valid
	noAdmin.Admin.PasswordHash = ""
	require.Error(t, noAdmin.ValidateServer())

	shortSecret := valid
	shortSecret.JWT.Secret = "short"
	require.Error(t, shortSecret.ValidateServer())

	noTimeout := valid
	noTimeout.Chat.UpstreamTimeout = 0
	require.Error(t, noTimeout.ValidateServer())
}

func TestSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
	require.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	require.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
}
