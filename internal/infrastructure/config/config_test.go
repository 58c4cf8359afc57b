package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir 切换到空目录，避免读到仓库中的config.yaml和.env
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Duration(0), cfg.Server.RequestTimeout)
	assert.Equal(t, "books", cfg.Database.DBName)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := []byte(`
server:
  port: 9000
  request_timeout: 3s
database:
  dbname: catalog
  auto_migrate: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "catalog", cfg.Database.DBName)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host, "未配置的字段保留默认值")
}

func TestLoad_EnvOverride(t *testing.T) {
	inTempDir(t)
	t.Setenv("BOOKCATALOG_SERVER_PORT", "9090")
	t.Setenv("BOOKCATALOG_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_LegacyMySQLEnv(t *testing.T) {
	t.Run("使用MYSQL_*变量", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("MYSQL_HOST", "db.internal")
		t.Setenv("MYSQL_DATABASE", "legacy_books")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "legacy_books", cfg.Database.DBName)
	})

	t.Run("BOOKCATALOG_*优先", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("MYSQL_HOST", "db.internal")
		t.Setenv("BOOKCATALOG_DATABASE_HOST", "db.primary")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "db.primary", cfg.Database.Host)
	})
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("端口越界", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("BOOKCATALOG_SERVER_PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("限流配置为负数", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("BOOKCATALOG_SERVER_RATE_LIMIT", "-1")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:      "127.0.0.1",
		Port:      3306,
		User:      "root",
		Password:  "secret",
		DBName:    "books",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Asia/Shanghai",
	}

	assert.Equal(t,
		"root:secret@tcp(127.0.0.1:3306)/books?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai&clientFoundRows=true",
		d.DSN(),
	)
}
