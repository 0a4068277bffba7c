package configwatcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mahad_backend/internal/config"
	"mahad_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const watcherTestConfig = `server:
  port: "8080"
  mode: debug

database:
  host: localhost
  port: 3306
  user: mahad
  password: secret
  dbname: mahad_platform
  charset: utf8mb4
  parsetime: true

jwt:
  secret: test-secret-test-secret-test-secret
  expire_hours: 72

redis:
  host: localhost
  port: 6379

storage:
  type: minio
  minio_endpoint: localhost:9000
  minio_bucket: mahad-photos

tracing:
  enabled: false
`

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatchConfigReloadsAfterWrites(t *testing.T) {
	logger.Log = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, watcherTestConfig)

	reloaded := make(chan *config.Config, 1)
	go WatchConfig(path, func(cfg *config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	// Let the watcher register before touching the file.
	time.Sleep(200 * time.Millisecond)

	writeConfig(t, path, strings.Replace(watcherTestConfig, `port: "8080"`, `port: "9090"`, 1))
	select {
	case cfg := <-reloaded:
		assert.Equal(t, "9090", cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded after the first write")
	}

	// A later write must reload again: the debounce timer has fired once and
	// its channel is empty, which previously wedged the watcher.
	writeConfig(t, path, strings.Replace(watcherTestConfig, `port: "8080"`, `port: "9191"`, 1))
	select {
	case cfg := <-reloaded:
		assert.Equal(t, "9191", cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded after the second write")
	}
}
