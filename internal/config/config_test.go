package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyReloadableSwapsJWTUnderConcurrentReads(t *testing.T) {
	cfg := &Config{}
	cfg.JWT = JWTConfig{Secret: "old-secret-old-secret-old-secret", ExpireTime: time.Hour}

	next := &Config{}
	next.JWT = JWTConfig{Secret: "new-secret-new-secret-new-secret", ExpireTime: 2 * time.Hour}

	// Readers race the swap; run with -race to verify the section is guarded.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s := cfg.JWTSecret()
				assert.NotEmpty(t, s)
			}
		}()
	}
	for i := 0; i < 1000; i++ {
		cfg.ApplyReloadable(next)
	}
	wg.Wait()

	jwt := cfg.JWTSettings()
	assert.Equal(t, "new-secret-new-secret-new-secret", jwt.Secret)
	assert.Equal(t, 2*time.Hour, jwt.ExpireTime)
}

func TestApplyReloadableLeavesBootSettings(t *testing.T) {
	cfg := &Config{}
	cfg.Storage = StorageConfig{Type: "local", LocalPath: "uploads"}
	cfg.Server = ServerConfig{Port: "8080", Mode: "debug"}

	next := &Config{}
	next.JWT = JWTConfig{Secret: "swapped-in-secret-swapped-in-sec", ExpireTime: time.Hour}
	next.Storage = StorageConfig{Type: "minio"}
	next.Server = ServerConfig{Port: "9090"}

	cfg.ApplyReloadable(next)

	assert.Equal(t, "swapped-in-secret-swapped-in-sec", cfg.JWTSecret())
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "8080", cfg.Server.Port)
}
