package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Session store backends.
const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

// SessionConfig contains session persistence configuration.
type SessionConfig struct {
	// Backend selects the session store: "file" or "redis".
	Backend string `env:"BACKEND" envDefault:"file"`

	// FilePath is the session file location for the file backend.
	// Defaults to $HOME/.dms/session.json when empty.
	FilePath string `env:"FILE_PATH" envDefault:""`

	// RedisAddr is the Redis address for the redis backend.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the Redis password for the redis backend.
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`

	// RedisDB is the Redis database index for the redis backend.
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// RedisTTL bounds how long a persisted session outlives its last write.
	// Zero means no expiry.
	RedisTTL time.Duration `env:"REDIS_TTL" envDefault:"0"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	if s.Backend != SessionBackendRedis {
		s.Backend = SessionBackendFile
	}
	if s.FilePath == "" {
		s.FilePath = defaultSessionPath()
	}
	if s.RedisTTL < 0 {
		s.RedisTTL = 0
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dms", "session.json")
	}
	return filepath.Join(home, ".dms", "session.json")
}
