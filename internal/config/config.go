package config

import (
	"os"
	"strconv"
	"strings"
)

// AppConfig is the environment-driven configuration. Everything is optional:
// without REDIS_URL snapshots live in memory, without DATABASE_URL finished
// games are archived in memory.
type AppConfig struct {
	RedisURL    string
	DatabaseURL string

	SnapshotPrefix string
	SnapshotTTLSec int // 0 = keys never expire

	MsgcatOverrideDir string

	// BoardImageDir, when set, makes the host dump a PNG of the board there
	// after every render.
	BoardImageDir    string
	BoardImageSquare int
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		SnapshotPrefix:   "chessboard",
		SnapshotTTLSec:   0,
		BoardImageSquare: 72,
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.MsgcatOverrideDir = strings.TrimSpace(os.Getenv("MSGCAT_OVERRIDE_DIR"))
	cfg.BoardImageDir = strings.TrimSpace(os.Getenv("BOARD_IMAGE_DIR"))

	if v := strings.TrimSpace(os.Getenv("SNAPSHOT_PREFIX")); v != "" {
		cfg.SnapshotPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv("SNAPSHOT_TTL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SnapshotTTLSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("BOARD_IMAGE_SQUARE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 16 {
			cfg.BoardImageSquare = n
		}
	}

	return cfg, nil
}
