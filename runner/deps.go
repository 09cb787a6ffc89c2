package runner

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/history/kvredis"
	"github.com/gosom/google-maps-coordinates/history/kvsqlite"
)

const historyDBName = "history.db"

// NewLogger builds the process logger. Debug mode switches to the human
// readable development encoder.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// NewKV opens the history persistence backend selected by cfg: redis when an
// address is given, a local sqlite database otherwise.
func NewKV(ctx context.Context, cfg *Config) (history.KV, error) {
	if cfg.RedisAddr != "" {
		return kvredis.New(ctx, cfg.RedisAddr)
	}

	if err := os.MkdirAll(cfg.DataFolder, os.ModePerm); err != nil {
		return nil, err
	}

	return kvsqlite.New(filepath.Join(cfg.DataFolder, historyDBName))
}
