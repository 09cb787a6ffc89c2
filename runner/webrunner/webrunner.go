// Package webrunner serves the local web UI.
package webrunner

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/geocoder"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/resolver"
	"github.com/gosom/google-maps-coordinates/runner"
	"github.com/gosom/google-maps-coordinates/tlmt"
	"github.com/gosom/google-maps-coordinates/web"
)

type webrunner struct {
	cfg    *runner.Config
	kv     history.KV
	webCfg web.Config
}

func New(cfg *runner.Config) (runner.Runner, error) {
	if cfg.RunMode != runner.RunModeWeb {
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}

	logger, err := runner.NewLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	kv, err := runner.NewKV(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	store := history.NewStore(context.Background(), kv, logger)
	svc := resolver.NewService(store, geocoder.New(cfg.APIKey), logger)

	mode := extractor.PreferViewport
	if cfg.PreferExact {
		mode = extractor.PreferExact
	}

	ans := webrunner{
		cfg: cfg,
		kv:  kv,
		webCfg: web.Config{
			Addr:        cfg.Addr,
			Debug:       cfg.Debug,
			DefaultMode: mode,
			Resolver:    svc,
			History:     store,
		},
	}

	return &ans, nil
}

func (w *webrunner) Run(ctx context.Context) error {
	t0 := time.Now().UTC()

	defer func() {
		params := map[string]any{
			"uptime": time.Now().UTC().Sub(t0).String(),
		}

		_ = runner.Telemetry().Send(ctx, tlmt.NewEvent("web_runner", params))
	}()

	egroup, ctx := errgroup.WithContext(ctx)

	egroup.Go(func() error {
		return web.Start(ctx, w.webCfg)
	})

	return egroup.Wait()
}

func (w *webrunner) Close(context.Context) error {
	if closer, ok := w.kv.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
