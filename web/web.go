// Package web serves the extraction form, results and history UI.
package web

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	templates "github.com/wolfeidau/echo-go-templates"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/resolver"
	"github.com/gosom/google-maps-coordinates/web/internal/server"
	"github.com/gosom/google-maps-coordinates/web/internal/views"
)

type Config struct {
	Addr        string
	Debug       bool
	DefaultMode extractor.Mode
	Resolver    *resolver.Service
	History     *history.Store
}

func Start(ctx context.Context, cfg Config) error {
	e := echo.New()
	e.Debug = cfg.Debug
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Logger.SetOutput(os.Stderr)

	render := templates.New()

	err := render.AddWithLayoutAndIncludes(views.Content, "layouts/base.html", "includes/*.html", "templates/*.html")
	if err != nil {
		return err
	}

	e.Renderer = render

	srv := server.NewServer(cfg.Resolver, cfg.History, cfg.DefaultMode)

	server.RegisterHandlers(e, srv)

	go func() {
		<-ctx.Done()

		_ = e.Shutdown(context.Background())
	}()

	return e.Start(cfg.Addr)
}
