package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gosom/google-maps-coordinates/extractor"
	"github.com/gosom/google-maps-coordinates/history"
	"github.com/gosom/google-maps-coordinates/resolver"
)

type Resolver interface {
	Resolve(ctx context.Context, raw string, mode extractor.Mode) (resolver.Outcome, error)
}

type HistoryStore interface {
	Entries() []history.Entry
	Clear(ctx context.Context) error
}

type server struct {
	svc          Resolver
	store        HistoryStore
	defaultExact bool
}

func NewServer(svc Resolver, store HistoryStore, defaultMode extractor.Mode) Server {
	ans := server{
		svc:          svc,
		store:        store,
		defaultExact: defaultMode == extractor.PreferExact,
	}

	return &ans
}

type IndexData struct {
	Entries     []history.Entry
	Result      *resolver.Outcome
	Error       string
	Input       string
	PreferExact bool
}

func (s *server) Index(c echo.Context) error {
	data := IndexData{
		Entries:     s.store.Entries(),
		PreferExact: s.defaultExact,
	}

	return c.Render(http.StatusOK, "index.html", data)
}

type ExtractForm struct {
	Input       string `form:"input"`
	PreferExact string `form:"preferExact"`
}

func (s *server) Extract(c echo.Context) error {
	var form ExtractForm

	if err := c.Bind(&form); err != nil {
		return err
	}

	data := IndexData{
		Input:       form.Input,
		PreferExact: form.PreferExact == "on",
	}

	raw := strings.TrimSpace(form.Input)
	if raw == "" {
		data.Error = "enter a Google Maps URL, a place name or a place ID"
		data.Entries = s.store.Entries()

		return c.Render(http.StatusOK, "index.html", data)
	}

	mode := extractor.PreferViewport
	if data.PreferExact {
		mode = extractor.PreferExact
	}

	outcome, err := s.svc.Resolve(c.Request().Context(), raw, mode)
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Result = &outcome
	}

	data.Entries = s.store.Entries()

	return c.Render(http.StatusOK, "index.html", data)
}

func (s *server) ClearHistory(c echo.Context) error {
	if err := s.store.Clear(c.Request().Context()); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
