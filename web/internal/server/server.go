package server

import "github.com/labstack/echo/v4"

type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Server interface {
	Index(c echo.Context) error
	Extract(c echo.Context) error
	ClearHistory(c echo.Context) error
}

func RegisterHandlers(router EchoRouter, si Server, _ ...echo.MiddlewareFunc) {
	router.GET("/", si.Index).Name = "index"
	router.POST("/extract", si.Extract).Name = "extract"
	router.POST("/history/clear", si.ClearHistory).Name = "clear-history"
}
