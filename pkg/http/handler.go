package http

import "github.com/labstack/echo/v4"

// Handler is implemented by every HTTP boundary that wants its routes
// mounted on the shared server.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
