package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// Recover turns a handler panic into a 500 envelope so a single bad
// pipeline run never takes the process down. The envelope mirrors the
// shape every other response uses.
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				log.Printf("PANIC %s %s: %v\n%s",
					c.Request().Method, c.Request().URL.Path, err, debug.Stack())
				_ = c.JSON(http.StatusOK, struct {
					Status  int    `json:"status"`
					Message string `json:"message"`
				}{
					Status:  http.StatusInternalServerError,
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}()
			return next(c)
		}
	}
}
