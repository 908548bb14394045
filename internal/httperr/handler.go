package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the wire shape of every error response.
type envelope struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns the Echo error handler that acts as the single
// boundary between typed errors and the transport layer. env selects whether
// internal error causes are echoed back ("prod" suppresses them).
func NewHTTPErrorHandler(env string) echo.HTTPErrorHandler {
	dev := env != "prod"
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := envelope{Message: "Something went wrong!"}

		var appErr *Error
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status()
			body.Message = appErr.Message
			body.Details = appErr.Details
			if appErr.Kind == KindInternal {
				log.Printf("internal error: %v", appErr.Err)
				if dev && appErr.Err != nil {
					body.Details = appErr.Err.Error()
				}
			}
		case errors.As(err, &echoErr):
			// Echo's own routing errors (404/405) and anything a binder
			// rejected before reaching a handler.
			status = echoErr.Code
			if msg, ok := echoErr.Message.(string); ok {
				body.Message = msg
			}
		default:
			log.Printf("unhandled error: %v", err)
			if dev {
				body.Details = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
