package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func serve(env string, err error) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(env)
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTranslator_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", Validation("Validation Error", []string{"name is required"}), http.StatusBadRequest, "name is required"},
		{"conflict", Conflict("duplicate"), http.StatusBadRequest, "Duplicate Error"},
		{"auth", Auth("Invalid email or password"), http.StatusUnauthorized, "Invalid email or password"},
		{"not found", NotFound("Rock not found"), http.StatusNotFound, "Rock not found"},
		{"internal", Internal(errors.New("db down")), http.StatusInternalServerError, "Something went wrong!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve("test", tc.err)
			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestTranslator_InternalDetailSuppressedInProd(t *testing.T) {
	t.Parallel()

	err := Internal(errors.New("dsn: user=root password=hunter2"))

	dev := serve("dev", err)
	require.Contains(t, dev.Body.String(), "hunter2", "dev should expose the cause")

	prod := serve("prod", err)
	require.NotContains(t, prod.Body.String(), "hunter2", "prod must hide the cause")
	require.Contains(t, prod.Body.String(), "Something went wrong!")
}

func TestTranslator_UnknownErrorDefaultsToInternal(t *testing.T) {
	t.Parallel()

	rec := serve("prod", errors.New("surprise"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Something went wrong!")
	require.NotContains(t, rec.Body.String(), "surprise")
}

func TestTranslator_EchoRoutingErrors(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler("test")

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := Internal(cause)
	require.ErrorIs(t, err, cause)
}
