package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/rock-catalog/internal/config"
	"github.com/iliyamo/rock-catalog/internal/handler"
	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/router"
	"github.com/iliyamo/rock-catalog/internal/utils"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Env:        "test",
		JWTSecret:  testSecret,
		BcryptCost: bcrypt.MinCost, // keep hashing fast in tests
	}
}

func newAuthServer(t *testing.T) (*echo.Echo, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	e := echo.New()
	e.HTTPErrorHandler = httperr.NewHTTPErrorHandler("test")
	router.RegisterAuth(e, handler.NewAuthHandler(testConfig(), users), nil)
	return e, users
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	e, _ := newAuthServer(t)

	rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	uid, err := utils.ParseUserID(testSecret, resp.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(1), uid)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	e, _ := newAuthServer(t)

	rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Duplicate Error")
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	e, _ := newAuthServer(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{}`, "Email and password are required"},
		{"malformed email", `{"email":"not-an-email","password":"secret1"}`, "valid email"},
		{"password too short", `{"email":"a@x.com","password":"abc"}`, "between 6 and 100"},
		{"password too long", `{"email":"a@x.com","password":"` + strings.Repeat("p", 101) + `"}`, "between 6 and 100"},
		{"password over bcrypt limit", `{"email":"b@x.com","password":"` + strings.Repeat("p", 80) + `"}`, "72 bytes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(e, "/api/auth/register", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "Validation Error")
			require.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	e, _ := newAuthServer(t)

	rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(e, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	uid, err := utils.ParseUserID(testSecret, resp.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(1), uid)
}

// A wrong password and an unknown email must be indistinguishable to the
// client, byte for byte.
func TestLogin_GenericFailure(t *testing.T) {
	t.Parallel()
	e, _ := newAuthServer(t)

	rec := postJSON(e, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPass := postJSON(e, "/api/auth/login", `{"email":"a@x.com","password":"wrong-pass"}`)
	unknownEmail := postJSON(e, "/api/auth/login", `{"email":"nobody@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
	require.Contains(t, wrongPass.Body.String(), "Invalid email or password")
}
