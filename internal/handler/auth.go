package handler

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/rock-catalog/internal/config"
	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/repository"
	"github.com/iliyamo/rock-catalog/internal/utils"
)

// AuthHandler bundles dependencies for the register/login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserStore
}

func NewAuthHandler(cfg config.Config, users repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

const passwordMinLen, passwordMaxLen = 6, 100

// Register creates a user and returns a signed token embedding its ID.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Validation Error", "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if details := validateCredentials(req.Email, req.Password); len(details) > 0 {
		return httperr.Validation("Validation Error", details)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return httperr.Conflict("A record with this information already exists")
		}
		// bcrypt caps input at 72 bytes, below our documented maximum.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return httperr.Validation("Validation Error", []string{"Password must be at most 72 bytes"})
		}
		return httperr.Internal(err)
	}

	token, err := utils.NewToken(h.Cfg.JWTSecret, uid)
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(http.StatusCreated, tokenResp{Token: token})
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same response so accounts cannot be enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Validation Error", "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return httperr.Auth("Invalid email or password")
		}
		return httperr.Internal(err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return httperr.Auth("Invalid email or password")
	}

	token, err := utils.NewToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(http.StatusOK, tokenResp{Token: token})
}

// validateCredentials returns one message per violated rule, empty when the
// pair is acceptable.
func validateCredentials(email, password string) []string {
	var details []string
	if email == "" || password == "" {
		return append(details, "Email and password are required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		details = append(details, "Email must be a valid email address")
	}
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		details = append(details, "Password must be between 6 and 100 characters")
	}
	return details
}
