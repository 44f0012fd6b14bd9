package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities

	"github.com/go-playground/validator/v10" // email shape validation
	"github.com/labstack/echo/v4"            // Echo framework for HTTP routing

	"github.com/iliyamo/license-activation/internal/config"     // app configuration
	"github.com/iliyamo/license-activation/internal/repository" // in-memory stores
	"github.com/iliyamo/license-activation/internal/utils"      // helper functions (hashing, token issuing)
)

// validate carries only the email rule; the other registration checks are
// written out explicitly so their failure messages stay ordered (missing
// fields, then malformed email, then weak password).
var validate = validator.New()

const minPasswordLen = 8

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserStore
}

func NewAuthHandler(cfg config.Config, users *repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register: validate input, create the user. No token comes back; the user
// logs in separately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email address."})
	}
	if len(req.Password) < minPasswordLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Password must be at least 8 characters."})
	}

	if _, err := h.Users.Create(req.Email, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Email already exists."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Registration failed."})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User registered successfully."})
}

// Login: verify credentials and return a fresh session token. The
// unknown-email and wrong-password branches produce the identical response
// so callers cannot probe which emails are registered.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required."})
	}

	u, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials."})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials."})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.TokenTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Login failed."})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful.", "token": tok.Token})
}
