package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/license-activation/internal/middleware"
	"github.com/iliyamo/license-activation/internal/repository"
)

// ActivationHandler serves key redemption and entitlement status for
// authenticated users.
type ActivationHandler struct {
	Keys *repository.KeyStore
}

func NewActivationHandler(keys *repository.KeyStore) *ActivationHandler {
	return &ActivationHandler{Keys: keys}
}

type activateReq struct {
	Key string `json:"key"`
}

// Activate redeems a serial key for the caller. The store enforces the
// check order: a live entitlement blocks redemption before the submitted
// key is looked up, then unknown beats used.
func (h *ActivationHandler) Activate(c echo.Context) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required."})
	}

	var req activateReq
	if err := c.Bind(&req); err != nil || req.Key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Serial key is required."})
	}

	exp, err := h.Keys.Redeem(ident.UserID, req.Key)
	switch err {
	case nil:
	case repository.ErrAlreadyActive:
		return c.JSON(http.StatusConflict, echo.Map{"message": "You already have an active key."})
	case repository.ErrKeyNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Invalid serial key."})
	case repository.ErrKeyUsed:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "This key has already been used."})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Activation failed."})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": fmt.Sprintf("Key activated! Expires at %s", exp.Format(time.RFC1123)),
	})
}

// Status reports the caller's entitlement state, recomputed from the
// registry on every call. Read-only: expired keys are skipped, never
// cleared. The expires field is Unix milliseconds, matching what the
// dashboard expects.
func (h *ActivationHandler) Status(c echo.Context) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required."})
	}

	resp := echo.Map{
		"isLoggedIn":  true,
		"isActivated": false,
		"email":       ident.Email,
	}
	if k, ok := h.Keys.ActiveKeyFor(ident.UserID); ok {
		resp["isActivated"] = true
		resp["expires"] = k.ExpiresAt.UnixMilli()
	}
	return c.JSON(http.StatusOK, resp)
}
