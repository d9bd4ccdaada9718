package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/server/http/dto"
	"github.com/quickfuel/fuelquote/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormPage{Form: "login", Error: middleware.TakeFlash(c)})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, hasProfile, err := h.facade.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			middleware.SetFlash(c, "Invalid username or password")
			c.Redirect(http.StatusSeeOther, "/login")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetSessionCookie(c, token)
	if !hasProfile {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormPage{Form: "register", Error: middleware.TakeFlash(c)})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.Register(c.Request.Context(), form.Username, form.Password, form.PasswordConfirm)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPasswordMismatch):
			middleware.SetFlash(c, "Passwords do not match")
			c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			middleware.SetFlash(c, "Username already exists")
			c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			middleware.SetFlash(c, "Username and password are required")
			c.Redirect(http.StatusSeeOther, "/register")
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout handles GET and POST /logout. Clearing an absent session is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
