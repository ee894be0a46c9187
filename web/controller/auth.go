// Package controller provides the HTTP handlers of the sweet-shop API:
// authentication, catalog, purchasing, reporting, and reset.
package controller

import (
	"net/http"

	"sweet-shop/web/entity"
	"sweet-shop/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration and login.
type AuthController struct {
	userService service.UserService
}

// NewAuthController creates an AuthController and sets up its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register creates a non-admin account.
func (a *AuthController) register(c *gin.Context) {
	var form credentials
	if err := c.ShouldBindJSON(&form); err != nil || form.Email == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := a.userService.Register(form.Email, form.Password)
	if err == service.ErrUserExists {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, entity.AuthResponse{
		Success: true,
		Msg:     "Registration successful!",
		User: entity.UserInfo{
			Id:      user.Id,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}

// login checks credentials and returns the account's public view.
func (a *AuthController) login(c *gin.Context) {
	var form credentials
	if err := c.ShouldBindJSON(&form); err != nil || form.Email == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		jsonError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	c.JSON(http.StatusOK, entity.AuthResponse{
		Success: true,
		Msg:     "Login successful!",
		User: entity.UserInfo{
			Id:      user.Id,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}
