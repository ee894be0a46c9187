package controller

import (
	"crypto/subtle"
	"net/http"

	"sweet-shop/config"
	"sweet-shop/web/service"

	"github.com/gin-gonic/gin"
)

// ResetController handles the destructive database reset. The endpoint is
// gated by a shared secret only; it exists for demos and testing and must
// not be exposed on a hardened deployment.
type ResetController struct {
	resetService service.ResetService
}

// NewResetController creates a ResetController and sets up its routes.
func NewResetController(g *gin.RouterGroup) *ResetController {
	a := &ResetController{}
	a.initRouter(g)
	return a
}

func (a *ResetController) initRouter(g *gin.RouterGroup) {
	g.POST("/reset-database", a.reset)
}

// reset clears and re-seeds the store when the secret matches.
func (a *ResetController) reset(c *gin.Context) {
	secret := c.Query("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(config.GetResetSecret())) != 1 {
		pureError(c, http.StatusForbidden, "Unauthorized")
		return
	}

	if err := a.resetService.Reset(); err != nil {
		jsonError(c, http.StatusInternalServerError, "Reset failed")
		return
	}
	jsonMsg(c, "Database reset successfully")
}
