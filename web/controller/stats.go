package controller

import (
	"net/http"
	"strconv"
	"time"

	"sweet-shop/config"
	"sweet-shop/web/middleware"
	"sweet-shop/web/service"

	"github.com/gin-gonic/gin"
)

// StatsController handles reporting: store aggregates, purchase history,
// and the liveness endpoint.
type StatsController struct {
	statsService    service.StatsService
	purchaseService service.PurchaseService
}

// NewStatsController creates a StatsController and sets up its routes.
func NewStatsController(g *gin.RouterGroup) *StatsController {
	a := &StatsController{}
	a.initRouter(g)
	return a
}

func (a *StatsController) initRouter(g *gin.RouterGroup) {
	g.GET("/stats", a.getStats)
	g.GET("/purchases/user/:user_id", a.getUserPurchases)
	g.GET("/test", a.test)
}

// getStats reports row counts and total inventory value.
func (a *StatsController) getStats(c *gin.Context) {
	stats, err := a.statsService.GetStats()
	if err != nil {
		pureError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getUserPurchases returns a user's recent purchases with a summary.
func (a *StatsController) getUserPurchases(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		pureError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	history, err := a.purchaseService.GetUserPurchases(userId)
	if err != nil {
		pureError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, history)
}

// test is a liveness check reporting version, time, store path, and the
// request counter.
func (a *StatsController) test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Backend is working!",
		"version":        config.GetVersion(),
		"time":           time.Now().Format(time.RFC3339),
		"database":       config.GetDBPath(),
		"requestsServed": middleware.RequestsServed(),
	})
}
