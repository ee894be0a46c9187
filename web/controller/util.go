package controller

import (
	"net/http"

	"sweet-shop/logger"
	"sweet-shop/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// jsonMsg sends a success envelope with a message.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.Msg{
		Success: true,
		Msg:     msg,
	})
}

// jsonError sends a failure envelope with the given status code.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: false,
		Error:   msg,
	})
}

// pureError sends a bare {"error": ...} object; some legacy endpoints
// respond without the success flag and the client depends on that.
func pureError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"error": msg})
}

// renderJSON encodes obj with goccy/go-json and writes it directly; used on
// the catalog listing paths where encoding dominates the handler.
func renderJSON(c *gin.Context, statusCode int, obj any) {
	data, err := json.Marshal(obj)
	if err != nil {
		logger.Error("render json err:", err)
		pureError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.Data(statusCode, "application/json; charset=utf-8", data)
}
