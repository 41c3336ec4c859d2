package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripweaver/pkg/utils"
)

// callerIdFromContext reads the user id the JWT middleware attached. The
// claim is stored as a string; ok is false when the request is anonymous.
func callerIdFromContext(c *gin.Context) (uint, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func idFromParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
