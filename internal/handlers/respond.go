package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success, message?, data?, count?}.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondData(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondList(c *gin.Context, data gin.H, count int) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
		"count":   count,
	})
}

// paramID parses a numeric path parameter; a zero return means the response
// has already been written.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondError(c, 400, "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
