package controllers

import (
	"handicraft-server/models"

	"github.com/gin-gonic/gin"
)

// respondError writes the error envelope. Server-side causes are attached to
// the context for the request logger and kept out of the body.
func respondError(c *gin.Context, status int, message string, err error) {
	body := models.ErrorResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		_ = c.Error(err)
		if status < 500 {
			body.Error = err.Error()
		}
	}
	c.JSON(status, body)
}
