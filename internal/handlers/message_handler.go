package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
)

func ListMessages(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		msgs, err := messages.List(c.Request.Context(), user, c.Param("request_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

func SendMessage(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.MessageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		msg, err := messages.Send(c.Request.Context(), user, c.Param("request_id"), in.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}
