package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
)

func CreateRequest(requests *services.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.CollaborationRequestInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		view, err := requests.Create(c.Request.Context(), user, &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

func GetRequest(requests *services.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		view, err := requests.Get(c.Request.Context(), user, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func ListSentRequests(requests *services.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		views, err := requests.ListSent(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func ListReceivedRequests(requests *services.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		views, err := requests.ListReceived(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateRequestStatus reads the target status from the query string, falling
// back to the request body.
func UpdateRequestStatus(requests *services.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		status := c.Query("status")
		if status == "" {
			var body statusUpdateRequest
			if err := c.ShouldBindJSON(&body); err == nil {
				status = body.Status
			}
		}
		if status == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("status is required"))
			return
		}

		err := requests.Transition(c.Request.Context(), user, c.Param("id"), models.RequestStatus(status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request " + status + " successfully"})
	}
}
