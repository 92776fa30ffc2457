package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
)

// Upload accepts a multipart "file" field and forwards it to the media CDN.
func Upload(uploads *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("failed to read file"))
			return
		}
		defer file.Close()

		result, err := uploads.Upload(c.Request.Context(), user, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("upload failed"))
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func Seed(seeder *services.SeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := seeder.Seed(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(result, "Seed data created successfully"))
	}
}
