package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/models"
	"github.com/joshua-takyi/orange/internal/services"
)

func UpsertCreatorProfile(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.CreatorProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		profile, err := profiles.UpsertCreatorProfile(c.Request.Context(), user, &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func GetMyCreatorProfile(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		profile, err := profiles.GetMyCreatorProfile(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func UpsertBusinessProfile(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var in models.BusinessProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		profile, err := profiles.UpsertBusinessProfile(c.Request.Context(), user, &in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func GetMyBusinessProfile(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		profile, err := profiles.GetMyBusinessProfile(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// ListCreators is the public marketplace browse with optional filters.
func ListCreators(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.CreatorFilter{
			Niche:    c.Query("niche"),
			Location: c.Query("location"),
		}

		if v := c.Query("minFollowers"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid minFollowers parameter"))
				return
			}
			filter.MinFollowers = &n
		}
		if v := c.Query("maxFollowers"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid maxFollowers parameter"))
				return
			}
			filter.MaxFollowers = &n
		}
		if v := c.Query("openToBarter"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid openToBarter parameter"))
				return
			}
			filter.OpenToBarter = &b
		}
		if v := c.DefaultQuery("skip", "0"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid skip parameter"))
				return
			}
			filter.Skip = n
		}
		if v := c.DefaultQuery("limit", "50"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
				return
			}
			filter.Limit = n
		}

		creators, err := profiles.ListCreators(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, creators)
	}
}

func GetCreatorByID(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		creator, err := profiles.GetCreatorByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, creator)
	}
}

func GetBusinessByID(profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business, err := profiles.GetBusinessByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, business)
	}
}
