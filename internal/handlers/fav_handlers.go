package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adventureawaits/api/internal/helpers"
	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/services"
)

func AddFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		kind := models.BookingType(c.Param("type"))
		itemID := helpers.StringTrim(c.Param("id"))

		favorites, err := f.Add(c.Request.Context(), claims.UserID, kind, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favorites, "added to favorites"))
	}
}

func RemoveFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		kind := models.BookingType(c.Param("type"))
		itemID := helpers.StringTrim(c.Param("id"))

		favorites, err := f.Remove(c.Request.Context(), claims.UserID, kind, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favorites, "removed from favorites"))
	}
}

// CheckFavorite reports whether a single item is saved.
func CheckFavorite(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		kind := models.BookingType(c.Param("type"))
		itemID := helpers.StringTrim(c.Param("id"))

		saved, err := f.Contains(c.Request.Context(), claims.UserID, kind, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"saved": saved}, ""))
	}
}

func ListFavorites(f *services.FavoriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		favorites, err := f.List(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favorites, ""))
	}
}
