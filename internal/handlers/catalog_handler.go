package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/adventureawaits/api/internal/helpers"
	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/services"
)

// parseListFilter reads the shared catalog query parameters. Bad
// numeric values fall back to defaults rather than erroring.
func parseListFilter(c *gin.Context) models.ListFilter {
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	return models.ListFilter{
		City:       helpers.StringTrim(c.Query("city")),
		State:      helpers.StringTrim(c.Query("state")),
		Category:   helpers.StringTrim(c.Query("category")),
		Cuisine:    helpers.StringTrim(c.Query("cuisine")),
		PriceRange: helpers.StringTrim(c.Query("price_range")),
		MinRating:  minRating,
		Sort:       c.Query("sort"),
		Page:       page,
		Limit:      limit,
	}
}

func ListHotels(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseListFilter(c)
		hotels, total, err := s.ListHotels(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(hotels, filter.Page, filter.Limit, total))
	}
}

func ListRestaurants(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseListFilter(c)
		restaurants, total, err := s.ListRestaurants(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(restaurants, filter.Page, filter.Limit, total))
	}
}

func ListAttractions(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := parseListFilter(c)
		attractions, total, err := s.ListAttractions(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(attractions, filter.Page, filter.Limit, total))
	}
}

func GetHotel(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotel, err := s.GetHotel(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(hotel, ""))
	}
}

func GetRestaurant(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, err := s.GetRestaurant(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(restaurant, ""))
	}
}

func GetAttraction(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attraction, err := s.GetAttraction(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(attraction, ""))
	}
}

func CreateHotel(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var hotel models.Hotel
		if err := c.ShouldBindJSON(&hotel); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		created, err := s.CreateHotel(c.Request.Context(), claims.GetSafeRole(), &hotel)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "hotel created"))
	}
}

func CreateRestaurant(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var restaurant models.Restaurant
		if err := c.ShouldBindJSON(&restaurant); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		created, err := s.CreateRestaurant(c.Request.Context(), claims.GetSafeRole(), &restaurant)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "restaurant created"))
	}
}

func CreateAttraction(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var attraction models.Attraction
		if err := c.ShouldBindJSON(&attraction); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		created, err := s.CreateAttraction(c.Request.Context(), claims.GetSafeRole(), &attraction)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "attraction created"))
	}
}

// UpdateCatalogItem and DeleteCatalogItem serve all three kinds; the
// kind is fixed at route registration.
func UpdateCatalogItem(s *services.CatalogService, kind models.BookingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var set bson.M
		if err := c.ShouldBindJSON(&set); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		if err := s.Update(c.Request.Context(), claims.GetSafeRole(), kind, id, set); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, string(kind)+" updated"))
	}
}

func DeleteCatalogItem(s *services.CatalogService, kind models.BookingType) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		if err := s.Delete(c.Request.Context(), claims.GetSafeRole(), kind, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, string(kind)+" deleted"))
	}
}
