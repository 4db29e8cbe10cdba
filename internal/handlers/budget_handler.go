package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adventureawaits/api/internal/helpers"
	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/services"
)

func CreateBudget(b *services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		created, err := b.Create(c.Request.Context(), claims.UserID, &budget)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "budget created"))
	}
}

func GetBudget(b *services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		budget, err := b.Get(c.Request.Context(), id, claims.UserID, claims.GetSafeRole())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(budget, ""))
	}
}

func ListBudgets(b *services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		budgets, err := b.List(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(budgets, len(budgets)))
	}
}

func UpdateBudget(b *services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		updated, err := b.Update(c.Request.Context(), id, claims.UserID, claims.GetSafeRole(), &budget)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "budget updated"))
	}
}

func DeleteBudget(b *services.BudgetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		if err := b.Delete(c.Request.Context(), id, claims.UserID, claims.GetSafeRole()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "budget deleted"))
	}
}
