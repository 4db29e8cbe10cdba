package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adventureawaits/api/internal/config"
	"github.com/adventureawaits/api/internal/helpers"
	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/services"
)

func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		user, err := u.Register(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(user, "account created"))
	}
}

// Login sets the access token as an http-only cookie and also returns
// it in the body for clients that prefer the Authorization header.
func Login(cfg *config.Config, u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload: "+err.Error()))
			return
		}

		user, token, err := u.Login(c.Request.Context(), input)
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
				return
			}
			respondError(c, err)
			return
		}

		c.SetCookie(
			"access_token",
			token,
			int(helpers.AccessTokenTTL.Seconds()),
			"/",
			"",
			cfg.IsProduction(),
			true,
		)

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "login successful"))
	}
}

func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", cfg.IsProduction(), true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "logged out"))
	}
}

// Me returns the authenticated user's profile.
func Me(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		user, err := u.GetProfile(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}
