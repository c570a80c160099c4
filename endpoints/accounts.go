package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/feed"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/middleware"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleRegister creates an account with the default preferences.
func HandleRegister(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var creds credentials
		if err := ctx.ShouldBindJSON(&creds); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Username and password are required.",
			})
			return
		}
		id, err := service.Register(creds.Username, creds.Password)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User registered successfully.",
			"user":    gin.H{"user_id": id, "username": creds.Username},
		})
	}
}

// HandleLogin checks credentials on behalf of the session layer, which
// owns the actual session once the check passes.
func HandleLogin(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var creds credentials
		if err := ctx.ShouldBindJSON(&creds); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Username and password are required.",
			})
			return
		}
		id, err := service.Authenticate(creds.Username, creds.Password)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials.",
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful.",
			"user":    gin.H{"user_id": id, "username": creds.Username},
		})
	}
}

// HandleProfile returns the account's region and tag preferences.
func HandleProfile(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		profile, err := service.Profile(middleware.Account(ctx))
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, profile)
	}
}

type profileUpdate struct {
	Region *post.Region `json:"region"`
	Tags   []post.Tag   `json:"tags"`
}

// HandleProfileUpdate replaces the account's preferences.
func HandleProfileUpdate(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var update profileUpdate
		if err := ctx.ShouldBindJSON(&update); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Request body must be JSON.",
			})
			return
		}
		err := service.UpdateProfile(middleware.Account(ctx), update.Region, update.Tags)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile updated successfully.",
		})
	}
}
