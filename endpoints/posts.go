package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/feed"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/middleware"
)

// HandleCreatePost persists a post from already-stored uploads. Region
// may be omitted when the images carry GPS metadata or manual coordinates
// are supplied.
func HandleCreatePost(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var req feed.CreatePostRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Request body must be JSON.",
			})
			return
		}
		created, err := service.CreatePost(middleware.Account(ctx), req)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Post created successfully.",
			"post":    created,
		})
	}
}

// HandleDeletePost cascades the post and its dependents away.
func HandleDeletePost(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		if err := service.DeletePost(ctx.Param("id"), middleware.Account(ctx)); err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Post deleted successfully.",
		})
	}
}

// HandleToggleLike flips the caller's like on a post.
func HandleToggleLike(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		liked, count, err := service.ToggleLike(ctx.Param("id"), middleware.Account(ctx))
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success":    true,
			"liked":      liked,
			"like_count": count,
		})
	}
}

type commentBody struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// HandleAddComment attaches a comment to a post.
func HandleAddComment(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var body commentBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Comment text is required",
			})
			return
		}
		comment, err := service.AddComment(ctx.Param("id"), middleware.Account(ctx), body.CommentText)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Comment added successfully",
			"comment": comment,
		})
	}
}

// HandleDeleteComment removes one comment, owner-only.
func HandleDeleteComment(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		if err := service.DeleteComment(ctx.Param("id"), middleware.Account(ctx)); err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Comment deleted successfully",
		})
	}
}
