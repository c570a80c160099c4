package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/feed"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/middleware"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/post"
)

// HandleHomeFeed returns the posts matching the caller's preferences.
func HandleHomeFeed(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		views, err := service.Feed(middleware.Account(ctx))
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, views)
	}
}

// HandleMyPosts returns the caller's own posts.
func HandleMyPosts(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		views, err := service.MyPosts(middleware.Account(ctx))
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, views)
	}
}

// HandleStaticData lists the region and tag enumerations for pickers.
func HandleStaticData() func(*gin.Context) {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"regions": post.Regions,
			"tags":    post.Tags,
		})
	}
}

// HandleSweep runs the orphan sweep and reports what it discarded.
func HandleSweep(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		report, err := service.SweepOrphans()
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true, "report": report})
	}
}

// HandleDebug dumps the whole persisted state as YAML for operators.
func HandleDebug(service *feed.Service) func(*gin.Context) {
	return func(ctx *gin.Context) {
		snapshot, err := service.Snapshot()
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		out, err := yaml.Marshal(snapshot)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	}
}
