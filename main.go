package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/endpoints"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/feed"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/gps"
	"github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/middleware"
	storepkg "github.com/2025AIT-HISHIDA-GroupA/LocalGrammer-v1.0/store"
)

func main() {

	viper.AddConfigPath(".")
	viper.SetConfigName("localgrammer")
	viper.SetConfigType("toml")
	viper.SetDefault("store.path", "data")
	viper.SetDefault("store.uploads_dir", "static/uploads")
	viper.SetDefault("server.listen", ":5002")
	viper.SetDefault("server.max_upload_size", "16MB")
	viper.SetDefault("log.level", "info")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Defaults cover a config-less start.
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	config, err := loadConfig(viper.GetViper())
	if err != nil {
		log.Fatalf("error loading config: %s", err)
	}
	level, err := log.ParseLevel(config.Log.Level)
	if err != nil {
		log.Fatalf("error loading config: %s", err)
	}
	log.SetLevel(level)

	store := &storepkg.DataStore{
		Path:       config.Store.Path,
		UploadsDir: config.Store.UploadsDir,
	}
	if err = store.Init(); err != nil {
		log.Fatalf("error loading store: %s", err)
	}

	persistence := storepkg.NewPersistence(store, nil)
	if err = persistence.Ensure(); err != nil {
		log.Fatalf("error loading persistence: %s", err)
	}

	service := feed.NewService(persistence, store, gps.NewExtractor(store.Fs))

	r := gin.Default()
	r.MaxMultipartMemory = config.Server.MaxUploadBytes

	api := r.Group("/api")
	api.POST("/register", endpoints.HandleRegister(service))
	api.POST("/login", endpoints.HandleLogin(service))
	api.GET("/static_data", endpoints.HandleStaticData())

	authed := api.Group("")
	authed.Use(middleware.AccountID())
	authed.GET("/profile", endpoints.HandleProfile(service))
	authed.POST("/profile", endpoints.HandleProfileUpdate(service))
	authed.GET("/home_feed", endpoints.HandleHomeFeed(service))
	authed.GET("/my_posts", endpoints.HandleMyPosts(service))
	authed.POST("/posts", endpoints.HandleCreatePost(service))
	authed.DELETE("/posts/:id", endpoints.HandleDeletePost(service))
	authed.POST("/posts/:id/like", endpoints.HandleToggleLike(service))
	authed.POST("/posts/:id/comments", endpoints.HandleAddComment(service))
	authed.DELETE("/comments/:id", endpoints.HandleDeleteComment(service))
	authed.POST("/maintenance/sweep", endpoints.HandleSweep(service))
	authed.GET("/debug", endpoints.HandleDebug(service))

	http.ListenAndServe(config.Server.Listen, r)
}
