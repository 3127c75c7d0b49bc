package main

import (
	"context"
	"log"
	"time"

	"trainerhub-app/config"
	"trainerhub-app/database"
	routes "trainerhub-app/internal/app/http"
	"trainerhub-app/internal/editor"
	"trainerhub-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	var docstore editor.Store
	switch config.DOCUMENT_STORE {
	case "file":
		docstore = store.NewFileStore(config.DOCUMENT_FILE)
	default:
		database.InitDB()
		docstore = store.NewGormStore(database.DB)
	}

	session := editor.Open(context.Background(), docstore, func(message string, kind editor.NotifyKind) {
		log.Printf("[%s] %s", kind, message)
	})

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, session)

	r.Run(":" + config.PORT)
}
