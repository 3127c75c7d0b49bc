package routes

import (
	"trainerhub-app/internal/api/assistant"
	authapi "trainerhub-app/internal/api/auth"
	"trainerhub-app/internal/api/billing"
	"trainerhub-app/internal/api/contact"
	mediaapi "trainerhub-app/internal/api/media"
	siteapi "trainerhub-app/internal/api/site"
	"trainerhub-app/internal/app/http/middleware"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, session *editor.Session) {
	siteapi.Init(session)
	contact.Init(session)
	assistant.Init(session)
	billing.Init(session)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public site: always the published document, never the working copy
	r.GET("/site", siteapi.GetPublicSite)

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/login", authapi.Login)
	public.POST("/contact", contact.Submit)
	public.POST("/assistant/chat", assistant.Chat)
	public.POST("/checkout", billing.CreateCheckoutSession)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Admin editing session
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/document", siteapi.GetWorkingDocument)
	admin.PUT("/document", siteapi.PutWorkingDocument)
	admin.POST("/document/save", siteapi.SaveDocument)
	admin.POST("/document/discard", siteapi.DiscardDocument)
	admin.POST("/media", mediaapi.UploadImage)
}
