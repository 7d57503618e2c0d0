package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AuthSecret   string
	AllowOrigins []string
}

func SetupRouter(cfg RouterConfig, events *EventController, users *UserController, chat *ChatController) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "capacitor://localhost"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.POST("/register", users.Register)
	// GET is kept for the historical client contract; both carry the
	// same JSON credentials body.
	api.POST("/login", users.Login)
	api.GET("/login", users.Login)

	public := api.Group("")
	public.Use(OptionalAuthMiddleware(cfg.AuthSecret))
	{
		public.GET("/events/browse", events.Browse)
		public.GET("/events/filters", events.FilterOptions)
		public.GET("/events/:eventID", events.GetEvent)
	}

	private := api.Group("")
	private.Use(AuthMiddleware(cfg.AuthSecret))
	{
		private.GET("/auth/user", users.CurrentUser)
		private.PATCH("/auth/user", users.UpdateProfile)
		private.POST("/generate-avatar", users.GenerateAvatar)
		private.POST("/update-avatar", users.UpdateAvatar)
		private.GET("/users/:userID", users.GetUser)

		private.POST("/events", events.CreateEvent)
		private.GET("/events/mine", events.MyEvents)
		private.PATCH("/events/:eventID", events.UpdateEvent)
		private.DELETE("/events/:eventID", events.DeactivateEvent)

		private.POST("/events/:eventID/rsvp", events.SetRSVP)
		private.GET("/events/:eventID/rsvps", events.ListRSVPs)

		private.GET("/events/:eventID/messages", chat.ListMessages)
		private.POST("/events/:eventID/messages", chat.PostMessage)
		private.GET("/events/:eventID/chat/ws", chat.Stream)
	}

	return router
}
