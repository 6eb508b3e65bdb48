package routes

import (
	"log"
	"os"
	"time"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/controllers"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/middlewares"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if origin := os.Getenv("CONSOLE_ORIGIN"); origin != "" {
		corsCfg.AllowOrigins = []string{origin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	// shared services
	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitNoticeDeps(config.DB, hub, push)

	diaryCtl := controllers.NewDiaryController(
		services.NewDiaryService(services.NewPlatformAPIService()))
	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(config.DB))
	templateCtl := controllers.NewMenuTemplateController(services.NewMenuTemplateService(config.DB))
	moderationCtl := controllers.NewModerationController(services.NewModerationService(config.DB, hub))
	messageCtl := controllers.NewMessageController(services.NewMessageService(config.DB))
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		subs := api.Group("/subscribers")
		{
			subs.GET("", controllers.ListSubscribers)
			subs.GET("/:id", controllers.GetSubscriber)
			subs.PUT("/:id", controllers.UpdateSubscriber)
			subs.POST("/:id/disable", controllers.SetSubscriberDisabled)
			subs.GET("/:id/goals", controllers.GetGoals)
			subs.PUT("/:id/goals", controllers.UpdateGoals)

			subs.GET("/:id/diary", diaryCtl.DayReport)
			subs.GET("/:id/diary/summary", diaryCtl.DaySummary)

			subs.GET("/:id/messages", messageCtl.ListForSubscriber)
			subs.POST("/:id/messages", messageCtl.Send)

			subs.POST("/:id/devices", deviceCtl.Register)
			subs.POST("/:id/devices/toggle", deviceCtl.Toggle)
			subs.POST("/:id/push", deviceCtl.DirectPush)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", recipeCtl.List)
			recipes.POST("", recipeCtl.Create)
			recipes.GET("/:id", recipeCtl.Get)
			recipes.PUT("/:id", recipeCtl.Update)
			recipes.DELETE("/:id", recipeCtl.Delete)
			recipes.POST("/:id/image", recipeCtl.UploadImage)
		}

		templates := api.Group("/menu-templates")
		{
			templates.GET("", templateCtl.List)
			templates.POST("", templateCtl.Create)
			templates.GET("/:id", templateCtl.Get)
			templates.PUT("/:id", templateCtl.Update)
			templates.POST("/:id/publish", templateCtl.SetPublished)
			templates.DELETE("/:id", templateCtl.Delete)
		}

		moderation := api.Group("/moderation/items")
		{
			moderation.GET("", moderationCtl.List)
			moderation.POST("", moderationCtl.Submit)
			moderation.GET("/:id", moderationCtl.Get)
			moderation.POST("/:id/approve", moderationCtl.Approve)
			moderation.POST("/:id/reject", moderationCtl.Reject)
		}

		api.POST("/messages/:publicId/read", messageCtl.MarkRead)
		api.GET("/ws/events", realtimeCtl.EventsWS)
	}

	return r
}
