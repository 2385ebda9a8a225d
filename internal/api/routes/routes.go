package routes

import (
	"machinery-rental-admin-api/config"
	"machinery-rental-admin-api/internal/api/handlers"
	"machinery-rental-admin-api/internal/api/middleware"
	"machinery-rental-admin-api/internal/chat"
	"machinery-rental-admin-api/internal/notify"
	"machinery-rental-admin-api/internal/s3"
	"machinery-rental-admin-api/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers to their routes. Everything except login and
// the WebSocket endpoint requires an authenticated admin.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
	bookkeeper *notify.Bookkeeper,
	notifier *notify.Notifier,
	watcher *notify.Watcher,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	assembler := &chat.Assembler{DB: db, Bookkeeper: bookkeeper}

	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg, Notifier: notifier}
	listingHandler := &handlers.ListingHandler{DB: db, Notifier: notifier}
	rentRequestHandler := &handlers.RentRequestHandler{DB: db, Notifier: notifier}
	dashboardHandler := &handlers.DashboardHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	chatHandler := &handlers.ChatHandler{DB: db, Assembler: assembler, Bookkeeper: bookkeeper, Notifier: notifier}
	notificationHandler := &handlers.NotificationHandler{DB: db, Bookkeeper: bookkeeper}
	uploadHandler := &handlers.UploadHandler{Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, Watcher: watcher}

	apiV1 := router.Group("/api/v1")
	{
		// WebSocket carries its own token; no middleware here.
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// App-facing chat write: any authenticated user, no admin role.
		userChats := apiV1.Group("/chats")
		userChats.Use(middleware.Authenticate())
		{
			userChats.POST("/:chatId/messages", chatHandler.SendUserMessage)
		}

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize("admin"))
		{
			admin.GET("/dashboard/stats", dashboardHandler.GetStats)

			listings := admin.Group("/listings")
			{
				listings.GET("/", listingHandler.GetAllListings)
				listings.GET("/:id", listingHandler.GetListingByID)
				listings.POST("/:id/approve", listingHandler.ApproveListing)
				listings.POST("/:id/reject", listingHandler.RejectListing)
				listings.PUT("/:id/price", listingHandler.UpdatePrice)
				listings.DELETE("/:id", listingHandler.DeleteListing)
			}

			rentRequests := admin.Group("/rent-requests")
			{
				rentRequests.GET("/", rentRequestHandler.GetAllRentRequests)
				rentRequests.GET("/stats", rentRequestHandler.GetRentRequestStats)
				rentRequests.POST("/:id/approve", rentRequestHandler.ApproveRentRequest)
				rentRequests.POST("/:id/reject", rentRequestHandler.RejectRentRequest)
				rentRequests.POST("/:id/seen", rentRequestHandler.MarkSeen)
			}

			users := admin.Group("/users")
			{
				users.GET("/", userHandler.GetAllUsers)
				users.GET("/publishers", userHandler.GetAdPublishers)
				users.POST("/:id/block", userHandler.BlockUser)
				users.POST("/:id/unblock", userHandler.UnblockUser)
				users.POST("/:id/verify", userHandler.VerifyUser)
				users.POST("/:id/chat", userHandler.StartChat)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("/", categoryHandler.GetAllCategories)
				categories.POST("/", categoryHandler.CreateCategory)
				categories.PUT("/reorder", categoryHandler.ReorderCategories)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			chats := admin.Group("/chats")
			{
				chats.GET("/", chatHandler.GetConversations)
				chats.GET("/:chatId/messages", chatHandler.GetMessages)
				chats.GET("/:chatId/unread-count", chatHandler.GetUnreadCount)
				chats.POST("/:chatId/messages", chatHandler.SendMessage)
			}

			notifications := admin.Group("/notifications")
			{
				notifications.GET("/", notificationHandler.GetAllNotifications)
				notifications.GET("/unread-counts", notificationHandler.GetUnreadCounts)
				notifications.POST("/read-all", notificationHandler.MarkAllRead)
				notifications.POST("/:id/read", notificationHandler.MarkRead)
				notifications.DELETE("/:id", notificationHandler.DeleteNotification)
			}

			admin.POST("/uploads", uploadHandler.UploadFile)
		}
	}

	return router
}
