package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/audit"
	"github.com/abhishek-0203/neural-thread-couture/internal/cache"
	"github.com/abhishek-0203/neural-thread-couture/internal/config"
	"github.com/abhishek-0203/neural-thread-couture/internal/geo"
	"github.com/abhishek-0203/neural-thread-couture/internal/handlers"
	infraRepo "github.com/abhishek-0203/neural-thread-couture/internal/infra/repository"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/realtime"
	"github.com/abhishek-0203/neural-thread-couture/internal/storage"
	"github.com/abhishek-0203/neural-thread-couture/internal/stylist"
	ucBooking "github.com/abhishek-0203/neural-thread-couture/internal/usecase/booking"
	ucChat "github.com/abhishek-0203/neural-thread-couture/internal/usecase/chat"
	ucReview "github.com/abhishek-0203/neural-thread-couture/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	chatRepo := infraRepo.NewChatGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	hub := realtime.NewHub()
	chatNotifier := realtime.NewChatNotifier(hub)

	nearbyCache := cache.New(cfg.RedisAddr)
	search := geo.NewSearch(db)

	uploader := storage.NewUploader(cfg)
	stylistClient := stylist.NewClient(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)

	findOrCreateConversationUC := ucChat.NewFindOrCreateConversation(chatRepo, chatNotifier)
	sendMessageUC := ucChat.NewSendMessage(chatRepo, chatNotifier)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	reviewHandler := handlers.NewReviewHandler(db, createReviewUC)
	nearbyHandler := handlers.NewNearbyHandler(search, nearbyCache)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
	)

	conversationHandler := handlers.NewConversationHandler(
		db,
		chatRepo,
		findOrCreateConversationUC,
		sendMessageUC,
	)

	wsHandler := handlers.NewWSHandler(hub, cfg)
	stylistHandler := handlers.NewStylistHandler(db, stylistClient)
	stylistWSHandler := handlers.NewStylistWSHandler(db, stylistClient, cfg)
	uploadHandler := handlers.NewUploadHandler(uploader)
	activityHandler := handlers.NewActivityHandler(db)

	// ======================================================
	// WEBSOCKETS (token via query param)
	// ======================================================
	r.GET("/ws", wsHandler.Handle)
	r.GET("/ws/stylist", stylistWSHandler.Handle)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/profiles", profileHandler.List)
		api.GET("/profiles/:id", profileHandler.Get)
		api.GET("/users/:id/reviews", reviewHandler.ListForUser)
		api.GET("/providers/nearby", nearbyHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateMe)
			secured.GET("/me/activity", activityHandler.List)

			// ------------------------------
			// CONVERSATIONS
			// ------------------------------
			secured.GET("/conversations", conversationHandler.List)
			secured.POST("/conversations/direct", conversationHandler.FindOrCreate)
			secured.GET("/conversations/:id/messages", conversationHandler.ListMessages)
			secured.POST("/conversations/:id/messages", conversationHandler.SendMessage)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			// ------------------------------
			// REVIEWS / STYLIST / UPLOADS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.POST("/stylist/chat", stylistHandler.Chat)
			secured.POST("/uploads/images", uploadHandler.CreateImage)
		}
	}
}
