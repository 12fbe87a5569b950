package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/api/handler"
	"github.com/tomoki/kanjilens/internal/api/middleware"
	"github.com/tomoki/kanjilens/internal/config"
	"github.com/tomoki/kanjilens/internal/repository"
	"github.com/tomoki/kanjilens/internal/service"
	"github.com/tomoki/kanjilens/internal/storage"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	lookupService *service.LookupService,
	uploadService *service.UploadService,
	chatService *service.ChatService,
	uploadRepo *repository.UploadRepository,
	objectStorage storage.ObjectStorage,
	cfg *config.Config,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	pageHandler := handler.NewPageHandler()

	// A typed nil *UploadRepository must not become a non-nil interface
	var history handler.UploadHistory
	if uploadRepo != nil {
		history = uploadRepo
	}
	uploadHandler := handler.NewUploadHandler(uploadService, history, objectStorage, cfg.Upload)
	lookupHandler := handler.NewLookupHandler(lookupService)
	chatHandler := handler.NewChatHandler(chatService)

	// Pages
	r.GET("/", pageHandler.Index)
	r.GET("/chat", pageHandler.Chat)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API routes
	api := r.Group("/api")
	{
		api.POST("/upload", limitBody(cfg.Upload.MaxBytes()), uploadHandler.Upload)
		api.GET("/uploads", uploadHandler.ListUploads)
		api.GET("/uploads/:key", uploadHandler.ServeUpload)
		api.DELETE("/uploads/:key", uploadHandler.DeleteUpload)
		api.GET("/lookup/:term", lookupHandler.Lookup)
		api.POST("/chat", chatHandler.Chat)
	}

	return r
}

// limitBody caps the request body size for upload requests.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
