package v1

import (
	"net/http"
	"time"

	"medconnect-backend/config"
	"medconnect-backend/internal/delivery/http/middleware"
	"medconnect-backend/internal/delivery/http/response"
	"medconnect-backend/internal/domain"
	"medconnect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	FeedUC         domain.FeedUsecase
	ConnectionUC   domain.ConnectionUsecase
	MessageUC      domain.MessageUsecase
	OrganizationUC domain.OrganizationUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	UploadUC       domain.UploadUsecase
	JWTService     *auth.JWTService
	RedisClient    *goredis.Client
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	rateWindow := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(deps.RedisClient, middleware.DefaultRateLimitConfig(rateWindow)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stricter limit for credential endpoints
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(deps.RedisClient,
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, rateWindow)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTService))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC)
		NewFeedHandler(v1, protected, deps.FeedUC)
		NewConnectionHandler(protected, deps.ConnectionUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewOrganizationHandler(protected, deps.OrganizationUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewUploadHandler(protected, deps.UploadUC)
	}

	return r
}
