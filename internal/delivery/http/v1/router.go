package v1

import (
	"net/http"

	"go-scancollect-backend/config"
	"go-scancollect-backend/internal/delivery/http/middleware"
	"go-scancollect-backend/internal/delivery/http/response"
	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/internal/usecase"
	"go-scancollect-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CategoryUC    domain.CategoryUsecase
	CardUC        domain.CardUsecase
	AchievementUC domain.AchievementUsecase
	CollectionUC  domain.CollectionUsecase
	CatalogUC     domain.CatalogUsecase
	HealthUC      usecase.HealthUsecase
	UserRepo      domain.UserRepository // admin flag lookups in the auth middleware
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public catalog routes
	NewExploreHandler(api, deps.CatalogUC)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.UserRepo))

	// Session and provisioning endpoints carry a stricter rate limit on
	// top of the auth check.
	sensitive := api.Group("")
	sensitive.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config)))
	sensitive.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.UserRepo))

	{
		NewUserHandler(protected, sensitive, deps.AuthUC)
		NewCategoryHandler(api, protected, deps.CategoryUC, deps.CardUC)
		NewCardHandler(api, protected, deps.CardUC)
		NewAchievementHandler(api, protected, deps.AchievementUC)
		NewCollectionHandler(protected, deps.CollectionUC)
	}

	return r
}
