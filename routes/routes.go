package routes

import (
	"gin-bomtracker/constants"
	"gin-bomtracker/controllers"
	"gin-bomtracker/dto"
	"gin-bomtracker/infra"
	"gin-bomtracker/middlewares"
	"gin-bomtracker/repositories"
	"gin-bomtracker/services"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "bomtracker"

// SetupRouter wires repositories, services and controllers onto a gin engine.
func SetupRouter(db *gorm.DB, tokenRepository repositories.ITokenRepository, cfg *infra.Config) *gin.Engine {
	dto.RegisterValidators()

	authRepository := repositories.NewAuthRepository(db)
	userRepository := repositories.NewUserRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	bomRepository := repositories.NewBOMRepository(db)
	archiveRepository := repositories.NewArchiveRepository(db)

	authService := services.NewAuthService(authRepository, userRepository, tokenRepository, services.TokenConfig{
		SecretKey: cfg.Auth.SecretKey,
		TTL:       cfg.Auth.TokenTTL,
	})
	userService := services.NewUserService(userRepository)
	projectService := services.NewProjectService(projectRepository, bomRepository)
	bomService := services.NewBOMService(bomRepository, projectRepository, archiveRepository)
	archiveService := services.NewArchiveService(archiveRepository, projectRepository)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	projectController := controllers.NewProjectController(projectService)
	bomController := controllers.NewBOMController(bomService)
	archiveController := controllers.NewArchiveController(archiveService)
	healthController := controllers.NewHealthController(serviceName, cfg.Version, db)

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/metrics"},
		Context:    middlewares.RequestIDFields,
	}))
	r.Use(ginzap.RecoveryWithZap(zap.L(), true))
	r.Use(middlewares.Metrics())
	r.Use(corsMiddleware(cfg.CORSAllowedOrigins))

	healthController.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middlewares.AuthMiddleware(authService)
	requireAdmin := middlewares.RoleBasedAccessControl(constants.RoleAdmin)

	api := r.Group("/api/v1")

	authRouter := api.Group("/auth")
	authRouter.GET("/status", authController.Status)
	authRouter.POST("/setup", authController.Setup)
	authRouter.POST("/login", authController.Login)
	authRouter.GET("/me", requireAuth, authController.Me)
	authRouter.POST("/logout", requireAuth, authController.Logout)
	authRouter.POST("/disable", requireAuth, requireAdmin, authController.Disable)

	userRouter := api.Group("/users", requireAuth, requireAdmin)
	userRouter.GET("/", userController.FindAll)
	userRouter.POST("/", userController.Create)
	userRouter.GET("/:id", userController.FindByID)
	userRouter.PATCH("/:id", userController.Update)
	userRouter.DELETE("/:id", userController.Delete)

	gate := middlewares.AuthGate(authService)

	projectRouter := api.Group("/projects", gate)
	projectRouter.GET("/", projectController.FindAll)
	projectRouter.POST("/", projectController.Create)
	projectRouter.GET("/:id", projectController.FindByID)
	projectRouter.PATCH("/:id", projectController.Update)
	projectRouter.DELETE("/:id", projectController.Delete)

	projectRouter.GET("/:id/bom", bomController.FindAll)
	projectRouter.POST("/:id/bom", bomController.Create)
	projectRouter.GET("/:id/bom/summary", bomController.Summary)
	projectRouter.POST("/:id/bom/reorder", bomController.Reorder)
	projectRouter.PATCH("/:id/bom/:item_id", bomController.Update)
	projectRouter.DELETE("/:id/bom/:item_id", bomController.Delete)

	archiveRouter := api.Group("/archives", gate)
	archiveRouter.GET("/", archiveController.FindAll)
	archiveRouter.POST("/", archiveController.Create)
	archiveRouter.GET("/:id", archiveController.FindByID)
	archiveRouter.DELETE("/:id", archiveController.Delete)

	return r
}

// corsMiddleware allows any origin unless CORS_ALLOWED_ORIGINS is set.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
