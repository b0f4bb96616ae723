package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/config"
	"github.com/stemsi/campus-api/internal/handler"
	"github.com/stemsi/campus-api/internal/middleware"
	"github.com/stemsi/campus-api/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Campus  *handler.CampusHandler
	Student *handler.StudentHandler
	Health  *handler.HealthHandler
}

// SetupRouter configures the Gin engine with the global middleware chain and
// the campus and student routes.
func SetupRouter(
	handlers *Handlers,
	limiter middleware.Limiter,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// Request ID first so the access log and every response carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())
	router.Use(middleware.ErrorHandler())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	// Health check is exempt from rate limiting.
	router.GET("/health", handlers.Health.Health)

	api := router.Group("/")
	api.Use(middleware.NoStore(), middleware.RateLimit(limiter))

	// ─── Campuses ──────────────────────────────────────────────────────
	campuses := api.Group("/campuses")
	{
		campuses.GET("", handlers.Campus.ListCampuses)
		campuses.GET("/:id", handlers.Campus.GetCampus)
		campuses.POST("", handlers.Campus.CreateCampus)
		campuses.PUT("/:id", handlers.Campus.UpdateCampus)
		campuses.DELETE("/:id", handlers.Campus.DeleteCampus)
	}

	// ─── Students ──────────────────────────────────────────────────────
	students := api.Group("/students")
	{
		students.GET("", handlers.Student.ListStudents)
		students.GET("/:id", handlers.Student.GetStudent)
		students.POST("", handlers.Student.CreateStudent)
		students.PUT("/:id", handlers.Student.UpdateStudent)
		students.DELETE("/:id", handlers.Student.DeleteStudent)
	}

	return router
}
