package router

import (
	"github.com/gin-gonic/gin"

	"recettes/internal/handler"
	"recettes/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Recipes *handler.RecipeHandler
	Scans   *handler.ScanHandler
	Stats   *handler.StatsHandler
	Exports *handler.ExportHandler
}

// New builds the gin engine with middleware and all routes mounted. Reads over
// the index are public; starting scans requires a valid access token.
func New(h Handlers, tokens middleware.TokenValidator, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/healthz", h.Health.Healthz)
	r.GET("/readyz", h.Health.Readyz)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.GET("", h.Recipes.List)
			recipes.GET("/duplicates", h.Recipes.Duplicates)
			recipes.GET("/:id", h.Recipes.Get)
		}

		export := v1.Group("/export")
		{
			export.GET("/recipes.csv", h.Exports.RecipesCSV)
			export.GET("/nutrition.csv", h.Exports.NutritionCSV)
			export.GET("/nutrition.xlsx", h.Exports.NutritionXLSX)
		}

		v1.GET("/stats", h.Stats.Get)

		scans := v1.Group("/scans")
		scans.Use(middleware.AuthMiddleware(tokens))
		{
			scans.POST("", h.Scans.Create)
			scans.GET("", h.Scans.List)
			scans.GET("/:id", h.Scans.Get)
		}
	}

	return r
}
