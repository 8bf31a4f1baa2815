package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recipeshare/internal/logger"
	"recipeshare/internal/service"
)

const apiVersion = "1.0.0"

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Live catalog activity stream (HTTP upgrade) on the same port.
	router.GET("/ws", h.wsConnect)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)
		h.registerRecipeRoutes(api)
		api.GET("/activity", h.authGate, h.listActivity)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.GET("", h.authGate, h.listUsers)
		users.GET("/profile/:id", h.authGate, h.getProfile)
		users.PUT("/profile/:id", h.authGate, h.updateProfile)
	}
}

func (h *Handler) registerRecipeRoutes(api *gin.RouterGroup) {
	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.listRecipes)
		recipes.GET("/search", h.searchRecipes)
		recipes.GET("/:id", h.getRecipe)
		recipes.GET("/user/:userId", h.recipesByUser)
		recipes.POST("", h.authGate, h.createRecipe)
		recipes.PUT("/:id", h.authGate, h.updateRecipe)
		recipes.DELETE("/:id", h.authGate, h.deleteRecipe)
	}
}

// root describes the API surface for anyone poking at the base URL.
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe Sharing API is running",
		"version": apiVersion,
		"endpoints": gin.H{
			"users":   "/api/users",
			"recipes": "/api/recipes",
		},
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
