package handlers

import (
	"net/http"

	"recipeshare/internal/logger"
	"recipeshare/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The session store backs the opaque cookie that carries the signed-in user.
func (h *Handler) InitRoutes(store sessions.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger())
	router.Use(sessions.Sessions(sessionCookieName, store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Open endpoints
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)

	// Everything below requires an authenticated session
	authed := router.Group("/", h.sessionAuth)
	{
		authed.GET("/check_session", h.checkSession)
		authed.DELETE("/logout", h.logout)
		authed.GET("/recipes", h.listRecipes)
		authed.POST("/recipes", h.createRecipe)
	}

	return router
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
