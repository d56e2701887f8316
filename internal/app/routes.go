package app

import (
	"context"
	"net/http"
	"time"

	"github.com/omer1abay/Todo-App/internal/auth"
	"github.com/omer1abay/Todo-App/internal/cache"
	"github.com/omer1abay/Todo-App/internal/config"
	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/handlers"
	"github.com/omer1abay/Todo-App/internal/notify"
	"github.com/omer1abay/Todo-App/internal/query"
	"github.com/omer1abay/Todo-App/internal/repo"
	"github.com/omer1abay/Todo-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. rdb may be nil.
func Setup(r *gin.Engine, cfg config.Config, db *Database, rdb *redis.Client) {
	gw := repo.NewGateway(db.Gorm)

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, gw, rdb))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	bus := notify.NewBus()
	bus.Subscribe(dom.EventItemCompleted, notify.LogSubscriber)

	var boardCache *cache.BoardCache
	var sessions auth.Sessions
	if rdb != nil {
		boardCache = cache.NewBoardCache(rdb, cfg.Redis.BoardTTL.Duration())
		bus.Subscribe(dom.EventItemCompleted, notify.NewRedisPublisher(rdb).Handle)

		sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
		sessions = sessionStore
		userSvc := service.NewUserService(gw.Users())
		registerAuthRoutes(api, handlers.NewAuthHandler(sessionStore, userSvc), sessionStore)
	}

	protected := api
	switch {
	case cfg.Auth.Required:
		protected = api.Group("", auth.RequireSession(sessions))
	case sessions != nil:
		protected = api.Group("", auth.IdentifySession(sessions))
	}

	todoSvc := service.NewTodoService(gw, query.NewReader(db.SQLX), boardCache, bus)
	registerTodoRoutes(protected, handlers.NewTodoHandler(todoSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"openapi": "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config, gw *repo.Gateway, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"db": "ok"}
		ok := true
		if err := gw.Ping(ctx); err != nil {
			checks["db"] = err.Error()
			ok = false
		}
		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = err.Error()
				ok = false
			}
		}

		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": ok, "env": cfg.App.Env, "checks": checks})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/TodoLists", h.GetBoard)
	api.POST("/TodoLists", h.CreateList)
	api.PUT("/TodoLists/:id", h.UpdateList)
	api.DELETE("/TodoLists/:id", h.DeleteList)

	api.GET("/TodoItems", h.ListItems)
	api.POST("/TodoItems", h.CreateItem)
	api.PUT("/TodoItems/:id", h.UpdateItem)
	api.PUT("/TodoItems/:id/details", h.UpdateItemDetail)
	api.DELETE("/TodoItems/:id", h.DeleteItem)

	api.POST("/Tags/CreateTag", h.CreateTag)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, sessions auth.Sessions) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", auth.RequireSession(sessions), h.Me)
}
