// Package router assembles the storefront's HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/cookstore/configs"
	"github.com/yourusername/cookstore/internal/catalog"
	"github.com/yourusername/cookstore/internal/handler"
	"github.com/yourusername/cookstore/internal/middleware"
	"github.com/yourusername/cookstore/internal/session"
)

// New builds the Gin engine with all middleware and routes registered.
func New(cfg *configs.ViperConfig, svc *catalog.Service, sessions *session.Registry) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.Recovery())
	engine.Use(session.Middleware())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler := handler.NewCatalogHandler(svc)
	cartHandler := handler.NewCartHandler(sessions, cfg)

	api := engine.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/products/:id/reviews", catalogHandler.GetReviews)
		api.GET("/products/:id/recommendations", catalogHandler.GetRecommendations)
		api.GET("/featured", catalogHandler.Featured)
		api.GET("/search", catalogHandler.Search)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/categories/:category", catalogHandler.GetCategory)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PUT("/cart/items/:id", cartHandler.UpdateItem)
		api.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	}

	return engine
}
