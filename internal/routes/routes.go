package routes

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/config"
	"vibe_shop_back_end/internal/handlers"
	"vibe_shop_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Session())

	// Images statiques, double racine (primaire puis secours)
	r.GET("/images/*filepath", handlers.ServeImage)

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())
	{
		// Catalogue
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/:key", handlers.GetProduct)

		// Panier
		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/add", handlers.AddToCart)
		api.DELETE("/cart/clear", handlers.ClearCart)
		api.DELETE("/cart/:id", handlers.RemoveFromCart)

		// Favoris
		api.GET("/favorites", handlers.GetFavorites)
		api.POST("/favorites/toggle", handlers.ToggleFavorite)
		api.PUT("/favorites/:id/size", handlers.SetFavoriteSize)
		api.DELETE("/favorites/:id", handlers.RemoveFavorite)

		// Comparaison
		api.GET("/compare", handlers.GetCompareList)
		api.POST("/compare/toggle", handlers.ToggleCompare)
		api.DELETE("/compare/:id", handlers.RemoveFromCompare)

		// Glu d'authentification vers le service externe
		api.POST("/auth/login", handlers.Login)
		api.POST("/auth/logout", handlers.Logout)
		api.POST("/auth/register", handlers.Register)
		api.GET("/auth/me", handlers.Me)

		// Avis (relais)
		api.GET("/reviews/:productId", handlers.GetReviews)
		api.POST("/reviews/:productId", middleware.AuthRequired(), handlers.PostReview)
	}

	// Toute autre route /api part telle quelle vers le backend externe.
	proxy := handlers.NewAPIProxy(config.UpstreamAPIURL())
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			proxy(c)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
