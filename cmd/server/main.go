package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/authclient"
	"vibe_shop_back_end/internal/cache"
	"vibe_shop_back_end/internal/catalog"
	"vibe_shop_back_end/internal/config"
	"vibe_shop_back_end/internal/handlers"
	"vibe_shop_back_end/internal/routes"
	"vibe_shop_back_end/internal/session"
	"vibe_shop_back_end/internal/store"
)

func main() {
	config.Load()

	// Redis porte les miroirs panier/favoris/comparaison. Sans Redis on
	// continue en mémoire : l'état vit le temps du process.
	var storage store.Storage
	if err := cache.InitRedis(); err != nil {
		log.Printf("⚠️ Redis indisponible (%v) — persistance en mémoire", err)
		storage = store.NewMemoryStorage()
	} else {
		storage = store.NewRedisStorage(cache.RedisClient)
		defer cache.CloseRedis()
	}

	handlers.Setup(
		catalog.NewSourceFromEnv(),
		session.NewManager(storage),
		authclient.New(config.UpstreamAPIURL()),
	)

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Serveur VIBE Shop lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}
