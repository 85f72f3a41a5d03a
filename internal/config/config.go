package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️  %s invalide (%q), valeur par défaut %d utilisée", key, v, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("⚠️  %s invalide (%q), valeur par défaut %v utilisée", key, v, fallback)
	}
	return fallback
}

// SeedFile est le fichier statique de produits (stratégie prioritaire).
func SeedFile() string {
	return getEnv("CATALOG_SEED_FILE", "backend/static/products.json")
}

// ImagesDir est la racine primaire des images produits.
func ImagesDir() string {
	return getEnv("IMAGES_DIR", "backend/public/images")
}

// ImagesFallbackDir est la racine secondaire, utilisée si le chemin
// n'existe pas sous la racine primaire.
func ImagesFallbackDir() string {
	return getEnv("IMAGES_FALLBACK_DIR", "../vibe-shop-front/public/images")
}

// TeeImagesSubdir est le sous-chemin des photos de tee-shirts sous une racine images.
const TeeImagesSubdir = "tees/images"

// CatalogArity est le nombre de photos exigé par produit (5 ou 6 selon le build).
func CatalogArity() int {
	n := getEnvInt("CATALOG_ARITY", 5)
	if n != 5 && n != 6 {
		log.Printf("⚠️  CATALOG_ARITY=%d non supporté, 5 utilisé", n)
		return 5
	}
	return n
}

// BasePrice et PriceStep pilotent la tarification round-robin des
// produits dérivés des images.
func BasePrice() float64 { return getEnvFloat("BASE_PRICE", 2990) }
func PriceStep() float64 { return getEnvFloat("PRICE_STEP", 100) }

// UpstreamAPIURL est le backend externe (auth/avis) vers lequel les
// routes /api inconnues sont relayées.
func UpstreamAPIURL() string {
	return getEnv("UPSTREAM_API_URL", "http://127.0.0.1:8000")
}

func RedisHost() string     { return getEnv("REDIS_HOST", "localhost:6379") }
func RedisPassword() string { return os.Getenv("REDIS_PASSWORD") }

func JWTSecret() string     { return getEnv("JWT_SECRET", "supersecretkey") }
func SessionSecret() string { return getEnv("SESSION_SECRET", "vibe-session-secret") }

func Port() string { return getEnv("PORT", "3000") }
