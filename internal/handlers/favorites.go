package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/models"
)

// GetFavorites — GET /api/favorites
func GetFavorites(c *gin.Context) {
	items := sessionState(c).Favorites.Items()
	if items == nil {
		items = []models.FavoriteItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleFavorite — POST /api/favorites/toggle
// Ajoute en tête si absent (avec taille optionnelle), retire si présent.
func ToggleFavorite(c *gin.Context) {
	var input struct {
		ID   int    `json:"id"`
		Size string `json:"size"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product, found := Catalog.Get(strconv.Itoa(input.ID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	favorites := sessionState(c).Favorites
	favorites.Toggle(product, input.Size)

	c.JSON(http.StatusOK, gin.H{
		"favorited": favorites.Contains(product.ID),
		"items":     favorites.Items(),
	})
}

// SetFavoriteSize — PUT /api/favorites/:id/size
// Met à jour la taille sans bouger l'entrée. No-op si absente.
func SetFavoriteSize(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Size string `json:"size"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	favorites := sessionState(c).Favorites
	favorites.SetSize(id, input.Size)

	c.JSON(http.StatusOK, gin.H{"items": favorites.Items()})
}

// RemoveFavorite — DELETE /api/favorites/:id
func RemoveFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	favorites := sessionState(c).Favorites
	favorites.Remove(id)

	c.JSON(http.StatusOK, gin.H{"items": favorites.Items()})
}
