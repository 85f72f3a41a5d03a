package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/models"
)

// GetCompareList — GET /api/compare
func GetCompareList(c *gin.Context) {
	items := sessionState(c).Compare.Items()
	if items == nil {
		items = []models.CompareItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleCompare — POST /api/compare/toggle
// Ajoute en fin si absent, retire si présent.
func ToggleCompare(c *gin.Context) {
	var input struct {
		ID int `json:"id"`
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

	compare := sessionState(c).Compare
	compare.Toggle(product)

	c.JSON(http.StatusOK, gin.H{
		"compared": compare.Contains(product.ID),
		"items":    compare.Items(),
	})
}

// RemoveFromCompare — DELETE /api/compare/:id
func RemoveFromCompare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	compare := sessionState(c).Compare
	compare.Remove(id)

	c.JSON(http.StatusOK, gin.H{"items": compare.Items()})
}
