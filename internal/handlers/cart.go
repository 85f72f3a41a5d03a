package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibe_shop_back_end/internal/models"
)

// GetCart — GET /api/cart
func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": itemsOrEmpty(sessionState(c).Cart.Items())})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	var input struct {
		ID   int    `json:"id"`
		Size string `json:"size"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Les champs d'affichage sont copiés depuis le catalogue au moment de l'ajout.
	product, found := Catalog.Get(strconv.Itoa(input.ID))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	cart := sessionState(c).Cart
	cart.AddItem(product, input.Size)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   cart.Items(),
	})
}

//
// ❌ DELETE /api/cart/:id
//
func RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	cart := sessionState(c).Cart
	cart.RemoveItem(id, c.Query("size"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   itemsOrEmpty(cart.Items()),
	})
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	sessionState(c).Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

func itemsOrEmpty(items []models.CartItem) []models.CartItem {
	if items == nil {
		return []models.CartItem{}
	}
	return items
}
