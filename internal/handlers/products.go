package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts — GET /api/products
// Le catalogue est re-dérivé à chaque appel : il reflète l'état courant
// du fichier statique ou du répertoire d'images.
func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog.List())
}

// GetProduct — GET /api/products/:key
// La clé est un id ou un slug (insensible à la casse).
func GetProduct(c *gin.Context) {
	product, found := Catalog.Get(c.Param("key"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
