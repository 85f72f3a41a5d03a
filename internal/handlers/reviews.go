package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetReviews — GET /api/reviews/:productId (relais)
func GetReviews(c *gin.Context) {
	resp, err := Auth.GetReviews(c.Request.Context(), c.Param("productId"))
	if err != nil {
		log.Printf("⚠️ Service d'avis injoignable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}

// PostReview — POST /api/reviews/:productId (relais, bearer requis)
func PostReview(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	resp, err := Auth.PostReview(c.Request.Context(), token, c.Param("productId"), body)
	if err != nil {
		log.Printf("⚠️ Service d'avis injoignable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		return
	}
	c.Data(resp.Status, "application/json", resp.Body)
}
